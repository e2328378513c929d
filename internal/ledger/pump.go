package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type PumpType string

const (
	PumpPetrol PumpType = "petrol"
	PumpDiesel PumpType = "diesel"
)

// PumpsPerType is the number of nozzles of each fuel on the forecourt.
const PumpsPerType = 4

// Seed prices per litre used for a fresh form. They are not derived from history.
var (
	PetrolSeedPrice = decimal.RequireFromString("101.88")
	DieselSeedPrice = decimal.RequireFromString("93.48")
)

var (
	ErrUnknownPump  = errors.New("unknown pump")
	ErrUnknownField = errors.New("unknown field")
)

// PumpID names one of the eight pumps, e.g. petrol1 or diesel4.
type PumpID struct {
	Type   PumpType
	Number int
}

// AllPumps lists the pumps in form order.
var AllPumps = [8]PumpID{
	{PumpPetrol, 1}, {PumpPetrol, 2}, {PumpPetrol, 3}, {PumpPetrol, 4},
	{PumpDiesel, 1}, {PumpDiesel, 2}, {PumpDiesel, 3}, {PumpDiesel, 4},
}

func ParsePumpID(s string) (PumpID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range []PumpType{PumpPetrol, PumpDiesel} {
		rest, ok := strings.CutPrefix(s, string(t))
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			break
		}
		id := PumpID{Type: t, Number: n}
		if !id.Valid() {
			break
		}
		return id, nil
	}
	return PumpID{}, fmt.Errorf("%w: %q", ErrUnknownPump, s)
}

func (p PumpID) Valid() bool {
	return (p.Type == PumpPetrol || p.Type == PumpDiesel) && p.Number >= 1 && p.Number <= PumpsPerType
}

func (p PumpID) String() string { return fmt.Sprintf("%s%d", p.Type, p.Number) }

// Label is the human name used in warnings and exports ("Petrol 1").
func (p PumpID) Label() string {
	name := "Petrol"
	if p.Type == PumpDiesel {
		name = "Diesel"
	}
	return fmt.Sprintf("%s %d", name, p.Number)
}

// Group returns the cashier group that collects for this pump: pumps 1 and 2
// belong to group1, 3 and 4 to group2.
func (p PumpID) Group() CashierGroup {
	if p.Number <= 2 {
		return Group1
	}
	return Group2
}

func (p PumpID) index() int {
	i := p.Number - 1
	if p.Type == PumpDiesel {
		i += PumpsPerType
	}
	return i
}

func (p PumpID) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PumpID) UnmarshalText(b []byte) error {
	id, err := ParsePumpID(string(b))
	if err != nil {
		return err
	}
	*p = id
	return nil
}

// SeedPrice is the default price per litre for the pump's fuel.
func SeedPrice(t PumpType) decimal.Decimal {
	if t == PumpDiesel {
		return DieselSeedPrice
	}
	return PetrolSeedPrice
}

type PumpField string

const (
	FieldOpeningReading PumpField = "opening_reading"
	FieldClosingReading PumpField = "closing_reading"
	FieldPricePerLitre  PumpField = "price_per_litre"
)

type PumpReading struct {
	Pump           PumpID          `json:"pump"`
	OpeningReading decimal.Decimal `json:"opening_reading"`
	ClosingReading decimal.Decimal `json:"closing_reading"`
	PricePerLitre  decimal.Decimal `json:"price_per_litre"`
}

// Sales is what a pump sold between its two meter readings.
type Sales struct {
	Litres decimal.Decimal `json:"litres"`
	Amount decimal.Decimal `json:"amount"`
}

// ComputeSales derives litres and amount. A closing reading below the
// opening produces negative litres; it is reported as is.
func ComputeSales(r PumpReading) Sales {
	litres := r.ClosingReading.Sub(r.OpeningReading)
	return Sales{Litres: litres, Amount: litres.Mul(r.PricePerLitre)}
}

// PumpLedger holds the eight pump readings of an entry in AllPumps order.
type PumpLedger [8]PumpReading

// NewPumpLedger returns zero readings at seed prices.
func NewPumpLedger() PumpLedger {
	var l PumpLedger
	for i, id := range AllPumps {
		l[i] = PumpReading{
			Pump:           id,
			OpeningReading: decimal.Zero,
			ClosingReading: decimal.Zero,
			PricePerLitre:  SeedPrice(id.Type),
		}
	}
	return l
}

// Normalized places every reading with a valid pump id into its slot. A
// reading without an id keeps its position; slots nobody filled keep seed
// values.
func (l PumpLedger) Normalized() PumpLedger {
	out := NewPumpLedger()
	for i, r := range l {
		switch {
		case r.Pump.Valid():
			out[r.Pump.index()] = r
		case r.Pump == PumpID{} && !r.blank():
			r.Pump = AllPumps[i]
			out[i] = r
		}
	}
	return out
}

func (r PumpReading) blank() bool {
	return r.OpeningReading.IsZero() && r.ClosingReading.IsZero() && r.PricePerLitre.IsZero()
}

func (l *PumpLedger) Reading(id PumpID) (*PumpReading, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPump, id)
	}
	return &l[id.index()], nil
}

// SetField parses raw into one reading field. Bad numbers become zero; only a
// wrong pump or field name is an error.
func (l *PumpLedger) SetField(id PumpID, field PumpField, raw string) (PumpReading, error) {
	r, err := l.Reading(id)
	if err != nil {
		return PumpReading{}, err
	}
	v := ParseDecimal(raw)
	switch field {
	case FieldOpeningReading:
		r.OpeningReading = v
	case FieldClosingReading:
		r.ClosingReading = v
	case FieldPricePerLitre:
		r.PricePerLitre = v
	default:
		return PumpReading{}, fmt.Errorf("%w: pump %q", ErrUnknownField, field)
	}
	return *r, nil
}

// TotalLitres sums litres sold for one fuel type.
func (l PumpLedger) TotalLitres(t PumpType) decimal.Decimal {
	total := decimal.Zero
	for _, r := range l {
		if r.Pump.Type == t {
			total = total.Add(ComputeSales(r).Litres)
		}
	}
	return total
}

// TotalAmount sums sale amounts for one fuel type.
func (l PumpLedger) TotalAmount(t PumpType) decimal.Decimal {
	total := decimal.Zero
	for _, r := range l {
		if r.Pump.Type == t {
			total = total.Add(ComputeSales(r).Amount)
		}
	}
	return total
}
