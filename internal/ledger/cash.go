package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type CashField string

const (
	FieldRs500 CashField = "rs_500"
	FieldRs200 CashField = "rs_200"
	FieldRs100 CashField = "rs_100"
	FieldRs50  CashField = "rs_50"
	FieldRs20  CashField = "rs_20"
	FieldRs10  CashField = "rs_10"
	FieldCoins CashField = "coins"
)

// CashFields is the display order of the drawer count.
var CashFields = []CashField{FieldRs500, FieldRs200, FieldRs100, FieldRs50, FieldRs20, FieldRs10, FieldCoins}

var noteValues = map[CashField]int64{
	FieldRs500: 500,
	FieldRs200: 200,
	FieldRs100: 100,
	FieldRs50:  50,
	FieldRs20:  20,
	FieldRs10:  10,
}

func (f CashField) Label() string {
	if f == FieldCoins {
		return "Coins"
	}
	return fmt.Sprintf("₹%d Notes", noteValues[f])
}

// CashGroup is one cashier group's counted drawer.
type CashGroup struct {
	Rs500 int64           `json:"rs_500"`
	Rs200 int64           `json:"rs_200"`
	Rs100 int64           `json:"rs_100"`
	Rs50  int64           `json:"rs_50"`
	Rs20  int64           `json:"rs_20"`
	Rs10  int64           `json:"rs_10"`
	Coins decimal.Decimal `json:"coins"`
}

func NewCashGroup() CashGroup {
	return CashGroup{Coins: decimal.Zero}
}

func (c *CashGroup) note(f CashField) *int64 {
	switch f {
	case FieldRs500:
		return &c.Rs500
	case FieldRs200:
		return &c.Rs200
	case FieldRs100:
		return &c.Rs100
	case FieldRs50:
		return &c.Rs50
	case FieldRs20:
		return &c.Rs20
	case FieldRs10:
		return &c.Rs10
	}
	return nil
}

// Count returns the note count for f; coins are not a count.
func (c CashGroup) Count(f CashField) int64 {
	if n := c.note(f); n != nil {
		return *n
	}
	return 0
}

// GroupTotal is the denomination-weighted sum plus coins, computed in
// decimal so large counts cannot wrap.
func (c CashGroup) GroupTotal() decimal.Decimal {
	total := c.Coins
	for _, n := range []struct{ count, face int64 }{
		{c.Rs500, 500}, {c.Rs200, 200}, {c.Rs100, 100},
		{c.Rs50, 50}, {c.Rs20, 20}, {c.Rs10, 10},
	} {
		total = total.Add(decimal.NewFromInt(n.count).Mul(decimal.NewFromInt(n.face)))
	}
	return total
}

type CashLedger struct {
	Group1 CashGroup `json:"group1"`
	Group2 CashGroup `json:"group2"`
}

func NewCashLedger() CashLedger {
	return CashLedger{Group1: NewCashGroup(), Group2: NewCashGroup()}
}

func (l *CashLedger) Group(g CashierGroup) (*CashGroup, error) {
	switch g {
	case Group1:
		return &l.Group1, nil
	case Group2:
		return &l.Group2, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
}

// SetField stores note counts as integers (fractions truncated) and coins as
// a decimal.
func (l *CashLedger) SetField(g CashierGroup, field CashField, raw string) (CashGroup, error) {
	grp, err := l.Group(g)
	if err != nil {
		return CashGroup{}, err
	}
	if field == FieldCoins {
		grp.Coins = ParseDecimal(raw)
		return *grp, nil
	}
	n := grp.note(field)
	if n == nil {
		return CashGroup{}, fmt.Errorf("%w: cash %q", ErrUnknownField, field)
	}
	*n = ParseCount(raw)
	return *grp, nil
}

func (l CashLedger) Total() decimal.Decimal {
	return l.Group1.GroupTotal().Add(l.Group2.GroupTotal())
}
