package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LubricantPricePerLitre prices the loose lubricant sold by the litre.
var LubricantPricePerLitre = decimal.NewFromInt(330)

// LubricantAmountForLitres is the amount charged for litres of loose lubricant.
func LubricantAmountForLitres(litres decimal.Decimal) decimal.Decimal {
	return litres.Mul(LubricantPricePerLitre)
}

type LubricantItem struct {
	Name      string          `json:"name"`
	Count     int64           `json:"count"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i LubricantItem) LineAmount() decimal.Decimal {
	return decimal.NewFromInt(i.Count).Mul(i.UnitPrice)
}

type LubricantItemField string

const (
	FieldItemName      LubricantItemField = "name"
	FieldItemCount     LubricantItemField = "count"
	FieldItemUnitPrice LubricantItemField = "unit_price"
)

type LubricantField string

const (
	FieldYesterdayReading LubricantField = "yesterday_reading"
	FieldTodayReading     LubricantField = "today_reading"
	FieldTotalLitres      LubricantField = "total_litres"
	FieldTotalAmount      LubricantField = "total_amount"
	FieldDistilledWater   LubricantField = "distilled_water"
	FieldWaste            LubricantField = "waste"
)

// LubricantLedger always holds at least one item.
type LubricantLedger struct {
	Items            []LubricantItem `json:"items"`
	YesterdayReading decimal.Decimal `json:"yesterday_reading"`
	TodayReading     decimal.Decimal `json:"today_reading"`
	TotalLitres      decimal.Decimal `json:"total_litres"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	DistilledWater   decimal.Decimal `json:"distilled_water"`
	Waste            decimal.Decimal `json:"waste"`
}

func NewLubricantLedger() LubricantLedger {
	return LubricantLedger{
		Items:            []LubricantItem{newLubricantItem()},
		YesterdayReading: decimal.Zero,
		TodayReading:     decimal.Zero,
		TotalLitres:      decimal.Zero,
		TotalAmount:      decimal.Zero,
		DistilledWater:   decimal.Zero,
		Waste:            decimal.Zero,
	}
}

func newLubricantItem() LubricantItem {
	return LubricantItem{UnitPrice: decimal.Zero}
}

// AddItem appends a blank item and returns the new length.
func (l *LubricantLedger) AddItem() int {
	l.Items = append(l.Items, newLubricantItem())
	return len(l.Items)
}

// RemoveItem drops the item at i. It reports false, leaving the list alone,
// when i is out of range or only one item is left.
func (l *LubricantLedger) RemoveItem(i int) bool {
	if len(l.Items) <= 1 || i < 0 || i >= len(l.Items) {
		return false
	}
	l.Items = append(l.Items[:i:i], l.Items[i+1:]...)
	return true
}

func (l *LubricantLedger) SetItemField(i int, field LubricantItemField, raw string) (LubricantItem, error) {
	if i < 0 || i >= len(l.Items) {
		return LubricantItem{}, fmt.Errorf("%w: lubricant item %d", ErrUnknownField, i)
	}
	item := &l.Items[i]
	switch field {
	case FieldItemName:
		item.Name = strings.TrimSpace(raw)
	case FieldItemCount:
		item.Count = ParseCount(raw)
	case FieldItemUnitPrice:
		item.UnitPrice = ParseDecimal(raw)
	default:
		return LubricantItem{}, fmt.Errorf("%w: lubricant item %q", ErrUnknownField, field)
	}
	return *item, nil
}

// SetAggregateField sets one ledger-wide value. Setting total_litres also
// resets total_amount from LubricantAmountForLitres; total_amount stays
// editable afterwards.
func (l *LubricantLedger) SetAggregateField(field LubricantField, raw string) error {
	v := ParseDecimal(raw)
	switch field {
	case FieldYesterdayReading:
		l.YesterdayReading = v
	case FieldTodayReading:
		l.TodayReading = v
	case FieldTotalLitres:
		l.TotalLitres = v
		l.TotalAmount = LubricantAmountForLitres(v)
	case FieldTotalAmount:
		l.TotalAmount = v
	case FieldDistilledWater:
		l.DistilledWater = v
	case FieldWaste:
		l.Waste = v
	default:
		return fmt.Errorf("%w: lubricant %q", ErrUnknownField, field)
	}
	return nil
}

// ItemsTotal is the sum of count x unit price over all items.
func (l LubricantLedger) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.Items {
		total = total.Add(it.LineAmount())
	}
	return total
}

// Revenue counts the aggregates once plus every item line.
func (l LubricantLedger) Revenue() decimal.Decimal {
	return l.TotalAmount.Add(l.DistilledWater).Add(l.Waste).Add(l.ItemsTotal())
}

// Normalized guarantees the one-item minimum.
func (l LubricantLedger) Normalized() LubricantLedger {
	if len(l.Items) == 0 {
		l.Items = []LubricantItem{newLubricantItem()}
	}
	return l
}
