package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// CashierGroup partitions the pumps: group1 collects for pumps 1-2,
// group2 for pumps 3-4.
type CashierGroup string

const (
	Group1 CashierGroup = "group1"
	Group2 CashierGroup = "group2"
)

var ErrUnknownGroup = errors.New("unknown cashier group")

// CashierGroups lists both groups in display order.
var CashierGroups = [2]CashierGroup{Group1, Group2}

func ParseCashierGroup(s string) (CashierGroup, error) {
	switch CashierGroup(s) {
	case Group1, Group2:
		return CashierGroup(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
}

func (g CashierGroup) Label() string {
	if g == Group2 {
		return "Group 2"
	}
	return "Group 1"
}

type PaymentField string

const (
	FieldUPI             PaymentField = "upi"
	FieldBharatFleetCard PaymentField = "bharat_fleet_card"
	FieldFiserv          PaymentField = "fiserv"
	FieldDebit           PaymentField = "debit"
	FieldUBI             PaymentField = "ubi"
	FieldEveningLocker   PaymentField = "evening_locker"
)

// PaymentFields is the display order of the payment channels.
var PaymentFields = []PaymentField{
	FieldUPI, FieldBharatFleetCard, FieldFiserv, FieldDebit, FieldUBI, FieldEveningLocker,
}

var paymentLabels = map[PaymentField]string{
	FieldUPI:             "UPI",
	FieldBharatFleetCard: "Bharat Fleet Card",
	FieldFiserv:          "Fiserv",
	FieldDebit:           "Debit",
	FieldUBI:             "UBI",
	FieldEveningLocker:   "Evening Locker",
}

func (f PaymentField) Label() string { return paymentLabels[f] }

// PaymentGroup is one cashier group's non-cash takings.
type PaymentGroup struct {
	UPI             decimal.Decimal `json:"upi"`
	BharatFleetCard decimal.Decimal `json:"bharat_fleet_card"`
	Fiserv          decimal.Decimal `json:"fiserv"`
	Debit           decimal.Decimal `json:"debit"`
	UBI             decimal.Decimal `json:"ubi"`
	EveningLocker   decimal.Decimal `json:"evening_locker"`
}

func NewPaymentGroup() PaymentGroup {
	z := decimal.Zero
	return PaymentGroup{UPI: z, BharatFleetCard: z, Fiserv: z, Debit: z, UBI: z, EveningLocker: z}
}

func (p *PaymentGroup) field(f PaymentField) *decimal.Decimal {
	switch f {
	case FieldUPI:
		return &p.UPI
	case FieldBharatFleetCard:
		return &p.BharatFleetCard
	case FieldFiserv:
		return &p.Fiserv
	case FieldDebit:
		return &p.Debit
	case FieldUBI:
		return &p.UBI
	case FieldEveningLocker:
		return &p.EveningLocker
	}
	return nil
}

// Value returns a field by name, zero for unknown names.
func (p PaymentGroup) Value(f PaymentField) decimal.Decimal {
	if v := p.field(f); v != nil {
		return *v
	}
	return decimal.Zero
}

func (p PaymentGroup) GroupTotal() decimal.Decimal {
	return p.UPI.Add(p.BharatFleetCard).Add(p.Fiserv).Add(p.Debit).Add(p.UBI).Add(p.EveningLocker)
}

type PaymentLedger struct {
	Group1 PaymentGroup `json:"group1"`
	Group2 PaymentGroup `json:"group2"`
}

func NewPaymentLedger() PaymentLedger {
	return PaymentLedger{Group1: NewPaymentGroup(), Group2: NewPaymentGroup()}
}

func (l *PaymentLedger) Group(g CashierGroup) (*PaymentGroup, error) {
	switch g {
	case Group1:
		return &l.Group1, nil
	case Group2:
		return &l.Group2, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
}

func (l *PaymentLedger) SetField(g CashierGroup, field PaymentField, raw string) (PaymentGroup, error) {
	grp, err := l.Group(g)
	if err != nil {
		return PaymentGroup{}, err
	}
	v := grp.field(field)
	if v == nil {
		return PaymentGroup{}, fmt.Errorf("%w: payment %q", ErrUnknownField, field)
	}
	*v = ParseDecimal(raw)
	return *grp, nil
}

func (l PaymentLedger) Total() decimal.Decimal {
	return l.Group1.GroupTotal().Add(l.Group2.GroupTotal())
}
