package ledger

import (
	"errors"
	"fmt"
)

var ErrUnknownEdit = errors.New("unknown edit kind")

type EditKind string

const (
	EditPump                EditKind = "pump"
	EditLubricantItem       EditKind = "lubricant_item"
	EditLubricant           EditKind = "lubricant"
	EditAddLubricantItem    EditKind = "add_lubricant_item"
	EditRemoveLubricantItem EditKind = "remove_lubricant_item"
	EditPayment             EditKind = "payment"
	EditCash                EditKind = "cash"
)

// Edit is a single field change sent by the entry form. Only the members
// relevant to Kind are read.
type Edit struct {
	Kind  EditKind     `json:"kind"`
	Pump  string       `json:"pump,omitempty"`
	Group CashierGroup `json:"group,omitempty"`
	Index int          `json:"index,omitempty"`
	Field string       `json:"field,omitempty"`
	Value string       `json:"value,omitempty"`
}

// Apply changes the entry in place. Values that do not parse become zero;
// errors only mean the edit addressed something that does not exist.
func (e *DailyEntry) Apply(ed Edit) error {
	switch ed.Kind {
	case EditPump:
		id, err := ParsePumpID(ed.Pump)
		if err != nil {
			return err
		}
		_, err = e.Pumps.SetField(id, PumpField(ed.Field), ed.Value)
		return err
	case EditLubricantItem:
		_, err := e.Lubricant.SetItemField(ed.Index, LubricantItemField(ed.Field), ed.Value)
		return err
	case EditLubricant:
		return e.Lubricant.SetAggregateField(LubricantField(ed.Field), ed.Value)
	case EditAddLubricantItem:
		e.Lubricant.AddItem()
		return nil
	case EditRemoveLubricantItem:
		e.Lubricant.RemoveItem(ed.Index)
		return nil
	case EditPayment:
		_, err := e.Payments.SetField(ed.Group, PaymentField(ed.Field), ed.Value)
		return err
	case EditCash:
		_, err := e.Cash.SetField(ed.Group, CashField(ed.Field), ed.Value)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownEdit, ed.Kind)
}

// ApplyAll applies edits in order and stops at the first bad one, reporting
// its position.
func (e *DailyEntry) ApplyAll(edits []Edit) error {
	for i, ed := range edits {
		if err := e.Apply(ed); err != nil {
			return fmt.Errorf("edit %d: %w", i, err)
		}
	}
	return nil
}
