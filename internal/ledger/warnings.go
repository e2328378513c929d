package ledger

import "fmt"

// EmptyFields lists the significant fields still at zero, labelled the way the
// entry form shows them. It is advisory; saving is never blocked.
func EmptyFields(e DailyEntry) []string {
	var empty []string

	for _, r := range e.Pumps {
		if r.OpeningReading.IsZero() {
			empty = append(empty, r.Pump.Label()+" - Opening Reading")
		}
		if r.ClosingReading.IsZero() {
			empty = append(empty, r.Pump.Label()+" - Closing Reading")
		}
	}

	if e.Lubricant.YesterdayReading.IsZero() {
		empty = append(empty, "Oil Sales - Yesterday Reading")
	}
	if e.Lubricant.TodayReading.IsZero() {
		empty = append(empty, "Oil Sales - Today Reading")
	}

	for _, g := range CashierGroups {
		grp, _ := e.Payments.Group(g)
		for _, f := range PaymentFields {
			if grp.Value(f).IsZero() {
				empty = append(empty, fmt.Sprintf("Payment %s - %s", g.Label(), f.Label()))
			}
		}
	}

	for _, g := range CashierGroups {
		grp, _ := e.Cash.Group(g)
		for _, f := range CashFields {
			zero := grp.Count(f) == 0
			if f == FieldCoins {
				zero = grp.Coins.IsZero()
			}
			if zero {
				empty = append(empty, fmt.Sprintf("Cash %s - %s", g.Label(), f.Label()))
			}
		}
	}

	return empty
}
