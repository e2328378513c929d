package ledger

import "time"

// DailyEntry is one submission of a business day's figures. Date and
// EntryNumber identify it within a station.
type DailyEntry struct {
	Date        Day             `json:"date"`
	EntryNumber int             `json:"entry_number"`
	Pumps       PumpLedger      `json:"pumps"`
	Lubricant   LubricantLedger `json:"lubricant"`
	Payments    PaymentLedger   `json:"payments"`
	Cash        CashLedger      `json:"cash"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}

// DefaultEntryNumber is used when a caller does not name an entry.
const DefaultEntryNumber = 1

// NewDailyEntry returns an all-zero entry at seed prices.
func NewDailyEntry(day Day, entryNumber int) DailyEntry {
	if entryNumber < 1 {
		entryNumber = DefaultEntryNumber
	}
	return DailyEntry{
		Date:        day,
		EntryNumber: entryNumber,
		Pumps:       NewPumpLedger(),
		Lubricant:   NewLubricantLedger(),
		Payments:    NewPaymentLedger(),
		Cash:        NewCashLedger(),
	}
}

// Normalize fixes up an entry decoded from a client: pump slots are
// re-keyed, at least one lubricant item exists, the entry number is >= 1.
func (e *DailyEntry) Normalize() {
	if e.EntryNumber < 1 {
		e.EntryNumber = DefaultEntryNumber
	}
	e.Pumps = e.Pumps.Normalized()
	e.Lubricant = e.Lubricant.Normalized()
}
