package ledger

// FormMode tells the client whether it is looking at a stored entry.
type FormMode string

const (
	ModeEditingExisting FormMode = "editing_existing"
	ModeFreshDay        FormMode = "fresh_day"
)

// SeedFreshDay builds the form for a day that has no stored entry. Each pump
// opens at prev's closing reading for the same pump, or 0 without prev.
// Everything else starts at its default; prices come from the seed constants.
func SeedFreshDay(day Day, prev *DailyEntry) DailyEntry {
	e := NewDailyEntry(day, DefaultEntryNumber)
	if prev == nil {
		return e
	}
	closing := prev.Pumps.Normalized()
	for i := range e.Pumps {
		e.Pumps[i].OpeningReading = closing[i].ClosingReading
	}
	return e
}
