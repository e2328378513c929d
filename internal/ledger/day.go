package ledger

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayLayout is the wire format of a business date.
const DayLayout = "2006-01-02"

// Day is a calendar business date, stored as UTC midnight.
type Day struct {
	t time.Time
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf drops the clock part of t, keeping t's calendar date.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return DayOf(t), nil
}

func (d Day) Time() time.Time { return d.t }

func (d Day) IsZero() bool { return d.t.IsZero() }

func (d Day) String() string { return d.t.Format(DayLayout) }

// Prev returns the previous calendar day.
func (d Day) Prev() Day { return Day{t: d.t.AddDate(0, 0, -1)} }

func (d Day) Next() Day { return Day{t: d.t.AddDate(0, 0, 1)} }

func (d Day) Before(o Day) bool { return d.t.Before(o.t) }

func (d Day) Equal(o Day) bool { return d.t.Equal(o.t) }

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
