package report

import (
	"sort"

	"fuelstation-backend/internal/ledger"

	"github.com/shopspring/decimal"
)

// Point is one entry's revenue split by category.
type Point struct {
	Date        ledger.Day      `json:"date"`
	EntryNumber int             `json:"entry_number"`
	Petrol      decimal.Decimal `json:"petrol"`
	Diesel      decimal.Decimal `json:"diesel"`
	Lubricant   decimal.Decimal `json:"lubricant"`
	Total       decimal.Decimal `json:"total"`
}

type CategoryTotals struct {
	Petrol    decimal.Decimal `json:"petrol"`
	Diesel    decimal.Decimal `json:"diesel"`
	Lubricant decimal.Decimal `json:"lubricant"`
	Total     decimal.Decimal `json:"total"`
}

type Report struct {
	From        string         `json:"from"`
	To          string         `json:"to"`
	Chart       []Point        `json:"chart"`
	Table       []Point        `json:"table"`
	GrandTotals CategoryTotals `json:"grand_totals"`
}

func pointOf(e ledger.DailyEntry) Point {
	petrol := e.Pumps.TotalAmount(ledger.PumpPetrol)
	diesel := e.Pumps.TotalAmount(ledger.PumpDiesel)
	lube := e.Lubricant.Revenue()
	return Point{
		Date:        e.Date,
		EntryNumber: e.EntryNumber,
		Petrol:      petrol,
		Diesel:      diesel,
		Lubricant:   lube,
		Total:       petrol.Add(diesel).Add(lube),
	}
}

func sortEntries(entries []ledger.DailyEntry) []ledger.DailyEntry {
	out := make([]ledger.DailyEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].EntryNumber < out[j].EntryNumber
	})
	return out
}

// BuildSeries returns one point per entry, oldest first. Values are exact;
// Build rounds them for display.
func BuildSeries(entries []ledger.DailyEntry) []Point {
	sorted := sortEntries(entries)
	points := make([]Point, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, pointOf(e))
	}
	return points
}

// Window keeps the last n points. n <= 0 keeps everything.
func Window(points []Point, n int) []Point {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

func BuildCategoryTotals(entries []ledger.DailyEntry) CategoryTotals {
	t := CategoryTotals{
		Petrol:    decimal.Zero,
		Diesel:    decimal.Zero,
		Lubricant: decimal.Zero,
		Total:     decimal.Zero,
	}
	for _, e := range entries {
		p := pointOf(e)
		t.Petrol = t.Petrol.Add(p.Petrol)
		t.Diesel = t.Diesel.Add(p.Diesel)
		t.Lubricant = t.Lubricant.Add(p.Lubricant)
	}
	t.Total = t.Petrol.Add(t.Diesel).Add(t.Lubricant)
	return t
}

func roundPoint(p Point) Point {
	p.Petrol = ledger.RoundCurrency(p.Petrol)
	p.Diesel = ledger.RoundCurrency(p.Diesel)
	p.Lubricant = ledger.RoundCurrency(p.Lubricant)
	p.Total = ledger.RoundCurrency(p.Total)
	return p
}

// Build assembles the chart series (oldest first), the table (newest first)
// and the category totals over every entry given.
func Build(entries []ledger.DailyEntry, chartWindow, tableWindow int) Report {
	series := BuildSeries(entries)

	chart := Window(series, chartWindow)
	rep := Report{
		Chart: make([]Point, 0, len(chart)),
		Table: []Point{},
	}
	for _, p := range chart {
		rep.Chart = append(rep.Chart, roundPoint(p))
	}

	table := Window(series, tableWindow)
	for i := len(table) - 1; i >= 0; i-- {
		rep.Table = append(rep.Table, roundPoint(table[i]))
	}

	if len(series) > 0 {
		rep.From = series[0].Date.String()
		rep.To = series[len(series)-1].Date.String()
	}

	totals := BuildCategoryTotals(entries)
	rep.GrandTotals = CategoryTotals{
		Petrol:    ledger.RoundCurrency(totals.Petrol),
		Diesel:    ledger.RoundCurrency(totals.Diesel),
		Lubricant: ledger.RoundCurrency(totals.Lubricant),
		Total:     ledger.RoundCurrency(totals.Total),
	}
	return rep
}
