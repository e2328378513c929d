package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFreshDayCarriesClosingReadings(t *testing.T) {
	prev := NewDailyEntry(NewDay(2024, 6, 1), 1)
	require.NoError(t, prev.ApplyAll([]Edit{
		{Kind: EditPump, Pump: "diesel3", Field: "opening_reading", Value: "5000"},
		{Kind: EditPump, Pump: "diesel3", Field: "closing_reading", Value: "5123.4"},
		{Kind: EditPump, Pump: "petrol2", Field: "closing_reading", Value: "77.125"},
		{Kind: EditPump, Pump: "petrol2", Field: "price_per_litre", Value: "105"},
		{Kind: EditPayment, Group: Group1, Field: "upi", Value: "900"},
		{Kind: EditLubricant, Field: "waste", Value: "3"},
	}))

	day := NewDay(2024, 6, 2)
	got := SeedFreshDay(day, &prev)

	assert.Equal(t, day, got.Date)
	assert.Equal(t, 1, got.EntryNumber)

	d3, _ := got.Pumps.Reading(PumpID{PumpDiesel, 3})
	assertDecimal(t, "5123.4", d3.OpeningReading)
	assert.True(t, d3.ClosingReading.IsZero())

	p2, _ := got.Pumps.Reading(PumpID{PumpPetrol, 2})
	assertDecimal(t, "77.125", p2.OpeningReading)
	assertDecimal(t, "101.88", p2.PricePerLitre)

	p1, _ := got.Pumps.Reading(PumpID{PumpPetrol, 1})
	assert.True(t, p1.OpeningReading.IsZero())

	assert.True(t, got.Payments.Total().IsZero())
	assert.True(t, got.Lubricant.Waste.IsZero())
	assert.Len(t, got.Lubricant.Items, 1)
}

func TestSeedFreshDayWithoutHistory(t *testing.T) {
	got := SeedFreshDay(NewDay(2024, 1, 1), nil)
	for _, r := range got.Pumps {
		assert.True(t, r.OpeningReading.IsZero())
	}
	assert.True(t, TotalIncome(got).IsZero())
}

func TestEmptyFields(t *testing.T) {
	e := NewDailyEntry(NewDay(2024, 1, 1), 1)
	all := EmptyFields(e)

	// 16 pump readings, 2 oil meters, 12 payment fields, 14 cash fields
	assert.Len(t, all, 44)
	assert.Contains(t, all, "Petrol 1 - Opening Reading")
	assert.Contains(t, all, "Diesel 4 - Closing Reading")
	assert.Contains(t, all, "Oil Sales - Yesterday Reading")
	assert.Contains(t, all, "Payment Group 1 - UPI")
	assert.Contains(t, all, "Payment Group 2 - Evening Locker")
	assert.Contains(t, all, "Cash Group 1 - ₹500 Notes")
	assert.Contains(t, all, "Cash Group 2 - Coins")

	require.NoError(t, e.ApplyAll([]Edit{
		{Kind: EditPump, Pump: "petrol1", Field: "opening_reading", Value: "1"},
		{Kind: EditPayment, Group: Group1, Field: "upi", Value: "1"},
		{Kind: EditCash, Group: Group2, Field: "coins", Value: "0.5"},
	}))
	some := EmptyFields(e)
	assert.Len(t, some, 41)
	assert.NotContains(t, some, "Petrol 1 - Opening Reading")
	assert.NotContains(t, some, "Cash Group 2 - Coins")
}
