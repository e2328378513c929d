package sales

import (
	"sort"

	"fuelstation-backend/internal/ledger"
	"fuelstation-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a stored entry together with its persisted totals.
type Record struct {
	ID            uuid.UUID         `json:"id"`
	Entry         ledger.DailyEntry `json:"entry"`
	TotalIncome   decimal.Decimal   `json:"total_income"`
	TotalExpenses decimal.Decimal   `json:"total_expenses"`
}

// Key identifies the record within its station.
func (r Record) Key() string { return EntryKey(r.Entry.Date, r.Entry.EntryNumber) }

// atColumnScale rounds every stored input to the scale of its column so the
// totals written with the row match what a reload recomputes.
func atColumnScale(e ledger.DailyEntry) ledger.DailyEntry {
	for i := range e.Pumps {
		p := &e.Pumps[i]
		p.OpeningReading = ledger.RoundLitres(p.OpeningReading)
		p.ClosingReading = ledger.RoundLitres(p.ClosingReading)
		p.PricePerLitre = ledger.RoundCurrency(p.PricePerLitre)
	}

	lub := &e.Lubricant
	lub.Items = append([]ledger.LubricantItem(nil), lub.Items...)
	for i := range lub.Items {
		lub.Items[i].UnitPrice = ledger.RoundCurrency(lub.Items[i].UnitPrice)
	}
	lub.YesterdayReading = ledger.RoundLitres(lub.YesterdayReading)
	lub.TodayReading = ledger.RoundLitres(lub.TodayReading)
	lub.TotalLitres = ledger.RoundLitres(lub.TotalLitres)
	lub.TotalAmount = ledger.RoundCurrency(lub.TotalAmount)
	lub.DistilledWater = ledger.RoundCurrency(lub.DistilledWater)
	lub.Waste = ledger.RoundCurrency(lub.Waste)

	for _, pay := range []*ledger.PaymentGroup{&e.Payments.Group1, &e.Payments.Group2} {
		pay.UPI = ledger.RoundCurrency(pay.UPI)
		pay.BharatFleetCard = ledger.RoundCurrency(pay.BharatFleetCard)
		pay.Fiserv = ledger.RoundCurrency(pay.Fiserv)
		pay.Debit = ledger.RoundCurrency(pay.Debit)
		pay.UBI = ledger.RoundCurrency(pay.UBI)
		pay.EveningLocker = ledger.RoundCurrency(pay.EveningLocker)
	}
	e.Cash.Group1.Coins = ledger.RoundCurrency(e.Cash.Group1.Coins)
	e.Cash.Group2.Coins = ledger.RoundCurrency(e.Cash.Group2.Coins)
	return e
}

func toModel(stationID uuid.UUID, e ledger.DailyEntry) models.DailySale {
	e = atColumnScale(e)
	row := models.DailySale{
		UserID:        stationID,
		SaleDate:      e.Date.Time(),
		EntryNumber:   e.EntryNumber,
		TotalIncome:   ledger.RoundCurrency(ledger.TotalIncome(e)),
		TotalExpenses: decimal.Zero,
	}

	for _, r := range e.Pumps {
		sales := ledger.ComputeSales(r)
		row.PumpReadings = append(row.PumpReadings, models.PumpReading{
			PumpType:       models.PumpType(r.Pump.Type),
			PumpNumber:     r.Pump.Number,
			OpeningReading: r.OpeningReading,
			ClosingReading: r.ClosingReading,
			PricePerLitre:  r.PricePerLitre,
			SalesLitres:    ledger.RoundLitres(sales.Litres),
			SalesAmount:    ledger.RoundCurrency(sales.Amount),
		})
	}

	lub := e.Lubricant.Normalized()
	for i, it := range lub.Items {
		row.OilSales = append(row.OilSales, models.OilSale{
			Position:         i,
			OilName:          it.Name,
			OilCount:         it.Count,
			OilPrice:         it.UnitPrice,
			YesterdayReading: lub.YesterdayReading,
			TodayReading:     lub.TodayReading,
			TotalLitres:      lub.TotalLitres,
			TotalAmount:      lub.TotalAmount,
			DistilledWater:   lub.DistilledWater,
			Waste:            lub.Waste,
		})
	}

	for _, g := range ledger.CashierGroups {
		pay, _ := e.Payments.Group(g)
		row.PaymentMethods = append(row.PaymentMethods, models.PaymentMethod{
			CashierGroup:    models.CashierGroup(g),
			PhonePay:        pay.UPI,
			GPay:            decimal.Zero,
			BharatFleetCard: pay.BharatFleetCard,
			Fiserv:          pay.Fiserv,
			Debit:           pay.Debit,
			UBI:             pay.UBI,
			EveningLocker:   pay.EveningLocker,
			CashOnHand:      decimal.Zero,
		})

		cash, _ := e.Cash.Group(g)
		row.CashDenominations = append(row.CashDenominations, models.CashDenomination{
			CashierGroup: models.CashierGroup(g),
			Rs500:        cash.Rs500,
			Rs200:        cash.Rs200,
			Rs100:        cash.Rs100,
			Rs50:         cash.Rs50,
			Rs20:         cash.Rs20,
			Rs10:         cash.Rs10,
			Coins:        cash.Coins,
			TotalCash:    ledger.RoundCurrency(cash.GroupTotal()),
		})
	}

	return row
}

func fromModel(row models.DailySale) Record {
	e := ledger.NewDailyEntry(ledger.DayOf(row.SaleDate), row.EntryNumber)
	e.CreatedAt = row.CreatedAt
	e.UpdatedAt = row.UpdatedAt

	var pumps ledger.PumpLedger
	for i, p := range row.PumpReadings {
		if i >= len(pumps) {
			break
		}
		pumps[i] = ledger.PumpReading{
			Pump:           ledger.PumpID{Type: ledger.PumpType(p.PumpType), Number: p.PumpNumber},
			OpeningReading: p.OpeningReading,
			ClosingReading: p.ClosingReading,
			PricePerLitre:  p.PricePerLitre,
		}
	}
	e.Pumps = pumps.Normalized()

	oils := append([]models.OilSale(nil), row.OilSales...)
	sort.SliceStable(oils, func(i, j int) bool { return oils[i].Position < oils[j].Position })
	if len(oils) > 0 {
		first := oils[0]
		e.Lubricant = ledger.LubricantLedger{
			YesterdayReading: first.YesterdayReading,
			TodayReading:     first.TodayReading,
			TotalLitres:      first.TotalLitres,
			TotalAmount:      first.TotalAmount,
			DistilledWater:   first.DistilledWater,
			Waste:            first.Waste,
		}
		for _, o := range oils {
			e.Lubricant.Items = append(e.Lubricant.Items, ledger.LubricantItem{
				Name:      o.OilName,
				Count:     o.OilCount,
				UnitPrice: o.OilPrice,
			})
		}
	}

	for _, p := range row.PaymentMethods {
		grp, err := e.Payments.Group(ledger.CashierGroup(p.CashierGroup))
		if err != nil {
			continue
		}
		// older rows split UPI across the phone_pay and gpay columns
		*grp = ledger.PaymentGroup{
			UPI:             p.PhonePay.Add(p.GPay),
			BharatFleetCard: p.BharatFleetCard,
			Fiserv:          p.Fiserv,
			Debit:           p.Debit,
			UBI:             p.UBI,
			EveningLocker:   p.EveningLocker,
		}
	}

	for _, c := range row.CashDenominations {
		grp, err := e.Cash.Group(ledger.CashierGroup(c.CashierGroup))
		if err != nil {
			continue
		}
		*grp = ledger.CashGroup{
			Rs500: c.Rs500,
			Rs200: c.Rs200,
			Rs100: c.Rs100,
			Rs50:  c.Rs50,
			Rs20:  c.Rs20,
			Rs10:  c.Rs10,
			Coins: c.Coins,
		}
	}

	return Record{
		ID:            row.ID,
		Entry:         e,
		TotalIncome:   row.TotalIncome,
		TotalExpenses: row.TotalExpenses,
	}
}
