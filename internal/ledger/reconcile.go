package ledger

import "github.com/shopspring/decimal"

// TotalIncome is every pump amount plus the lubricant revenue.
func TotalIncome(e DailyEntry) decimal.Decimal {
	total := decimal.Zero
	for _, r := range e.Pumps {
		total = total.Add(ComputeSales(r).Amount)
	}
	return total.Add(e.Lubricant.Revenue())
}

func TotalDigitalPayments(e DailyEntry) decimal.Decimal {
	return e.Payments.Total()
}

func TotalCashCounted(e DailyEntry) decimal.Decimal {
	return e.Cash.Total()
}

// MustBe is the cash expected in the drawers.
func MustBe(e DailyEntry) decimal.Decimal {
	return TotalIncome(e).Sub(TotalDigitalPayments(e))
}

// Shortage is positive when cash is missing and negative on a surplus.
func Shortage(e DailyEntry) decimal.Decimal {
	return MustBe(e).Sub(TotalCashCounted(e))
}

type ShortageStatus string

const (
	StatusShortage ShortageStatus = "shortage"
	StatusSurplus  ShortageStatus = "surplus"
	StatusBalanced ShortageStatus = "balanced"
)

func ClassifyShortage(shortage decimal.Decimal) ShortageStatus {
	switch shortage.Sign() {
	case 1:
		return StatusShortage
	case -1:
		return StatusSurplus
	}
	return StatusBalanced
}

// Summary carries the derived figures of an entry rounded for display.
type Summary struct {
	PetrolLitres         decimal.Decimal `json:"petrol_litres"`
	DieselLitres         decimal.Decimal `json:"diesel_litres"`
	PetrolAmount         decimal.Decimal `json:"petrol_amount"`
	DieselAmount         decimal.Decimal `json:"diesel_amount"`
	LubricantAmount      decimal.Decimal `json:"lubricant_amount"`
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalDigitalPayments decimal.Decimal `json:"total_digital_payments"`
	TotalCashCounted     decimal.Decimal `json:"total_cash_counted"`
	MustBe               decimal.Decimal `json:"must_be"`
	Shortage             decimal.Decimal `json:"shortage"`
	ShortageStatus       ShortageStatus  `json:"shortage_status"`

	// PumpSales is keyed by pump id text (petrol1 ... diesel4).
	PumpSales map[string]Sales `json:"pump_sales"`
}

// Summarize computes everything exactly and rounds only the results.
func Summarize(e DailyEntry) Summary {
	// status follows the displayed figure so 0.004 reads as balanced
	shortage := RoundCurrency(Shortage(e))
	s := Summary{
		PetrolLitres:         RoundLitres(e.Pumps.TotalLitres(PumpPetrol)),
		DieselLitres:         RoundLitres(e.Pumps.TotalLitres(PumpDiesel)),
		PetrolAmount:         RoundCurrency(e.Pumps.TotalAmount(PumpPetrol)),
		DieselAmount:         RoundCurrency(e.Pumps.TotalAmount(PumpDiesel)),
		LubricantAmount:      RoundCurrency(e.Lubricant.Revenue()),
		TotalIncome:          RoundCurrency(TotalIncome(e)),
		TotalDigitalPayments: RoundCurrency(TotalDigitalPayments(e)),
		TotalCashCounted:     RoundCurrency(TotalCashCounted(e)),
		MustBe:               RoundCurrency(MustBe(e)),
		Shortage:             shortage,
		ShortageStatus:       ClassifyShortage(shortage),
		PumpSales:            make(map[string]Sales, len(e.Pumps)),
	}
	for _, r := range e.Pumps {
		sales := ComputeSales(r)
		s.PumpSales[r.Pump.String()] = Sales{
			Litres: RoundLitres(sales.Litres),
			Amount: RoundCurrency(sales.Amount),
		}
	}
	return s
}
