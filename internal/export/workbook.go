package export

import (
	"fmt"
	"io"

	"fuelstation-backend/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary    = "Summary"
	SheetPumps      = "Pumps"
	SheetLubricants = "Lubricants"
	SheetPayments   = "Payments"
	SheetCash       = "Cash"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func FileName(e ledger.DailyEntry) string {
	return fmt.Sprintf("daily-sales-%s-%d.xlsx", e.Date, e.EntryNumber)
}

func WriteEntry(w io.Writer, e ledger.DailyEntry) error {
	f, err := NewWorkbook(e)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type styles struct {
	title, header, money, litres int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	if s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return s, err
	}
	moneyFmt := "#,##0.00"
	if s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt}); err != nil {
		return s, err
	}
	litreFmt := "0.000"
	if s.litres, err = f.NewStyle(&excelize.Style{CustomNumFmt: &litreFmt}); err != nil {
		return s, err
	}
	return s, nil
}

// sheet writes rows starting at A1 and styles the header row.
type sheet struct {
	f    *excelize.File
	name string
	st   styles
	row  int
	err  error
}

func (s *sheet) set(col int, v any, style int) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, s.row)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetCellValue(s.name, cell, v); err != nil {
		s.err = err
		return
	}
	if style != 0 {
		s.err = s.f.SetCellStyle(s.name, cell, cell, style)
	}
}

func (s *sheet) header(labels ...string) {
	s.row++
	for i, l := range labels {
		s.set(i+1, l, s.st.header)
	}
	if s.err == nil && len(labels) > 0 {
		last, _ := excelize.ColumnNumberToName(len(labels))
		s.err = s.f.SetColWidth(s.name, "A", last, 20)
	}
}

func (s *sheet) moneyRow(label string, v decimal.Decimal) {
	s.row++
	s.set(1, label, 0)
	s.set(2, ledger.RoundCurrency(v).InexactFloat64(), s.st.money)
}

// NewWorkbook lays the entry out over five sheets.
func NewWorkbook(e ledger.DailyEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("workbook styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetPumps, SheetLubricants, SheetPayments, SheetCash} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	for _, write := range []func(*excelize.File, styles, ledger.DailyEntry) error{
		writeSummary, writePumps, writeLubricants, writePayments, writeCash,
	} {
		if err := write(f, st, e); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSummary(f *excelize.File, st styles, e ledger.DailyEntry) error {
	s := &sheet{f: f, name: SheetSummary, st: st}
	sum := ledger.Summarize(e)

	s.row++
	s.set(1, fmt.Sprintf("Daily Sales %s (entry %d)", e.Date, e.EntryNumber), st.title)
	s.row++
	s.header("Item", "Value")
	s.moneyRow("Petrol Sales", sum.PetrolAmount)
	s.moneyRow("Diesel Sales", sum.DieselAmount)
	s.moneyRow("Lubricant Sales", sum.LubricantAmount)
	s.moneyRow("Total Income", sum.TotalIncome)
	s.moneyRow("Digital Payments", sum.TotalDigitalPayments)
	s.moneyRow("Must Be", sum.MustBe)
	s.moneyRow("Cash Counted", sum.TotalCashCounted)
	s.moneyRow("Shortage", sum.Shortage)
	s.row++
	s.set(1, "Status", 0)
	s.set(2, string(sum.ShortageStatus), 0)
	return s.err
}

func writePumps(f *excelize.File, st styles, e ledger.DailyEntry) error {
	s := &sheet{f: f, name: SheetPumps, st: st}
	s.header("Pump", "Opening", "Closing", "Litres", "Price/Litre", "Amount")
	for _, r := range e.Pumps {
		sales := ledger.ComputeSales(r)
		s.row++
		s.set(1, r.Pump.Label(), 0)
		s.set(2, ledger.RoundLitres(r.OpeningReading).InexactFloat64(), st.litres)
		s.set(3, ledger.RoundLitres(r.ClosingReading).InexactFloat64(), st.litres)
		s.set(4, ledger.RoundLitres(sales.Litres).InexactFloat64(), st.litres)
		s.set(5, ledger.RoundCurrency(r.PricePerLitre).InexactFloat64(), st.money)
		s.set(6, ledger.RoundCurrency(sales.Amount).InexactFloat64(), st.money)
	}
	return s.err
}

func writeLubricants(f *excelize.File, st styles, e ledger.DailyEntry) error {
	s := &sheet{f: f, name: SheetLubricants, st: st}
	s.header("Item", "Count", "Unit Price", "Amount")
	for _, it := range e.Lubricant.Items {
		s.row++
		s.set(1, it.Name, 0)
		s.set(2, it.Count, 0)
		s.set(3, ledger.RoundCurrency(it.UnitPrice).InexactFloat64(), st.money)
		s.set(4, ledger.RoundCurrency(it.LineAmount()).InexactFloat64(), st.money)
	}

	s.row++
	s.header("Oil Sales", "Value")
	l := e.Lubricant
	for _, kv := range []struct {
		label string
		v     decimal.Decimal
		style int
	}{
		{"Yesterday Reading", l.YesterdayReading, st.litres},
		{"Today Reading", l.TodayReading, st.litres},
		{"Total Litres", l.TotalLitres, st.litres},
		{"Total Amount", l.TotalAmount, st.money},
		{"Distilled Water", l.DistilledWater, st.money},
		{"Waste", l.Waste, st.money},
	} {
		s.row++
		s.set(1, kv.label, 0)
		s.set(2, kv.v.InexactFloat64(), kv.style)
	}
	return s.err
}

func writePayments(f *excelize.File, st styles, e ledger.DailyEntry) error {
	s := &sheet{f: f, name: SheetPayments, st: st}
	s.header("Method", ledger.Group1.Label(), ledger.Group2.Label())
	for _, field := range ledger.PaymentFields {
		s.row++
		s.set(1, field.Label(), 0)
		s.set(2, ledger.RoundCurrency(e.Payments.Group1.Value(field)).InexactFloat64(), st.money)
		s.set(3, ledger.RoundCurrency(e.Payments.Group2.Value(field)).InexactFloat64(), st.money)
	}
	s.row++
	s.set(1, "Total", 0)
	s.set(2, ledger.RoundCurrency(e.Payments.Group1.GroupTotal()).InexactFloat64(), st.money)
	s.set(3, ledger.RoundCurrency(e.Payments.Group2.GroupTotal()).InexactFloat64(), st.money)
	return s.err
}

func writeCash(f *excelize.File, st styles, e ledger.DailyEntry) error {
	s := &sheet{f: f, name: SheetCash, st: st}
	s.header("Denomination", ledger.Group1.Label(), ledger.Group2.Label())
	for _, field := range ledger.CashFields {
		s.row++
		s.set(1, field.Label(), 0)
		if field == ledger.FieldCoins {
			s.set(2, ledger.RoundCurrency(e.Cash.Group1.Coins).InexactFloat64(), st.money)
			s.set(3, ledger.RoundCurrency(e.Cash.Group2.Coins).InexactFloat64(), st.money)
			continue
		}
		s.set(2, e.Cash.Group1.Count(field), 0)
		s.set(3, e.Cash.Group2.Count(field), 0)
	}
	s.row++
	s.set(1, "Total", 0)
	s.set(2, ledger.RoundCurrency(e.Cash.Group1.GroupTotal()).InexactFloat64(), st.money)
	s.set(3, ledger.RoundCurrency(e.Cash.Group2.GroupTotal()).InexactFloat64(), st.money)
	return s.err
}
