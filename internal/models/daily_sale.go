package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PumpType string

const (
	PumpTypePetrol PumpType = "petrol"
	PumpTypeDiesel PumpType = "diesel"
)

type CashierGroup string

const (
	CashierGroup1 CashierGroup = "group1"
	CashierGroup2 CashierGroup = "group2"
)

// DailySale is the parent row of one entry. UserID scopes it to the station
// account; (user_id, sale_date, entry_number) is unique.
type DailySale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_sales_key,priority:1" json:"user_id"`
	SaleDate      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_daily_sales_key,priority:2;index" json:"sale_date"`
	EntryNumber   int             `gorm:"not null;default:1;uniqueIndex:idx_daily_sales_key,priority:3" json:"entry_number"`
	TotalIncome   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_income"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_expenses"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	PumpReadings      []PumpReading      `gorm:"foreignKey:DailySalesID;constraint:OnDelete:CASCADE" json:"pump_readings,omitempty"`
	OilSales          []OilSale          `gorm:"foreignKey:DailySalesID;constraint:OnDelete:CASCADE" json:"oil_sales,omitempty"`
	PaymentMethods    []PaymentMethod    `gorm:"foreignKey:DailySalesID;constraint:OnDelete:CASCADE" json:"payment_methods,omitempty"`
	CashDenominations []CashDenomination `gorm:"foreignKey:DailySalesID;constraint:OnDelete:CASCADE" json:"cash_denominations,omitempty"`
}

func (DailySale) TableName() string { return "daily_sales" }

func (d *DailySale) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type PumpReading struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	DailySalesID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"daily_sales_id"`
	PumpType       PumpType        `gorm:"size:10;not null" json:"pump_type"`
	PumpNumber     int             `gorm:"not null" json:"pump_number"`
	OpeningReading decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"opening_reading"`
	ClosingReading decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"closing_reading"`
	PricePerLitre  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price_per_litre"`
	SalesLitres    decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"sales_litres"`
	SalesAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"sales_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (p *PumpReading) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// OilSale is one lubricant item. The ledger-wide figures (meter readings,
// totals, distilled water, waste) are repeated on every row of an entry and
// read back from the first row by position.
type OilSale struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	DailySalesID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"daily_sales_id"`
	Position         int             `gorm:"not null;default:0" json:"position"`
	OilName          string          `gorm:"size:100" json:"oil_name"`
	OilCount         int64           `gorm:"not null;default:0" json:"oil_count"`
	OilPrice         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"oil_price"`
	YesterdayReading decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"yesterday_reading"`
	TodayReading     decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"today_reading"`
	TotalLitres      decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0" json:"total_litres"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_amount"`
	DistilledWater   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"distilled_water"`
	Waste            decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"waste"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (o *OilSale) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// PaymentMethod keeps the historical column layout: UPI is stored in
// phone_pay, gpay and cash_on_hand stay 0 on new rows.
type PaymentMethod struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	DailySalesID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"daily_sales_id"`
	CashierGroup    CashierGroup    `gorm:"size:10;not null" json:"cashier_group"`
	PhonePay        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"phone_pay"`
	GPay            decimal.Decimal `gorm:"column:gpay;type:decimal(14,2);not null;default:0" json:"gpay"`
	BharatFleetCard decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"bharat_fleet_card"`
	Fiserv          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"fiserv"`
	Debit           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"debit"`
	UBI             decimal.Decimal `gorm:"column:ubi;type:decimal(14,2);not null;default:0" json:"ubi"`
	EveningLocker   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"evening_locker"`
	CashOnHand      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"cash_on_hand"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CashDenomination struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	DailySalesID uuid.UUID       `gorm:"type:uuid;not null;index" json:"daily_sales_id"`
	CashierGroup CashierGroup    `gorm:"size:10;not null" json:"cashier_group"`
	Rs500        int64           `gorm:"column:rs_500;not null;default:0" json:"rs_500"`
	Rs200        int64           `gorm:"column:rs_200;not null;default:0" json:"rs_200"`
	Rs100        int64           `gorm:"column:rs_100;not null;default:0" json:"rs_100"`
	Rs50         int64           `gorm:"column:rs_50;not null;default:0" json:"rs_50"`
	Rs20         int64           `gorm:"column:rs_20;not null;default:0" json:"rs_20"`
	Rs10         int64           `gorm:"column:rs_10;not null;default:0" json:"rs_10"`
	Coins        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"coins"`
	TotalCash    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_cash"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (c *CashDenomination) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
