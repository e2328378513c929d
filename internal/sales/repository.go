package sales

//go:generate mockgen -destination=mocks/mock_repository.go -source=repository.go Repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fuelstation-backend/internal/ledger"
	"fuelstation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEntryNotFound = errors.New("daily entry not found")

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// FetchOptions filters FetchAll. Zero values mean no filter and no limit.
type FetchOptions struct {
	Date  ledger.Day
	Order Order
	Limit int
}

// Repository persists daily entries keyed by (station, date, entry number).
type Repository interface {
	FindByDate(ctx context.Context, stationID uuid.UUID, day ledger.Day, entryNumber int) (*Record, error)
	// FindLatestByDate returns the highest-numbered entry of the day.
	FindLatestByDate(ctx context.Context, stationID uuid.UUID, day ledger.Day) (*Record, error)
	// Save updates the entry in place or creates it; created reports which.
	Save(ctx context.Context, stationID uuid.UUID, entry ledger.DailyEntry) (rec *Record, created bool, err error)
	Delete(ctx context.Context, stationID uuid.UUID, day ledger.Day, entryNumber int) error
	FetchAll(ctx context.Context, stationID uuid.UUID, opts FetchOptions) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PumpReadings").
		Preload("OilSales", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("PaymentMethods").
		Preload("CashDenominations")
}

func keyScope(stationID uuid.UUID, day ledger.Day, entryNumber int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ? AND sale_date = ? AND entry_number = ?", stationID, day.Time(), entryNumber)
	}
}

func (r *repository) FindByDate(ctx context.Context, stationID uuid.UUID, day ledger.Day, entryNumber int) (*Record, error) {
	var row models.DailySale
	err := withChildren(r.db.WithContext(ctx)).
		Scopes(keyScope(stationID, day, entryNumber)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find entry %s: %w", EntryKey(day, entryNumber), err)
	}
	rec := fromModel(row)
	return &rec, nil
}

func (r *repository) FindLatestByDate(ctx context.Context, stationID uuid.UUID, day ledger.Day) (*Record, error) {
	var row models.DailySale
	err := withChildren(r.db.WithContext(ctx)).
		Where("user_id = ? AND sale_date = ?", stationID, day.Time()).
		Order("entry_number DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find latest entry for %s: %w", day, err)
	}
	rec := fromModel(row)
	return &rec, nil
}

// Save runs in one transaction: the parent is located or created, then each
// child table is cleared and rewritten for that parent.
func (r *repository) Save(ctx context.Context, stationID uuid.UUID, entry ledger.DailyEntry) (*Record, bool, error) {
	entry.Normalize()
	row := toModel(stationID, entry)
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent models.DailySale
		err := tx.Scopes(keyScope(stationID, entry.Date, entry.EntryNumber)).First(&parent).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			parent = models.DailySale{
				UserID:        row.UserID,
				SaleDate:      row.SaleDate,
				EntryNumber:   row.EntryNumber,
				TotalIncome:   row.TotalIncome,
				TotalExpenses: row.TotalExpenses,
			}
			if err := tx.Omit(clause.Associations).Create(&parent).Error; err != nil {
				return fmt.Errorf("create parent: %w", err)
			}
			created = true
		case err != nil:
			return fmt.Errorf("locate parent: %w", err)
		default:
			if err := tx.Model(&parent).Updates(map[string]any{
				"total_income":   row.TotalIncome,
				"total_expenses": row.TotalExpenses,
				"updated_at":     time.Now(),
			}).Error; err != nil {
				return fmt.Errorf("update parent: %w", err)
			}
		}

		for i := range row.PumpReadings {
			row.PumpReadings[i].DailySalesID = parent.ID
		}
		for i := range row.OilSales {
			row.OilSales[i].DailySalesID = parent.ID
		}
		for i := range row.PaymentMethods {
			row.PaymentMethods[i].DailySalesID = parent.ID
		}
		for i := range row.CashDenominations {
			row.CashDenominations[i].DailySalesID = parent.ID
		}

		if err := replaceChildren(tx, parent.ID, &models.PumpReading{}, row.PumpReadings); err != nil {
			return fmt.Errorf("pump readings: %w", err)
		}
		if err := replaceChildren(tx, parent.ID, &models.OilSale{}, row.OilSales); err != nil {
			return fmt.Errorf("oil sales: %w", err)
		}
		if err := replaceChildren(tx, parent.ID, &models.PaymentMethod{}, row.PaymentMethods); err != nil {
			return fmt.Errorf("payment methods: %w", err)
		}
		if err := replaceChildren(tx, parent.ID, &models.CashDenomination{}, row.CashDenominations); err != nil {
			return fmt.Errorf("cash denominations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("save entry %s: %w", EntryKey(entry.Date, entry.EntryNumber), err)
	}

	rec, err := r.FindByDate(ctx, stationID, entry.Date, entry.EntryNumber)
	if err != nil {
		return nil, false, err
	}
	return rec, created, nil
}

func replaceChildren[T any](tx *gorm.DB, parentID uuid.UUID, model *T, rows []T) error {
	if err := tx.Where("daily_sales_id = ?", parentID).Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *repository) Delete(ctx context.Context, stationID uuid.UUID, day ledger.Day, entryNumber int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parent models.DailySale
		err := tx.Scopes(keyScope(stationID, day, entryNumber)).First(&parent).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		if err != nil {
			return err
		}

		for _, child := range []any{&models.PumpReading{}, &models.OilSale{}, &models.PaymentMethod{}, &models.CashDenomination{}} {
			if err := tx.Where("daily_sales_id = ?", parent.ID).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&parent).Error
	})
	if errors.Is(err, ErrEntryNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("delete entry %s: %w", EntryKey(day, entryNumber), err)
	}
	return nil
}

func (r *repository) FetchAll(ctx context.Context, stationID uuid.UUID, opts FetchOptions) ([]Record, error) {
	q := withChildren(r.db.WithContext(ctx)).Where("user_id = ?", stationID)
	if !opts.Date.IsZero() {
		q = q.Where("sale_date = ?", opts.Date.Time())
	}
	if opts.Order == OrderDesc {
		q = q.Order("sale_date DESC").Order("entry_number DESC")
	} else {
		q = q.Order("sale_date ASC").Order("entry_number ASC")
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var rows []models.DailySale
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch entries: %w", err)
	}

	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}
