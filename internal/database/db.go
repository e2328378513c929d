package database

import (
	"fmt"

	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects with the configured driver and applies pending migrations.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if cfg.LogLevel == "debug" {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		dialector = postgres.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DatabaseDriver, err)
	}

	if cfg.DatabaseDriver == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("driver", cfg.DatabaseDriver).Msg("database connected, migrations applied")
	return db, nil
}

// OpenSQLite opens a sqlite file with foreign keys enforced and the schema
// migrated. Tests use it with a path under t.TempDir().
func OpenSQLite(path string) (*gorm.DB, error) {
	return Open(&config.Config{DatabaseDriver: "sqlite", DatabaseDSN: path + "?_foreign_keys=on"})
}

// Migrate runs the schema migrations in order.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202406010001_daily_sales",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.DailySale{},
					&models.PumpReading{},
					&models.OilSale{},
					&models.PaymentMethod{},
					&models.CashDenomination{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("cash_denominations", "payment_methods", "oil_sales", "pump_readings", "daily_sales")
			},
		},
		{
			ID: "202406010002_audit_logs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.AuditLog{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("audit_logs")
			},
		},
	}
}
