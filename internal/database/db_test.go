package database

import (
	"path/filepath"
	"testing"

	"fuelstation-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	for _, m := range []any{
		&models.DailySale{},
		&models.PumpReading{},
		&models.OilSale{},
		&models.PaymentMethod{},
		&models.CashDenomination{},
		&models.AuditLog{},
	} {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}
	assert.True(t, db.Migrator().HasIndex(&models.DailySale{}, "idx_daily_sales_key"))

	// second run is a no-op
	require.NoError(t, Migrate(db))
}
