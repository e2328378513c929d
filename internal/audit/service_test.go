package audit

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"fuelstation-backend/internal/database"
	"fuelstation-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	return NewService(db)
}

func TestWriteLogAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	station := uuid.New()
	other := uuid.New()

	require.NoError(t, svc.WriteLog(ctx, LogOptions{
		StationID:  station,
		Role:       "Manager",
		EntityType: "daily_sale",
		EntityKey:  "2024-06-01#1",
		Action:     models.AuditActionCreate,
		After:      map[string]string{"total_income": "100.00"},
	}))
	require.NoError(t, svc.WriteLog(ctx, LogOptions{
		StationID:  station,
		EntityType: "daily_sale",
		EntityKey:  "2024-06-02#1",
		Action:     models.AuditActionDelete,
	}))
	require.NoError(t, svc.WriteLog(ctx, LogOptions{
		StationID: other,
		Action:    models.AuditActionLogin,
	}))

	all, err := svc.List(ctx, Filter{StationID: station})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	created, err := svc.List(ctx, Filter{StationID: station, Action: models.AuditActionCreate})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, "2024-06-01#1", created[0].EntityKey)
	assert.JSONEq(t, `{"total_income":"100.00"}`, string(created[0].AfterData))
	assert.Equal(t, "null", string(created[0].BeforeData))
}

func TestListAuditLogsHandler(t *testing.T) {
	svc := newTestService(t)
	station := uuid.New()
	require.NoError(t, svc.WriteLog(context.Background(), LogOptions{
		StationID: station, EntityType: "daily_sale", EntityKey: "2024-06-01#2", Action: models.AuditActionUpdate,
	}))

	app := fiber.New()
	app.Get("/audit-logs", ListAuditLogsHandler(svc, station))

	resp, err := app.Test(httptest.NewRequest("GET", "/audit-logs?entity_type=daily_sale", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var got []AuditLogResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, models.AuditActionUpdate, got[0].Action)

	resp, err = app.Test(httptest.NewRequest("GET", "/audit-logs?limit=abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
