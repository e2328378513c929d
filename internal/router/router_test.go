package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/database"
	"fuelstation-backend/internal/ledger"
	"fuelstation-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:              "0123456789abcdef0123456789abcdef",
		CORSOrigins:            "http://localhost:5173",
		StationID:              uuid.MustParse(config.DefaultStationID),
		ChartWindow:            30,
		TableWindow:            10,
		SupervisorHistoryLimit: 15,
	}

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "router.db"))
	require.NoError(t, err)

	gate, err := auth.NewRoleGate(map[auth.Role]string{
		auth.RoleProprietor: "owner-pass",
		auth.RoleManager:    "manager-pass",
		auth.RoleSupervisor: "super-pass",
	}, bcrypt.MinCost)
	require.NoError(t, err)

	auditSvc := audit.NewService(db)
	pending := sales.NewPendingDeleter(time.Minute)
	t.Cleanup(pending.Stop)

	return New(Deps{
		Config:   cfg,
		Gate:     gate,
		Sessions: auth.NewSessionStore(time.Hour),
		Audit:    auditSvc,
		Sales: sales.NewService(sales.NewRepository(db), pending, auditSvc, sales.Options{
			SupervisorHistoryLimit: cfg.SupervisorHistoryLimit,
		}),
	})
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App, role auth.Role, password string) string {
	t.Helper()
	status, body := call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"role":     string(role),
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, status, string(body))
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	app := newTestApp(t)

	status, body := call(t, app, http.MethodGet, "/api/entries", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Authorization header missing"}`, string(body))

	status, _ = call(t, app, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"role": "Manager", "password": "nope"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestSupervisorCannotDeleteOrReadAudit(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, auth.RoleSupervisor, "super-pass")

	status, body := call(t, app, http.MethodPut, "/api/entries/2024-06-01/1", token,
		ledger.NewDailyEntry(ledger.NewDay(2024, 6, 1), 1))
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, _ = call(t, app, http.MethodDelete, "/api/entries/2024-06-01/1", token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = call(t, app, http.MethodPost, "/api/entries/pending-delete/cancel", token,
		sales.CancelDeleteRequest{Date: "2024-06-01", EntryNumber: 1})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = call(t, app, http.MethodGet, "/api/audit-logs", token, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestProprietorFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, auth.RoleProprietor, "owner-pass")

	entry := ledger.NewDailyEntry(ledger.NewDay(2024, 6, 1), 2)
	require.NoError(t, entry.ApplyAll([]ledger.Edit{
		{Kind: ledger.EditPump, Pump: "petrol1", Field: "opening_reading", Value: "1000"},
		{Kind: ledger.EditPump, Pump: "petrol1", Field: "closing_reading", Value: "1050.5"},
	}))
	status, body := call(t, app, http.MethodPut, "/api/entries/2024-06-01/2", token, entry)
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, body = call(t, app, http.MethodGet, "/api/reports/sales", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var rep struct {
		GrandTotals struct {
			Petrol string `json:"petrol"`
		} `json:"grand_totals"`
	}
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Equal(t, "5144.94", rep.GrandTotals.Petrol)

	status, _ = call(t, app, http.MethodDelete, "/api/entries/2024-06-01/2", token, nil)
	require.Equal(t, fiber.StatusAccepted, status)
	status, _ = call(t, app, http.MethodPost, "/api/entries/pending-delete/cancel", token,
		sales.CancelDeleteRequest{Date: "2024-06-01", EntryNumber: 2})
	require.Equal(t, fiber.StatusOK, status)

	status, body = call(t, app, http.MethodGet, "/api/audit-logs", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var logs []struct {
		Action string `json:"action"`
	}
	require.NoError(t, json.Unmarshal(body, &logs))
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	assert.ElementsMatch(t, []string{"login", "create", "schedule_delete", "cancel_delete"}, actions)
}

func TestLogoutEndsSession(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, auth.RoleManager, "manager-pass")

	status, body := call(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var me auth.SessionResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, auth.RoleManager, me.Role)
	assert.True(t, me.CanDelete)

	status, _ = call(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusNoContent, status)

	status, _ = call(t, app, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
