package sales_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/export"
	"fuelstation-backend/internal/ledger"
	"fuelstation-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestApp(svc *sales.Service, role auth.Role) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		sess := session(role)
		c.Locals(auth.CtxSessionKey, sess)
		c.Locals(auth.CtxUserRoleKey, sess.Role)
		return c.Next()
	})
	app.Get("/entries/form", sales.FormHandler(svc))
	app.Post("/entries/form/apply", sales.ApplyHandler(svc))
	app.Get("/entries/pending-delete", sales.PendingDeleteHandler(svc))
	app.Post("/entries/pending-delete/cancel", sales.CancelDeleteHandler(svc))
	app.Get("/entries", sales.ListHandler(svc))
	app.Put("/entries/:date/:number", sales.SaveHandler(svc))
	app.Delete("/entries/:date/:number", sales.DeleteHandler(svc))
	app.Get("/entries/:date/:number/export", sales.ExportHandler(svc))
	return app
}

func newSQLiteService(t *testing.T) *sales.Service {
	pending := sales.NewPendingDeleter(undoWindow)
	t.Cleanup(pending.Stop)
	return sales.NewService(sales.NewRepository(openDB(t)), pending, nil, sales.Options{SupervisorHistoryLimit: 15})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func TestFormHandlerBadInput(t *testing.T) {
	app := newTestApp(newSQLiteService(t), auth.RoleManager)

	resp, _ := doJSON(t, app, "GET", "/entries/form?date=01-06-2024", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/entries/form?date=2024-06-01&entry_number=0", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSaveThenLoadOverHTTP(t *testing.T) {
	app := newTestApp(newSQLiteService(t), auth.RoleManager)

	resp, body := doJSON(t, app, "GET", "/entries/form?date=2024-06-01", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var state sales.FormState
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, ledger.ModeFreshDay, state.Mode)

	resp, body = doJSON(t, app, "POST", "/entries/form/apply", sales.ApplyRequest{
		Mode:  state.Mode,
		Entry: state.Entry,
		Edits: []ledger.Edit{
			pumpEdit("petrol1", "opening_reading", "1000"),
			pumpEdit("petrol1", "closing_reading", "1050.5"),
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &state))
	assertDecimal(t, "5144.94", state.Summary.TotalIncome)

	resp, body = doJSON(t, app, "PUT", "/entries/2024-06-01/1", state.Entry)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	var saved sales.SaveResult
	require.NoError(t, json.Unmarshal(body, &saved))
	assert.True(t, saved.Created)
	assert.NotContains(t, saved.Warnings, "Petrol 1 - Closing Reading")
	assert.Contains(t, saved.Warnings, "Petrol 2 - Closing Reading")

	resp, _ = doJSON(t, app, "PUT", "/entries/2024-06-01/1", state.Entry)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, "GET", "/entries/form?date=2024-06-02", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &state))
	assert.Equal(t, ledger.ModeFreshDay, state.Mode)
	assertDecimal(t, "1050.5", state.Entry.Pumps[0].OpeningReading)

	resp, body = doJSON(t, app, "GET", "/entries?order=desc", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []sales.Record
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "2024-06-01#1", list[0].Key())
}

func TestSaveHandlerPlacesPumpsWithoutIDByPosition(t *testing.T) {
	app := newTestApp(newSQLiteService(t), auth.RoleManager)

	pumps := make([]map[string]string, 8)
	for i := range pumps {
		pumps[i] = map[string]string{"opening_reading": "0", "closing_reading": "0", "price_per_litre": "0"}
	}
	pumps[0] = map[string]string{"opening_reading": "1000", "closing_reading": "1050.5", "price_per_litre": "101.88"}

	resp, body := doJSON(t, app, "PUT", "/entries/2024-06-01/1", map[string]any{"pumps": pumps})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	var saved sales.SaveResult
	require.NoError(t, json.Unmarshal(body, &saved))
	assertDecimal(t, "5144.94", saved.Record.TotalIncome)
}

func TestApplyHandlerRejectsUnknownTargets(t *testing.T) {
	app := newTestApp(newSQLiteService(t), auth.RoleManager)
	entry := ledger.NewDailyEntry(ledger.NewDay(2024, 6, 1), 1)

	resp, _ := doJSON(t, app, "POST", "/entries/form/apply", sales.ApplyRequest{
		Entry: entry,
		Edits: []ledger.Edit{{Kind: ledger.EditCash, Group: ledger.Group1, Field: "rs_2000", Value: "1"}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/entries/form/apply", map[string]any{"edits": []any{}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteAndCancelOverHTTP(t *testing.T) {
	svc := newSQLiteService(t)
	app := newTestApp(svc, auth.RoleProprietor)

	resp, _ := doJSON(t, app, "DELETE", "/entries/2024-06-01/2", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/entries/2024-06-01/2", ledger.NewDailyEntry(ledger.NewDay(2024, 6, 1), 2))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/entries/pending-delete", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body := doJSON(t, app, "DELETE", "/entries/2024-06-01/2", nil)
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	var op sales.PendingOperation
	require.NoError(t, json.Unmarshal(body, &op))
	assert.Equal(t, "2024-06-01#2", op.Key)

	resp, _ = doJSON(t, app, "GET", "/entries/pending-delete", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/entries/pending-delete/cancel", sales.CancelDeleteRequest{Date: "2024-06-01", EntryNumber: 1})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/entries/pending-delete/cancel", sales.CancelDeleteRequest{Date: "2024-06-01", EntryNumber: 2})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, "GET", "/entries?date=2024-06-01", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []sales.Record
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)
}

func TestDeleteForbiddenForSupervisorOverHTTP(t *testing.T) {
	app := newTestApp(newSQLiteService(t), auth.RoleSupervisor)

	resp, _ := doJSON(t, app, "PUT", "/entries/2024-06-01/1", ledger.NewDailyEntry(ledger.NewDay(2024, 6, 1), 1))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/entries/2024-06-01/1", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestExportHandler(t *testing.T) {
	app := newTestApp(newSQLiteService(t), auth.RoleManager)

	resp, _ := doJSON(t, app, "GET", "/entries/2024-06-01/1/export", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", "/entries/2024-06-01/1", ledger.NewDailyEntry(ledger.NewDay(2024, 6, 1), 1))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, "GET", "/entries/2024-06-01/1/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, export.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "daily-sales-2024-06-01-1.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), export.SheetSummary)
}
