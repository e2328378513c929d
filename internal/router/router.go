package router

import (
	"errors"
	"strings"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/report"
	"fuelstation-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog/log"
)

// Deps are the services the HTTP surface is built from.
type Deps struct {
	Config   *config.Config
	Gate     *auth.RoleGate
	Sessions *auth.SessionStore
	Audit    *audit.Service
	Sales    *sales.Service
}

// ErrorHandler renders every error as {"error": msg}. Unexpected errors are
// logged and replaced with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
		})
	}
	log.Error().Err(err).
		Str("request_id", requestID(c)).
		Str("path", c.Path()).
		Msg("unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Unexpected server error",
	})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// requestLogger logs each request with method, path, status and latency.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		log.Info().
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(d.Config.CORSOriginList(), ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	Setup(app, d)
	return app
}

// Setup registers every /api route on app.
func Setup(app *fiber.App, d Deps) {
	cfg := d.Config
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(auth.Options{
		Secret:    cfg.JWTSecret,
		StationID: cfg.StationID,
		Gate:      d.Gate,
		Store:     d.Sessions,
		Audit:     d.Audit,
	}))

	protected := api.Group("")
	protected.Use(auth.SessionMiddleware(cfg.JWTSecret, d.Sessions))

	protected.Post("/auth/logout", auth.LogoutHandler(d.Sessions))
	protected.Get("/auth/me", auth.MeHandler())

	canDelete := auth.RequireRole(auth.RoleProprietor, auth.RoleManager)

	// Entry form
	protected.Get("/entries/form", sales.FormHandler(d.Sales))
	protected.Post("/entries/form/apply", sales.ApplyHandler(d.Sales))

	// Pending delete
	protected.Get("/entries/pending-delete", sales.PendingDeleteHandler(d.Sales))
	protected.Post("/entries/pending-delete/cancel", canDelete, sales.CancelDeleteHandler(d.Sales))

	// Stored entries
	protected.Get("/entries", sales.ListHandler(d.Sales))
	protected.Put("/entries/:date/:number", sales.SaveHandler(d.Sales))
	protected.Delete("/entries/:date/:number", canDelete, sales.DeleteHandler(d.Sales))
	protected.Get("/entries/:date/:number/export", sales.ExportHandler(d.Sales))

	// Reports
	protected.Get("/reports/sales", report.SalesReportHandler(d.Sales, cfg.ChartWindow, cfg.TableWindow))

	// Audit trail
	protected.Get("/audit-logs", auth.RequireRole(auth.RoleProprietor), audit.ListAuditLogsHandler(d.Audit, cfg.StationID))
}
