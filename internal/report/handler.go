package report

import (
	"context"

	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/ledger"
	"fuelstation-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// EntrySource lists stored entries visible to a session.
type EntrySource interface {
	FetchAll(ctx context.Context, sess auth.Session, opts sales.FetchOptions) ([]sales.Record, error)
}

// GET /api/reports/sales?date=&order=&limit=
func SalesReportHandler(src EntrySource, chartWindow, tableWindow int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := auth.SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}
		opts, err := sales.FetchOptionsFromQuery(c)
		if err != nil {
			return err
		}

		records, err := src.FetchAll(c.UserContext(), sess, opts)
		if err != nil {
			log.Error().Err(err).Msg("fetch entries for report")
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be built")
		}

		entries := make([]ledger.DailyEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, r.Entry)
		}
		return c.JSON(Build(entries, chartWindow, tableWindow))
	}
}
