package sales

import (
	"bytes"
	"errors"
	"strconv"

	"fuelstation-backend/internal/auth"
	"fuelstation-backend/internal/export"
	"fuelstation-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type ApplyRequest struct {
	Mode  ledger.FormMode   `json:"mode"`
	Entry ledger.DailyEntry `json:"entry"`
	Edits []ledger.Edit     `json:"edits"`
}

type CancelDeleteRequest struct {
	Date        string `json:"date"`
	EntryNumber int    `json:"entry_number"`
}

func sessionOf(c *fiber.Ctx) (auth.Session, error) {
	sess, ok := auth.SessionFrom(c)
	if !ok {
		return auth.Session{}, fiber.NewError(fiber.StatusUnauthorized, "No active session")
	}
	return sess, nil
}

func parseDay(s string) (ledger.Day, error) {
	d, err := ledger.ParseDay(s)
	if err != nil {
		return ledger.Day{}, fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return d, nil
}

func parseEntryNumber(s string) (int, error) {
	if s == "" {
		return ledger.DefaultEntryNumber, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "entry_number must be a positive integer")
	}
	return n, nil
}

func entryFromPath(c *fiber.Ctx) (ledger.Day, int, error) {
	day, err := parseDay(c.Params("date"))
	if err != nil {
		return ledger.Day{}, 0, err
	}
	n, err := parseEntryNumber(c.Params("number"))
	if err != nil {
		return ledger.Day{}, 0, err
	}
	return day, n, nil
}

// storageError maps service errors to responses; anything unexpected is
// logged and hidden behind a generic message.
func storageError(err error, msg string) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.Is(err, ErrEntryNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Entry not found")
	case errors.Is(err, ErrNoPendingDelete):
		return fiber.NewError(fiber.StatusNotFound, "No pending delete for this entry")
	case errors.Is(err, ErrDeleteNotAllowed):
		return fiber.NewError(fiber.StatusForbidden, "This role cannot delete entries")
	}
	log.Error().Err(err).Msg(msg)
	return fiber.NewError(fiber.StatusInternalServerError, msg)
}

// GET /api/entries/form?date=2024-06-01&entry_number=1
func FormHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOf(c)
		if err != nil {
			return err
		}
		day, err := parseDay(c.Query("date"))
		if err != nil {
			return err
		}
		n, err := parseEntryNumber(c.Query("entry_number"))
		if err != nil {
			return err
		}

		state, err := svc.LoadForDate(c.UserContext(), sess, day, n)
		if err != nil {
			return storageError(err, "Entry could not be loaded")
		}
		return c.JSON(state)
	}
}

// POST /api/entries/form/apply
func ApplyHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ApplyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Entry.Date.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "entry.date is required")
		}

		state, err := svc.Preview(body.Mode, body.Entry, body.Edits)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(state)
	}
}

// PUT /api/entries/:date/:number
func SaveHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOf(c)
		if err != nil {
			return err
		}
		day, n, err := entryFromPath(c)
		if err != nil {
			return err
		}

		var entry ledger.DailyEntry
		if err := c.BodyParser(&entry); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		entry.Date = day
		entry.EntryNumber = n

		res, err := svc.Save(c.UserContext(), sess, entry)
		if err != nil {
			return storageError(err, "Entry could not be saved")
		}

		status := fiber.StatusOK
		if res.Created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(res)
	}
}

// GET /api/entries?date=2024-06-01&order=desc&limit=10
func ListHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOf(c)
		if err != nil {
			return err
		}
		opts, err := FetchOptionsFromQuery(c)
		if err != nil {
			return err
		}

		records, err := svc.FetchAll(c.UserContext(), sess, opts)
		if err != nil {
			return storageError(err, "Entries could not be listed")
		}
		return c.JSON(records)
	}
}

// FetchOptionsFromQuery reads the date, order and limit query parameters.
func FetchOptionsFromQuery(c *fiber.Ctx) (FetchOptions, error) {
	var opts FetchOptions
	if v := c.Query("date"); v != "" {
		d, err := parseDay(v)
		if err != nil {
			return opts, err
		}
		opts.Date = d
	}
	switch Order(c.Query("order", string(OrderAsc))) {
	case OrderAsc:
		opts.Order = OrderAsc
	case OrderDesc:
		opts.Order = OrderDesc
	default:
		return opts, fiber.NewError(fiber.StatusBadRequest, "order must be asc or desc")
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fiber.NewError(fiber.StatusBadRequest, "limit must be a non-negative integer")
		}
		opts.Limit = n
	}
	return opts, nil
}

// DELETE /api/entries/:date/:number
// The delete runs after the undo window unless cancelled.
func DeleteHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOf(c)
		if err != nil {
			return err
		}
		day, n, err := entryFromPath(c)
		if err != nil {
			return err
		}

		op, err := svc.ScheduleDelete(c.UserContext(), sess, day, n)
		if err != nil {
			return storageError(err, "Delete could not be scheduled")
		}
		return c.Status(fiber.StatusAccepted).JSON(op)
	}
}

// GET /api/entries/pending-delete
func PendingDeleteHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		op, ok := svc.Pending()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "No pending delete")
		}
		return c.JSON(op)
	}
}

// POST /api/entries/pending-delete/cancel {"date":"2024-06-01","entry_number":2}
func CancelDeleteHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOf(c)
		if err != nil {
			return err
		}
		var body CancelDeleteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		day, err := parseDay(body.Date)
		if err != nil {
			return err
		}
		if body.EntryNumber == 0 {
			body.EntryNumber = ledger.DefaultEntryNumber
		}

		op, err := svc.CancelDelete(c.UserContext(), sess, day, body.EntryNumber)
		if err != nil {
			return storageError(err, "Delete could not be cancelled")
		}
		return c.JSON(fiber.Map{
			"message":   "Delete cancelled",
			"cancelled": op,
		})
	}
}

// GET /api/entries/:date/:number/export
func ExportHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOf(c)
		if err != nil {
			return err
		}
		day, n, err := entryFromPath(c)
		if err != nil {
			return err
		}

		rec, err := svc.Get(c.UserContext(), sess, day, n)
		if err != nil {
			return storageError(err, "Entry could not be loaded")
		}

		var buf bytes.Buffer
		if err := export.WriteEntry(&buf, rec.Entry); err != nil {
			log.Error().Err(err).Str("entry", rec.Key()).Msg("export entry")
			return fiber.NewError(fiber.StatusInternalServerError, "Export failed")
		}

		c.Attachment(export.FileName(rec.Entry))
		c.Set(fiber.HeaderContentType, export.ContentType)
		return c.Send(buf.Bytes())
	}
}
