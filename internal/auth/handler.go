package auth

import (
	"context"
	"strings"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuditWriter interface {
	WriteLog(ctx context.Context, opts audit.LogOptions) error
}

type Options struct {
	Secret    string
	StationID uuid.UUID
	Gate      *RoleGate
	Store     *SessionStore
	Audit     AuditWriter
}

type LoginRequest struct {
	Role     string `json:"role"`
	Password string `json:"password"`
}

type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Role      Role      `json:"role"`
	StationID uuid.UUID `json:"station_id"`
	CanDelete bool      `json:"can_delete"`
	ExpiresAt string    `json:"expires_at"`
}

func newSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID,
		Role:      s.Role,
		StationID: s.StationID,
		CanDelete: s.CanDelete(),
		ExpiresAt: s.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// POST /api/auth/login {"role":"Manager","password":"..."}
func LoginHandler(opts Options) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		role, err := ParseRole(strings.TrimSpace(body.Role))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Role or password is wrong")
		}
		if err := opts.Gate.Authenticate(role, body.Password); err != nil {
			log.Warn().Str("role", string(role)).Msg("failed login")
			return fiber.NewError(fiber.StatusUnauthorized, "Role or password is wrong")
		}

		sess := opts.Store.Create(role, opts.StationID)
		token, err := GenerateToken(opts.Secret, sess)
		if err != nil {
			opts.Store.Delete(sess.ID)
			log.Error().Err(err).Msg("sign token")
			return fiber.NewError(fiber.StatusInternalServerError, "Token could not be created")
		}

		if opts.Audit != nil {
			if err := opts.Audit.WriteLog(c.UserContext(), audit.LogOptions{
				StationID:   sess.StationID,
				SessionID:   &sess.ID,
				Role:        string(sess.Role),
				EntityType:  "session",
				EntityKey:   sess.ID.String(),
				Action:      models.AuditActionLogin,
				Description: "logged in as " + string(sess.Role),
			}); err != nil {
				log.Error().Err(err).Msg("audit login")
			}
		}

		return c.JSON(fiber.Map{
			"token":   token,
			"session": newSessionResponse(sess),
		})
	}
}

// POST /api/auth/logout
func LogoutHandler(store *SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}
		store.Delete(sess.ID)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "No active session")
		}
		return c.JSON(newSessionResponse(sess))
	}
}
