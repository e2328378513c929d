package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxSessionKey  = "session"
	CtxUserRoleKey = "user_role"
	CtxStationKey  = "station_id"
)

// SessionMiddleware resolves the bearer token to a live session.
func SessionMiddleware(secret string, store *SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header missing")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization must be 'Bearer <token>'")
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		sess, err := store.Get(claims.SessionID)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Session ended, log in again")
		}

		c.Locals(CtxSessionKey, sess)
		c.Locals(CtxUserRoleKey, sess.Role)
		c.Locals(CtxStationKey, sess.StationID)

		return c.Next()
	}
}

// SessionFrom returns the session stored by SessionMiddleware.
func SessionFrom(c *fiber.Ctx) (Session, bool) {
	sess, ok := c.Locals(CtxSessionKey).(Session)
	return sess, ok
}

func RequireRole(allowedRoles ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(Role)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Role unavailable")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "You are not allowed to do this")
	}
}
