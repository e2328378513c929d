package audit

import (
	"strconv"

	"fuelstation-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type AuditLogResponse struct {
	ID          uuid.UUID          `json:"id"`
	CreatedAt   string             `json:"created_at"`
	SessionID   *uuid.UUID         `json:"session_id"`
	Role        string             `json:"role"`
	EntityType  string             `json:"entity_type"`
	EntityKey   string             `json:"entity_key"`
	Action      models.AuditAction `json:"action"`
	Description string             `json:"description"`
	BeforeData  datatypes.JSON     `json:"before_data"`
	AfterData   datatypes.JSON     `json:"after_data"`
}

// GET /api/audit-logs?entity_type=daily_sale&entity_key=2024-06-01%231&action=delete&limit=50
func ListAuditLogsHandler(svc *Service, stationID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := Filter{
			StationID:  stationID,
			EntityType: c.Query("entity_type"),
			EntityKey:  c.Query("entity_key"),
			Action:     models.AuditAction(c.Query("action")),
			Limit:      100,
		}
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
			}
			f.Limit = n
		}

		logs, err := svc.List(c.UserContext(), f)
		if err != nil {
			log.Error().Err(err).Msg("list audit logs")
			return fiber.NewError(fiber.StatusInternalServerError, "Audit logs could not be listed")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, l := range logs {
			resp = append(resp, AuditLogResponse{
				ID:          l.ID,
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				SessionID:   l.SessionID,
				Role:        l.Role,
				EntityType:  l.EntityType,
				EntityKey:   l.EntityKey,
				Action:      l.Action,
				Description: l.Description,
				BeforeData:  l.BeforeData,
				AfterData:   l.AfterData,
			})
		}

		return c.JSON(resp)
	}
}
