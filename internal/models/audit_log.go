package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditActionCreate         AuditAction = "create"
	AuditActionUpdate         AuditAction = "update"
	AuditActionDelete         AuditAction = "delete"
	AuditActionScheduleDelete AuditAction = "schedule_delete"
	AuditActionCancelDelete   AuditAction = "cancel_delete"
	AuditActionLogin          AuditAction = "login"
)

type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// station account the record belongs to
	StationID uuid.UUID `gorm:"type:uuid;index" json:"station_id"`

	// who: session and role at the time of the action
	SessionID *uuid.UUID `gorm:"type:uuid" json:"session_id"`
	Role      string     `gorm:"size:20" json:"role"`

	// what: e.g. "daily_sale" keyed "2024-06-01#1"
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityKey  string `gorm:"size:50;index" json:"entity_key"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	BeforeData datatypes.JSON `gorm:"type:jsonb" json:"before_data"`
	AfterData  datatypes.JSON `gorm:"type:jsonb" json:"after_data"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
