package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records admin mutations (who did what to which entity).
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Actor     string         `gorm:"size:150;index" json:"actor"`
	Action    string         `gorm:"size:50;index" json:"action"`
	Entity    string         `gorm:"size:50;index" json:"entity"`
	EntityID  uint           `gorm:"column:entity_id" json:"entity_id"`
	Detail    datatypes.JSON `json:"detail,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
