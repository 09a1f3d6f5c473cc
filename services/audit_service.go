package services

import (
	"encoding/json"
	"log"

	"itinerary-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Record writes an audit entry. Failures are logged, not propagated: an
// audit hiccup must never fail the admin action it describes.
func (s *AuditService) Record(actor, action, entity string, entityID uint, detail map[string]any) {
	var payload datatypes.JSON
	if detail != nil {
		raw, err := json.Marshal(detail)
		if err != nil {
			log.Printf("warning: failed to marshal audit detail: %v", err)
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	entry := models.AuditLog{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   payload,
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("warning: failed to write audit log (%s %s %d): %v", action, entity, entityID, err)
	}
}

// Recent returns the newest entries, capped at limit.
func (s *AuditService) Recent(limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.AuditLog
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
