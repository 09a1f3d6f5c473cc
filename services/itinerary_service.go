package services

import (
	"errors"
	"fmt"

	"itinerary-backend/models"

	"gorm.io/gorm"
)

type ItineraryService struct {
	DB *gorm.DB
}

func NewItineraryService(db *gorm.DB) *ItineraryService {
	return &ItineraryService{DB: db}
}

// CreateDay inserts an itinerary day. Day numbers are unique per customer;
// a taken number is rejected before hitting the composite index.
func (s *ItineraryService) CreateDay(day *models.ItineraryDay) error {
	if day.Day < 1 {
		return fmt.Errorf("%w: day number must be positive", ErrInvalidInput)
	}
	var count int64
	if err := s.DB.Model(&models.ItineraryDay{}).
		Where("customer_id = ? AND day = ?", day.CustomerID, day.Day).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: day %d already exists for customer %d", ErrDuplicateDay, day.Day, day.CustomerID)
	}
	if day.Icon == "" {
		day.Icon = "📍"
	}
	return s.DB.Create(day).Error
}

// ListByCustomer returns days ordered by day number, each with its details
// ordered by display order.
func (s *ItineraryService) ListByCustomer(customerID uint) ([]models.ItineraryDay, error) {
	var days []models.ItineraryDay
	err := s.DB.Where("customer_id = ?", customerID).
		Order("day").
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Find(&days).Error
	return days, err
}

func (s *ItineraryService) DeleteDay(customerID, dayID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var day models.ItineraryDay
		if err := tx.Where("id = ? AND customer_id = ?", dayID, customerID).First(&day).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("itinerary_day_id = ?", day.ID).Delete(&models.ItineraryDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&day).Error
	})
}

// AddDetail appends an activity entry to a day owned by the given customer.
func (s *ItineraryService) AddDetail(customerID, dayID uint, detail *models.ItineraryDetail) error {
	var day models.ItineraryDay
	if err := s.DB.Where("id = ? AND customer_id = ?", dayID, customerID).First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	detail.ItineraryDayID = day.ID
	return s.DB.Create(detail).Error
}

func (s *ItineraryService) DeleteDetail(customerID, dayID, detailID uint) error {
	var day models.ItineraryDay
	if err := s.DB.Where("id = ? AND customer_id = ?", dayID, customerID).First(&day).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	result := s.DB.Where("itinerary_day_id = ?", day.ID).Delete(&models.ItineraryDetail{}, detailID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
