package services

import (
	"errors"
	"fmt"

	"itinerary-backend/models"

	"gorm.io/gorm"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func (s *HotelService) Create(hotel *models.Hotel) error {
	if hotel.Stars < 1 || hotel.Stars > 5 {
		return fmt.Errorf("%w: stars must be 1-5", ErrInvalidInput)
	}
	return s.DB.Create(hotel).Error
}

// ListByCustomer returns the customer's hotels in display order.
func (s *HotelService) ListByCustomer(customerID uint) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Where("customer_id = ?", customerID).Order("sort_order").Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) Update(hotel models.Hotel) error {
	if hotel.Stars < 1 || hotel.Stars > 5 {
		return fmt.Errorf("%w: stars must be 1-5", ErrInvalidInput)
	}
	var existing models.Hotel
	if err := s.DB.Where("id = ? AND customer_id = ?", hotel.ID, hotel.CustomerID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Model(&existing).Updates(map[string]any{
		"name":       hotel.Name,
		"image":      hotel.Image,
		"nights":     hotel.Nights,
		"room_type":  hotel.RoomType,
		"stars":      hotel.Stars,
		"map_url":    hotel.MapURL,
		"sort_order": hotel.SortOrder,
	}).Error
}

func (s *HotelService) Delete(customerID, hotelID uint) error {
	result := s.DB.Where("customer_id = ?", customerID).Delete(&models.Hotel{}, hotelID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
