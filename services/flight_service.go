package services

import (
	"fmt"

	"itinerary-backend/models"

	"gorm.io/gorm"
)

type FlightService struct {
	DB *gorm.DB
}

func NewFlightService(db *gorm.DB) *FlightService {
	return &FlightService{DB: db}
}

func (s *FlightService) Create(flight *models.Flight) error {
	if !models.ValidFlightRole(flight.Role) {
		return fmt.Errorf("%w: unknown flight role %q", ErrInvalidInput, flight.Role)
	}
	if flight.Cabin == "" {
		flight.Cabin = models.CabinEconomy
	}
	if !models.ValidCabin(flight.Cabin) {
		return fmt.Errorf("%w: unknown cabin class %q", ErrInvalidInput, flight.Cabin)
	}
	return s.DB.Create(flight).Error
}

// ListByCustomer returns flights ordered by date then time. The role field
// is intentionally not unique per customer, matching the storage model.
func (s *FlightService) ListByCustomer(customerID uint) ([]models.Flight, error) {
	var flights []models.Flight
	err := s.DB.Where("customer_id = ?", customerID).Order("date, time").Find(&flights).Error
	return flights, err
}

func (s *FlightService) Delete(customerID, flightID uint) error {
	result := s.DB.Where("customer_id = ?", customerID).Delete(&models.Flight{}, flightID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
