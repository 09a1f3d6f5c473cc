package services

import (
	"errors"
	"fmt"
	"strings"

	"itinerary-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) Create(customer *models.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return fmt.Errorf("%w: customer name required", ErrInvalidInput)
	}
	return s.DB.Create(customer).Error
}

// List returns all customers, newest first.
func (s *CustomerService) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (s *CustomerService) GetByID(id uint) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) GetBySlug(slug string) (models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Where("slug = ?", slug).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, err
	}
	return customer, nil
}

// Update writes the editable fields. The slug is immutable once assigned,
// so it is never part of the update set.
func (s *CustomerService) Update(customer models.Customer) error {
	result := s.DB.Model(&models.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":        customer.Name,
			"destination": customer.Destination,
			"dates":       customer.Dates,
			"guests":      customer.Guests,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a customer and everything it owns in one transaction.
// Child rows are deleted explicitly so cascade completeness does not depend
// on the database enforcing FK constraints.
func (s *CustomerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var dayIDs []uint
		if err := tx.Model(&models.ItineraryDay{}).Where("customer_id = ?", id).Pluck("id", &dayIDs).Error; err != nil {
			return err
		}
		if len(dayIDs) > 0 {
			if err := tx.Where("itinerary_day_id IN ?", dayIDs).Delete(&models.ItineraryDetail{}).Error; err != nil {
				return err
			}
		}

		for _, child := range []any{
			&models.ItineraryDay{},
			&models.Hotel{},
			&models.Flight{},
			&models.Video{},
			&models.PackageInclusion{},
			&models.PackageExclusion{},
			&models.WhatsAppConfig{},
		} {
			if err := tx.Where("customer_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Customer{}, id).Error
	})
}
