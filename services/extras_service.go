package services

import (
	"errors"
	"fmt"
	"strings"

	"itinerary-backend/models"

	"gorm.io/gorm"
)

// ExtrasService manages the optional one-to-one records (video, whatsapp)
// and the inclusion/exclusion lists.
type ExtrasService struct {
	DB *gorm.DB
}

func NewExtrasService(db *gorm.DB) *ExtrasService {
	return &ExtrasService{DB: db}
}

// SetVideo creates or replaces the customer's video. A blank title falls
// back to the default.
func (s *ExtrasService) SetVideo(customerID uint, video models.Video) (models.Video, error) {
	if strings.TrimSpace(video.LocalSrc) == "" {
		return models.Video{}, fmt.Errorf("%w: video source required", ErrInvalidInput)
	}
	if strings.TrimSpace(video.Title) == "" {
		video.Title = models.DefaultVideoTitle
	}
	video.CustomerID = customerID

	var existing models.Video
	err := s.DB.Where("customer_id = ?", customerID).First(&existing).Error
	switch {
	case err == nil:
		existing.Title = video.Title
		existing.LocalSrc = video.LocalSrc
		return existing, s.DB.Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return video, s.DB.Create(&video).Error
	default:
		return models.Video{}, err
	}
}

func (s *ExtrasService) GetVideo(customerID uint) (*models.Video, error) {
	var video models.Video
	err := s.DB.Where("customer_id = ?", customerID).First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *ExtrasService) DeleteVideo(customerID uint) error {
	result := s.DB.Where("customer_id = ?", customerID).Delete(&models.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetWhatsApp creates or replaces the customer's contact config. The phone
// must be digits only (country code prefixed, no separators).
func (s *ExtrasService) SetWhatsApp(customerID uint, cfg models.WhatsAppConfig) (models.WhatsAppConfig, error) {
	phone := strings.TrimSpace(cfg.Phone)
	if phone == "" {
		return models.WhatsAppConfig{}, fmt.Errorf("%w: phone required", ErrInvalidInput)
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return models.WhatsAppConfig{}, fmt.Errorf("%w: phone must be digits only", ErrInvalidInput)
		}
	}
	cfg.Phone = phone
	if strings.TrimSpace(cfg.Message) == "" {
		cfg.Message = models.DefaultWhatsAppMessage
	}
	cfg.CustomerID = customerID

	var existing models.WhatsAppConfig
	err := s.DB.Where("customer_id = ?", customerID).First(&existing).Error
	switch {
	case err == nil:
		existing.Phone = cfg.Phone
		existing.Message = cfg.Message
		return existing, s.DB.Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return cfg, s.DB.Create(&cfg).Error
	default:
		return models.WhatsAppConfig{}, err
	}
}

func (s *ExtrasService) GetWhatsApp(customerID uint) (*models.WhatsAppConfig, error) {
	var cfg models.WhatsAppConfig
	err := s.DB.Where("customer_id = ?", customerID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *ExtrasService) DeleteWhatsApp(customerID uint) error {
	result := s.DB.Where("customer_id = ?", customerID).Delete(&models.WhatsAppConfig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ExtrasService) AddInclusion(inc *models.PackageInclusion) error {
	if strings.TrimSpace(inc.Item) == "" {
		return fmt.Errorf("%w: item text required", ErrInvalidInput)
	}
	return s.DB.Create(inc).Error
}

func (s *ExtrasService) ListInclusions(customerID uint) ([]models.PackageInclusion, error) {
	var items []models.PackageInclusion
	err := s.DB.Where("customer_id = ?", customerID).Order("sort_order").Find(&items).Error
	return items, err
}

func (s *ExtrasService) DeleteInclusion(customerID, id uint) error {
	result := s.DB.Where("customer_id = ?", customerID).Delete(&models.PackageInclusion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ExtrasService) AddExclusion(exc *models.PackageExclusion) error {
	if strings.TrimSpace(exc.Item) == "" {
		return fmt.Errorf("%w: item text required", ErrInvalidInput)
	}
	return s.DB.Create(exc).Error
}

func (s *ExtrasService) ListExclusions(customerID uint) ([]models.PackageExclusion, error) {
	var items []models.PackageExclusion
	err := s.DB.Where("customer_id = ?", customerID).Order("sort_order").Find(&items).Error
	return items, err
}

func (s *ExtrasService) DeleteExclusion(customerID, id uint) error {
	result := s.DB.Where("customer_id = ?", customerID).Delete(&models.PackageExclusion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
