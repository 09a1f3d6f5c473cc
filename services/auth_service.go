package services

import (
	"errors"

	"itinerary-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// VerifyCredentials checks username+password against the admin user store.
// Unknown user and wrong password are deliberately the same error.
func (s *AuthService) VerifyCredentials(username, password string) (models.AdminUser, error) {
	var user models.AdminUser
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AdminUser{}, ErrInvalidCredentials
		}
		return models.AdminUser{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.AdminUser{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetByUsername(username string) (models.AdminUser, error) {
	var user models.AdminUser
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AdminUser{}, ErrNotFound
		}
		return models.AdminUser{}, err
	}
	return user, nil
}
