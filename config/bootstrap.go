package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"itinerary-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BootstrapCredentials are read from the environment. There are no
// defaults: shipping known credentials in the binary is how deployments
// end up with admin/admin in production.
type BootstrapCredentials struct {
	Username string
	Email    string
	Password string
}

func BootstrapCredentialsFromEnv() (BootstrapCredentials, error) {
	creds := BootstrapCredentials{
		Username: strings.TrimSpace(os.Getenv("BOOTSTRAP_USERNAME")),
		Email:    strings.TrimSpace(os.Getenv("BOOTSTRAP_EMAIL")),
		Password: os.Getenv("BOOTSTRAP_PASSWORD"),
	}
	var missing []string
	if creds.Username == "" {
		missing = append(missing, "BOOTSTRAP_USERNAME")
	}
	if creds.Email == "" {
		missing = append(missing, "BOOTSTRAP_EMAIL")
	}
	if creds.Password == "" {
		missing = append(missing, "BOOTSTRAP_PASSWORD")
	}
	if len(missing) > 0 {
		return BootstrapCredentials{}, fmt.Errorf("bootstrap credentials missing from environment: %s", strings.Join(missing, ", "))
	}
	return creds, nil
}

// EnsureSuperuser creates a superuser account if none exists. Idempotent:
// when any superuser is already present it does nothing.
func EnsureSuperuser(db *gorm.DB, creds BootstrapCredentials) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Where("is_superuser = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("checking for existing superuser: %w", err)
	}
	if count > 0 {
		log.Println("Superuser already exists, nothing to do")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing bootstrap password: %w", err)
	}

	user := models.AdminUser{
		Username:    creds.Username,
		Email:       creds.Email,
		Password:    string(hash),
		IsSuperuser: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("creating superuser: %w", err)
	}

	log.Printf("Superuser %q created", user.Username)
	return nil
}
