package models

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const slugRetryLimit = 10

type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200" json:"name"`
	Destination string    `gorm:"size:200" json:"destination"`
	Dates       string    `gorm:"size:100" json:"dates"`
	Guests      string    `gorm:"size:100" json:"guests"`
	Slug        string    `gorm:"uniqueIndex;size:300" json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Hotels     []Hotel            `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"hotels,omitempty"`
	Flights    []Flight           `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"flights,omitempty"`
	Itinerary  []ItineraryDay     `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"itinerary,omitempty"`
	Video      *Video             `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"video,omitempty"`
	Inclusions []PackageInclusion `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"inclusions,omitempty"`
	Exclusions []PackageExclusion `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"exclusions,omitempty"`
	WhatsApp   *WhatsAppConfig    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"whatsapp,omitempty"`
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(length int) string {
	b := make([]byte, length)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the host is broken; don't panic
			// inside a DB hook, degrade to a fixed char instead
			b[i] = 'x'
			continue
		}
		b[i] = suffixAlphabet[n.Int64()]
	}
	return string(b)
}

// BeforeCreate assigns the public slug on first save. The slug is derived
// from the customer name; a collision gets a 4-char random suffix, retried
// up to slugRetryLimit times. After the limit the last candidate is accepted
// even if it may still collide (the unique index then rejects the insert).
// A slug already present is left untouched.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.Slug != "" {
		return nil
	}

	base := slug.Make(c.Name)
	candidate := base

	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		var count int64
		if err := tx.Model(&Customer{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = base + "-" + randomSuffix(4)
	}

	c.Slug = candidate
	return nil
}
