package models

const DefaultWhatsAppMessage = "I want to finalize this itinerary!"

// WhatsAppConfig holds the contact button target, at most one per customer.
// Phone is country code + number with no separators, e.g. 919876543210.
type WhatsAppConfig struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CustomerID uint   `gorm:"uniqueIndex;column:customer_id" json:"customer_id"`
	Phone      string `gorm:"size:20" json:"phone"`
	Message    string `gorm:"type:text" json:"message"`
}
