package models

// ItineraryDay is one day of a customer's trip. Day numbers are unique per
// customer (composite index), so duplicate days are rejected at insert.
type ItineraryDay struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CustomerID  uint   `gorm:"column:customer_id;uniqueIndex:idx_customer_day" json:"customer_id"`
	Day         int    `gorm:"uniqueIndex:idx_customer_day" json:"day"`
	Icon        string `gorm:"size:10;default:'📍'" json:"icon"`
	Title       string `gorm:"size:200" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Details []ItineraryDetail `gorm:"foreignKey:ItineraryDayID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
}

func (ItineraryDay) TableName() string { return "itinerary_days" }

type ItineraryDetail struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ItineraryDayID uint   `gorm:"index;column:itinerary_day_id" json:"itinerary_day_id"`
	Time           string `gorm:"size:50" json:"time"`
	Activity       string `gorm:"type:text" json:"activity"`
	SortOrder      int    `gorm:"column:sort_order;default:0" json:"order"`
}
