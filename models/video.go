package models

const DefaultVideoTitle = "Experience a Glimpse of Your Journey"

// Video is the optional promo clip, at most one per customer.
type Video struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CustomerID uint   `gorm:"uniqueIndex;column:customer_id" json:"customer_id"`
	Title      string `gorm:"size:200" json:"title"`
	LocalSrc   string `gorm:"size:500;column:local_src" json:"localSrc"`
}
