package models

type Hotel struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CustomerID uint   `gorm:"index;column:customer_id" json:"customer_id"`
	Name       string `gorm:"size:200" json:"name"`
	Image      string `gorm:"size:500" json:"image"`
	Nights     string `gorm:"size:50" json:"nights"`
	RoomType   string `gorm:"size:100;column:room_type" json:"roomType"`
	Stars      int    `json:"stars"`
	MapURL     string `gorm:"size:500;column:map_url" json:"mapUrl"`
	SortOrder  int    `gorm:"column:sort_order;default:0" json:"order"`
}
