package models

type PackageInclusion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CustomerID uint   `gorm:"index;column:customer_id" json:"customer_id"`
	Item       string `gorm:"size:300" json:"item"`
	SortOrder  int    `gorm:"column:sort_order;default:0" json:"order"`
}

type PackageExclusion struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CustomerID uint   `gorm:"index;column:customer_id" json:"customer_id"`
	Item       string `gorm:"size:300" json:"item"`
	SortOrder  int    `gorm:"column:sort_order;default:0" json:"order"`
}
