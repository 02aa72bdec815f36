package models

// Product represents a product in the catalogue.
type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"size:255;not null;index"  json:"name"  validate:"required"`
	Price float64 `gorm:"not null;default:0"       json:"price" validate:"gte=0"`
}

func (Product) TableName() string { return "products" }
