package models

// Customer is a buyer. Orders keep a plain reference to it, so deleting a
// customer leaves their orders in place.
type Customer struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"size:255;not null"        json:"name"    validate:"required"`
	Phone   string `gorm:"size:64"                  json:"phone"`
	Address string `gorm:"type:text"                json:"address"`
}

func (Customer) TableName() string { return "customers" }
