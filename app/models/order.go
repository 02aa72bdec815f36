package models

import "time"

// DefaultUnitKind is stored when a line item does not name its unit.
const DefaultUnitKind = "unit"

// Order is the order header. Items is filled by the repository on create
// and is not a gorm association.
type Order struct {
	ID                uint        `gorm:"primaryKey;autoIncrement"  json:"id"`
	CustomerID        *uint       `gorm:"index"                     json:"customer_id"`
	// CreatedAt is stamped at insert from the application clock.
	CreatedAt         time.Time   `gorm:"autoCreateTime"            json:"created_at"`
	DocumentGenerated bool        `gorm:"not null;default:false"    json:"document_generated"`
	Items             []OrderItem `gorm:"-"                         json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one product-and-quantity line of an order. The Order and
// Product fields only declare the foreign keys for migrations.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"     json:"id"`
	OrderID   uint     `gorm:"not null;index"               json:"order_id"`
	ProductID uint     `gorm:"not null;index"               json:"product_id"`
	Quantity  float64  `gorm:"not null"                     json:"quantity"`
	UnitKind  string   `gorm:"size:32;not null;default:unit" json:"unit_kind"`
	Order     *Order   `gorm:"constraint:OnUpdate:CASCADE"  json:"-"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE"  json:"-"`
}

func (OrderItem) TableName() string { return "order_items" }

// NewOrder is the input of OrderRepository.Create.
type NewOrder struct {
	CustomerID *uint          `json:"customer_id"`
	Items      []NewOrderItem `json:"items" validate:"dive"`
}

// NewOrderItem is one requested line. An empty UnitKind means DefaultUnitKind.
type NewOrderItem struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  float64 `json:"quantity"   validate:"gt=0"`
	UnitKind  string  `json:"unit_kind"`
}

// OrderLine is a line item joined with its product, as listed.
type OrderLine struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	UnitKind    string  `json:"unit_kind"`
}

// OrderDetail is an order header with its joined lines.
type OrderDetail struct {
	Order
	Lines []OrderLine `json:"items"`
}

// DocumentStatus is the result of flipping an order's document flag.
// RowsAffected is 0 when no order matched the id.
type DocumentStatus struct {
	ID                uint  `json:"id"`
	DocumentGenerated bool  `json:"document_generated"`
	RowsAffected      int64 `json:"-"`
}
