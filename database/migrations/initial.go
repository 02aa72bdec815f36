package migrations

import (
	"github.com/shashiranjanraj/salesdesk/database/schema"
	"github.com/shashiranjanraj/salesdesk/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20250101000000_create_sales_tables", &CreateSalesTables{})
}

// -------- 0001: customers, products, orders, order_items, users --------

type CreateSalesTables struct{}

func (m *CreateSalesTables) Up(db *gorm.DB) error {
	return schema.Bootstrap(db.Statement.Context, db)
}

func (m *CreateSalesTables) Down(db *gorm.DB) error {
	return schema.Drop(db.Statement.Context, db)
}
