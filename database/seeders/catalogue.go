package seeders

import (
	"github.com/shashiranjanraj/salesdesk/app/models"
	"github.com/shashiranjanraj/salesdesk/app/repositories"
	"gorm.io/gorm"
)

func init() {
	Register("catalogue", SeedCatalogue)
}

// Catalogue is the demo product list inserted by SeedCatalogue.
var Catalogue = []models.Product{
	{Name: "Bread", Price: 1.20},
	{Name: "Milk", Price: 0.95},
	{Name: "Cheese", Price: 7.50},
	{Name: "Eggs", Price: 0.25},
	{Name: "Olive oil", Price: 6.40},
}

// SeedCatalogue fills an empty products table with Catalogue. It does
// nothing once any product exists, so it is safe to run twice.
func SeedCatalogue(db *gorm.DB) error {
	ctx := db.Statement.Context
	products := repositories.NewProductRepository(db)

	n, err := products.Count(ctx)
	if err != nil || n > 0 {
		return err
	}

	for _, p := range Catalogue {
		if err := products.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
