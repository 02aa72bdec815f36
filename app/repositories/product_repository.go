package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/app/models"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists p and sets its generated ID.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	if err := validateInput(p); err != nil {
		return track("product", "create", err)
	}
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return track("product", "create", fmt.Errorf("products: create: %w", err))
	}
	return track("product", "create", nil)
}

func (r *ProductRepository) Find(ctx context.Context, id uint) (models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, track("product", "find", err)
}

func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, track("product", "list", fmt.Errorf("products: list: %w", err))
	}
	return products, track("product", "list", nil)
}

// Count returns the number of catalogue entries.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, track("product", "count", fmt.Errorf("products: count: %w", err))
	}
	return n, track("product", "count", nil)
}
