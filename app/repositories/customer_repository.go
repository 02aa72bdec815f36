package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/app/models"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create persists c and sets its generated ID.
func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	if err := validateInput(c); err != nil {
		return track("customer", "create", err)
	}
	c.ID = 0
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return track("customer", "create", fmt.Errorf("customers: create: %w", err))
	}
	return track("customer", "create", nil)
}

// Update overwrites name, phone and address of customer id, including
// empty values. It returns the number of rows changed, 0 if id is unknown.
func (r *CustomerRepository) Update(ctx context.Context, id uint, c models.Customer) (int64, error) {
	if err := validateInput(c); err != nil {
		return 0, track("customer", "update", err)
	}
	res := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":    c.Name,
			"phone":   c.Phone,
			"address": c.Address,
		})
	if res.Error != nil {
		return 0, track("customer", "update", fmt.Errorf("customers: update %d: %w", id, res.Error))
	}
	return res.RowsAffected, track("customer", "update", nil)
}

// Delete removes customer id. Orders referencing it are left untouched.
func (r *CustomerRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Customer{}, id)
	if res.Error != nil {
		return 0, track("customer", "delete", fmt.Errorf("customers: delete %d: %w", id, res.Error))
	}
	return res.RowsAffected, track("customer", "delete", nil)
}

// Find looks up a customer by primary key.
func (r *CustomerRepository) Find(ctx context.Context, id uint) (models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, track("customer", "find", err)
}

// All returns every customer ordered by id.
func (r *CustomerRepository) All(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, track("customer", "list", fmt.Errorf("customers: list: %w", err))
	}
	return customers, track("customer", "list", nil)
}
