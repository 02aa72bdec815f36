// Package repositories is the data access layer for customers, products,
// orders and users.
//
// Every method is its own unit of work: single statements run directly,
// and the multi-statement order flows run inside one transaction. Update
// and delete methods return the number of affected rows instead of failing
// when nothing matched.
package repositories

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/pkg/logger"
	"github.com/shashiranjanraj/salesdesk/pkg/metrics"
)

var (
	// ErrNotFound is returned by single-row lookups that match nothing.
	ErrNotFound = errors.New("record not found")
	// ErrInvalid wraps input that fails struct validation.
	ErrInvalid = errors.New("invalid input")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Repositories holds one repository per entity over a shared handle.
type Repositories struct {
	Customers *CustomerRepository
	Products  *ProductRepository
	Orders    *OrderRepository
	Users     *UserRepository
}

// New builds the repositories over db. The caller keeps ownership of db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Customers: NewCustomerRepository(db),
		Products:  NewProductRepository(db),
		Orders:    NewOrderRepository(db),
		Users:     NewUserRepository(db),
	}
}

func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// track records the outcome of an operation and maps gorm's not-found
// error to ErrNotFound.
func track(entity, operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrNotFound
	}
	metrics.RecordStoreOp(entity, operation, err)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Debug("store: operation failed", "entity", entity, "operation", operation, "error", err)
	}
	return err
}
