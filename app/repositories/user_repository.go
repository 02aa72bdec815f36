package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/app/models"
	"github.com/shashiranjanraj/salesdesk/pkg/database"
	"github.com/shashiranjanraj/salesdesk/pkg/logger"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create stores a user with models.DefaultRole. It returns false, nil when
// the username is already taken; any other failure is returned as an error.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (bool, error) {
	if username == "" || passwordHash == "" {
		return false, track("user", "create", fmt.Errorf("%w: username and password hash are required", ErrInvalid))
	}

	user := models.User{Username: username, PasswordHash: passwordHash, Role: models.DefaultRole}
	err := r.db.WithContext(ctx).Create(&user).Error
	if database.IsUniqueViolation(err) {
		logger.Info("user already exists", "username", username)
		return false, track("user", "create", nil)
	}
	if err != nil {
		return false, track("user", "create", fmt.Errorf("users: create %q: %w", username, err))
	}
	return true, track("user", "create", nil)
}

// FindByUsername returns the full user record, or ErrNotFound.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, track("user", "find", err)
}
