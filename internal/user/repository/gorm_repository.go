package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reelmedia/reel/internal/user/domain"
	"github.com/reelmedia/reel/pkg/errors"
	"github.com/reelmedia/reel/pkg/store"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GORM repository
func NewGormRepository(db *gorm.DB) Repository {
	return &GormRepository{db: db}
}

func (r *GormRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if err := store.Create(ctx, r.db, user); err != nil {
		if errors.IsConflict(err) {
			return errors.Conflict("username already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GormRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := store.FindByID[domain.User](ctx, r.db, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *GormRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := store.FindOneBy[domain.User](ctx, r.db, "username = ?", username)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (r *GormRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}
