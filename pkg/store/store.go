// Package store provides generic gorm helpers shared by the concrete
// repositories. Documents are addressed by uuid primary key and loaded
// whole; callers mutate the struct and call Save to persist it.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/reelmedia/reel/pkg/errors"
)

// Create inserts a new document.
func Create[T any](ctx context.Context, db *gorm.DB, doc *T) error {
	if err := db.WithContext(ctx).Create(doc).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return pkgerrors.Conflict("document already exists")
		}
		return err
	}
	return nil
}

// FindByID loads a document by its ID.
func FindByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var doc T
	if err := db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("document not found")
		}
		return nil, err
	}
	return &doc, nil
}

// FindOneBy loads a single document matching a query condition.
func FindOneBy[T any](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var doc T
	if err := db.WithContext(ctx).Where(query, args...).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("document not found")
		}
		return nil, err
	}
	return &doc, nil
}

// FindAll loads every document in the collection.
func FindAll[T any](ctx context.Context, db *gorm.DB) ([]*T, error) {
	var docs []*T
	if err := db.WithContext(ctx).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Save persists the whole document, replacing the stored version.
func Save[T any](ctx context.Context, db *gorm.DB, doc *T) error {
	if err := db.WithContext(ctx).Save(doc).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return pkgerrors.Conflict("document already exists")
		}
		return err
	}
	return nil
}

// Delete removes a document by its ID.
func Delete[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	var doc T
	result := db.WithContext(ctx).Delete(&doc, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("document not found")
	}
	return nil
}

// Count returns the total number of documents in the collection.
func Count[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	var doc T
	if err := db.WithContext(ctx).Model(&doc).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
