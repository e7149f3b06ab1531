package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// findByID devolve (nil, nil) quando o registro não existe.
func findByID[T any](ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var out T
	err := db.WithContext(ctx).First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %T %d: %w", out, id, err)
	}
	return &out, nil
}

func exists[T any](ctx context.Context, db *gorm.DB, query string, args ...any) (bool, error) {
	n, err := count[T](ctx, db, query, args...)
	return n > 0, err
}

func count[T any](ctx context.Context, db *gorm.DB, query string, args ...any) (int64, error) {
	var n int64
	var model T
	if err := db.WithContext(ctx).
		Model(&model).
		Where(query, args...).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %T: %w", model, err)
	}
	return n, nil
}
