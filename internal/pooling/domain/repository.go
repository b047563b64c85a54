package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Insert persists the pool and its members in the caller's transaction.
	Insert(ctx context.Context, db *gorm.DB, pool *Pool) error
	FindAll(ctx context.Context, db *gorm.DB) ([]Pool, error)
	FindByPoolID(ctx context.Context, db *gorm.DB, poolID string) (*Pool, error)
}
