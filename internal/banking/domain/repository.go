package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *BankingRecord) error
	FindByShipAndYear(ctx context.Context, db *gorm.DB, shipID string, year int) ([]BankingRecord, error)
	// TotalBanked is the cross-year signed sum over every record of the ship
	// (bank adds, apply subtracts). Recomputed from the ledger on every call.
	TotalBanked(ctx context.Context, db *gorm.DB, shipID string) (float64, error)
}
