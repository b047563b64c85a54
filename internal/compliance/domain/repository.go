package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindByShipAndYear(ctx context.Context, db *gorm.DB, shipID string, year int) (*ComplianceBalance, error)
	// FindByShipAndYearForUpdate locks the row for the duration of the
	// surrounding transaction. Callers mutating AdjustedCB must use this to
	// serialize concurrent bank/apply/pool operations on the same ship.
	FindByShipAndYearForUpdate(ctx context.Context, db *gorm.DB, shipID string, year int) (*ComplianceBalance, error)
	FindAllShips(ctx context.Context, db *gorm.DB) ([]ComplianceBalance, error)
	Save(ctx context.Context, db *gorm.DB, balance *ComplianceBalance) error
	UpdateAdjustedCB(ctx context.Context, db *gorm.DB, id snowflake.ID, adjustedCB float64) error
}
