package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/marinex/fueleu/internal/compliance/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByShipAndYear(ctx context.Context, db *gorm.DB, shipID string, year int) (*domain.ComplianceBalance, error) {
	var balance domain.ComplianceBalance
	err := db.WithContext(ctx).Raw(
		`SELECT id, ship_id, year, cb_before_banking, adjusted_cb, created_at, updated_at
		 FROM ship_compliance WHERE ship_id = ? AND year = ?`,
		shipID,
		year,
	).Scan(&balance).Error
	if err != nil {
		return nil, err
	}
	if balance.ID == 0 {
		return nil, nil
	}
	return &balance, nil
}

func (r *repo) FindByShipAndYearForUpdate(ctx context.Context, db *gorm.DB, shipID string, year int) (*domain.ComplianceBalance, error) {
	var balance domain.ComplianceBalance
	err := db.WithContext(ctx).Raw(
		`SELECT id, ship_id, year, cb_before_banking, adjusted_cb, created_at, updated_at
		 FROM ship_compliance WHERE ship_id = ? AND year = ?
		 FOR UPDATE`,
		shipID,
		year,
	).Scan(&balance).Error
	if err != nil {
		return nil, err
	}
	if balance.ID == 0 {
		return nil, nil
	}
	return &balance, nil
}

func (r *repo) FindAllShips(ctx context.Context, db *gorm.DB) ([]domain.ComplianceBalance, error) {
	var balances []domain.ComplianceBalance
	err := db.WithContext(ctx).
		Model(&domain.ComplianceBalance{}).
		Order("ship_id asc, year asc").
		Find(&balances).Error
	if err != nil {
		return nil, err
	}
	return balances, nil
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, balance *domain.ComplianceBalance) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO ship_compliance (id, ship_id, year, cb_before_banking, adjusted_cb, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (ship_id, year) DO UPDATE SET
		   cb_before_banking = excluded.cb_before_banking,
		   adjusted_cb = excluded.adjusted_cb,
		   updated_at = excluded.updated_at`,
		balance.ID,
		balance.ShipID,
		balance.Year,
		balance.CBBeforeBanking,
		balance.AdjustedCB,
		balance.CreatedAt,
		balance.UpdatedAt,
	).Error
}

func (r *repo) UpdateAdjustedCB(ctx context.Context, db *gorm.DB, id snowflake.ID, adjustedCB float64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE ship_compliance SET adjusted_cb = ?, updated_at = ? WHERE id = ?`,
		adjustedCB,
		time.Now().UTC(),
		id,
	).Error
}
