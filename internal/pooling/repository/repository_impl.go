package repository

import (
	"context"

	"github.com/marinex/fueleu/internal/pooling/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, pool *domain.Pool) error {
	err := db.WithContext(ctx).Exec(
		`INSERT INTO pools (id, pool_id, year, is_valid, sum_cb, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		pool.ID,
		pool.PoolID,
		pool.Year,
		pool.IsValid,
		pool.SumCB,
		pool.CreatedAt,
	).Error
	if err != nil {
		return err
	}

	for i := range pool.Members {
		member := &pool.Members[i]
		member.PoolDBID = pool.ID
		err := db.WithContext(ctx).Exec(
			`INSERT INTO pool_members (id, pool_db_id, ship_id, cb_before, cb_after, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			member.ID,
			member.PoolDBID,
			member.ShipID,
			member.CBBefore,
			member.CBAfter,
			member.CreatedAt,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Pool, error) {
	var pools []domain.Pool
	err := db.WithContext(ctx).
		Model(&domain.Pool{}).
		Preload("Members").
		Order("created_at desc, id desc").
		Find(&pools).Error
	if err != nil {
		return nil, err
	}
	return pools, nil
}

func (r *repo) FindByPoolID(ctx context.Context, db *gorm.DB, poolID string) (*domain.Pool, error) {
	var pool domain.Pool
	err := db.WithContext(ctx).
		Model(&domain.Pool{}).
		Preload("Members").
		Where("pool_id = ?", poolID).
		First(&pool).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &pool, nil
}
