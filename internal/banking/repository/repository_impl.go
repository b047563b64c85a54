package repository

import (
	"context"

	"github.com/marinex/fueleu/internal/banking/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.BankingRecord) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO banking_records (id, ship_id, year, amount_gco2eq, transaction_type, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.ShipID,
		record.Year,
		record.AmountGco2eq,
		string(record.TransactionType),
		record.Date,
	).Error
}

func (r *repo) FindByShipAndYear(ctx context.Context, db *gorm.DB, shipID string, year int) ([]domain.BankingRecord, error) {
	var records []domain.BankingRecord
	err := db.WithContext(ctx).
		Model(&domain.BankingRecord{}).
		Where("ship_id = ? AND year = ?", shipID, year).
		Order("date asc, id asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) TotalBanked(ctx context.Context, db *gorm.DB, shipID string) (float64, error) {
	var records []domain.BankingRecord
	err := db.WithContext(ctx).
		Model(&domain.BankingRecord{}).
		Where("ship_id = ?", shipID).
		Find(&records).Error
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, record := range records {
		total += record.Signed()
	}
	return total, nil
}
