package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type TransactionType string

const (
	TransactionBank  TransactionType = "bank"
	TransactionApply TransactionType = "apply"
)

// BankingRecord is an immutable ledger entry. Records are only ever appended;
// the ledger is the source of truth from which the banked reserve and the
// adjusted compliance balance can be reconstructed.
type BankingRecord struct {
	ID              snowflake.ID    `gorm:"primaryKey" json:"id"`
	ShipID          string          `gorm:"column:ship_id;not null;index:ix_banking_records_ship" json:"ship_id"`
	Year            int             `gorm:"not null" json:"year"`
	AmountGco2eq    float64         `gorm:"column:amount_gco2eq;not null" json:"amount_gco2eq"`
	TransactionType TransactionType `gorm:"column:transaction_type;not null" json:"transaction_type"`
	Date            time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"date"`
}

func (BankingRecord) TableName() string {
	return "banking_records"
}

// Signed returns the record's contribution to the banked reserve.
func (r BankingRecord) Signed() float64 {
	if r.TransactionType == TransactionApply {
		return -r.AmountGco2eq
	}
	return r.AmountGco2eq
}
