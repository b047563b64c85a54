package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ComplianceBalance is the per (ship, year) compliance snapshot.
// CBBeforeBanking is immutable once computed; AdjustedCB is mutated only by
// banking operations, always in the same transaction as the ledger append.
type ComplianceBalance struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	ShipID          string       `gorm:"column:ship_id;not null;uniqueIndex:ux_ship_compliance_ship_year" json:"ship_id"`
	Year            int          `gorm:"not null;uniqueIndex:ux_ship_compliance_ship_year" json:"year"`
	CBBeforeBanking float64      `gorm:"column:cb_before_banking;not null" json:"cb_before_banking"`
	AdjustedCB      float64      `gorm:"column:adjusted_cb;not null" json:"adjusted_cb"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ComplianceBalance) TableName() string {
	return "ship_compliance"
}
