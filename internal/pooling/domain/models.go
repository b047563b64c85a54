package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Pool is a group of ships whose compliance balances are jointly evaluated.
// A pool and its members are created atomically and never mutated afterwards.
type Pool struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	PoolID    string       `gorm:"column:pool_id;not null;uniqueIndex" json:"pool_id"`
	Year      int          `gorm:"not null" json:"year"`
	IsValid   bool         `gorm:"column:is_valid;not null" json:"is_valid"`
	SumCB     float64      `gorm:"column:sum_cb;not null" json:"sum_cb"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Members   []PoolMember `gorm:"foreignKey:PoolDBID" json:"members"`
}

func (Pool) TableName() string {
	return "pools"
}

// PoolMember records one ship's balance before and after pool settlement.
// Owned exclusively by its Pool.
type PoolMember struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	PoolDBID  snowflake.ID `gorm:"column:pool_db_id;not null;index" json:"-"`
	ShipID    string       `gorm:"column:ship_id;not null" json:"ship_id"`
	CBBefore  float64      `gorm:"column:cb_before;not null" json:"cb_before"`
	CBAfter   float64      `gorm:"column:cb_after;not null" json:"cb_after"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (PoolMember) TableName() string {
	return "pool_members"
}
