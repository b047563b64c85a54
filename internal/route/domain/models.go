package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Route is a voyage record. RouteID doubles as the ship identifier used by
// the compliance, banking and pooling features.
type Route struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	RouteID         string       `gorm:"column:route_id;not null;uniqueIndex" json:"route_id"`
	VesselType      string       `gorm:"column:vessel_type;not null" json:"vessel_type"`
	FuelType        string       `gorm:"column:fuel_type;not null" json:"fuel_type"`
	Year            int          `gorm:"not null" json:"year"`
	GHGIntensity    float64      `gorm:"column:ghg_intensity;not null" json:"ghg_intensity"`
	FuelConsumption float64      `gorm:"column:fuel_consumption;not null" json:"fuel_consumption"`
	Distance        float64      `gorm:"not null" json:"distance"`
	TotalEmissions  float64      `gorm:"column:total_emissions;not null" json:"total_emissions"`
	IsBaseline      bool         `gorm:"column:is_baseline;not null;default:false" json:"is_baseline"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Route) TableName() string {
	return "routes"
}
