package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
	routedomain "github.com/marinex/fueleu/internal/route/domain"
	"gorm.io/gorm"
)

// EnsureDemoFleet seeds a small fleet with one baseline route and the matching
// compliance snapshots. No-op when routes already exist.
func EnsureDemoFleet(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(2)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&routedomain.Route{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		fleet := []routedomain.Route{
			{RouteID: "R001", VesselType: "Container", FuelType: "HFO", Year: 2025, GHGIntensity: 91.2, FuelConsumption: 5200, Distance: 11500, TotalEmissions: 19400, IsBaseline: true},
			{RouteID: "R002", VesselType: "Tanker", FuelType: "LNG", Year: 2025, GHGIntensity: 76.9, FuelConsumption: 4100, Distance: 9800, TotalEmissions: 12900, IsBaseline: false},
			{RouteID: "R003", VesselType: "BulkCarrier", FuelType: "MGO", Year: 2025, GHGIntensity: 90.5, FuelConsumption: 3650, Distance: 10400, TotalEmissions: 13500, IsBaseline: false},
			{RouteID: "R004", VesselType: "RoRo", FuelType: "HFO", Year: 2025, GHGIntensity: 93.4, FuelConsumption: 2900, Distance: 7600, TotalEmissions: 11100, IsBaseline: false},
			{RouteID: "R005", VesselType: "Container", FuelType: "Methanol", Year: 2025, GHGIntensity: 83.7, FuelConsumption: 4800, Distance: 12300, TotalEmissions: 16400, IsBaseline: false},
		}

		for i := range fleet {
			route := &fleet[i]
			route.ID = node.Generate()
			route.CreatedAt = now
			if err := tx.Create(route).Error; err != nil {
				return err
			}

			cb := compliancedomain.Balance(
				route.GHGIntensity,
				route.FuelConsumption,
				compliancedomain.TargetIntensity2025,
				compliancedomain.EnergyDensityMJPerTonne,
			)
			snapshot := compliancedomain.ComplianceBalance{
				ID:              node.Generate(),
				ShipID:          route.RouteID,
				Year:            route.Year,
				CBBeforeBanking: cb,
				AdjustedCB:      cb,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := tx.Create(&snapshot).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
