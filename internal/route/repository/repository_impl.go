package repository

import (
	"context"

	"github.com/marinex/fueleu/internal/route/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, route *domain.Route) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO routes (id, route_id, vessel_type, fuel_type, year, ghg_intensity,
		   fuel_consumption, distance, total_emissions, is_baseline, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		route.ID,
		route.RouteID,
		route.VesselType,
		route.FuelType,
		route.Year,
		route.GHGIntensity,
		route.FuelConsumption,
		route.Distance,
		route.TotalEmissions,
		route.IsBaseline,
		route.CreatedAt,
	).Error
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, filter domain.ListRouteFilter) ([]domain.Route, error) {
	var routes []domain.Route
	stmt := db.WithContext(ctx).Model(&domain.Route{})
	if filter.VesselType != "" {
		stmt = stmt.Where("vessel_type = ?", filter.VesselType)
	}
	if filter.FuelType != "" {
		stmt = stmt.Where("fuel_type = ?", filter.FuelType)
	}
	if filter.Year != 0 {
		stmt = stmt.Where("year = ?", filter.Year)
	}
	err := stmt.Order("route_id asc").Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *repo) FindByRouteID(ctx context.Context, db *gorm.DB, routeID string) (*domain.Route, error) {
	var route domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, vessel_type, fuel_type, year, ghg_intensity,
		   fuel_consumption, distance, total_emissions, is_baseline, created_at
		 FROM routes WHERE route_id = ?`,
		routeID,
	).Scan(&route).Error
	if err != nil {
		return nil, err
	}
	if route.ID == 0 {
		return nil, nil
	}
	return &route, nil
}

func (r *repo) FindByRouteIDAndYear(ctx context.Context, db *gorm.DB, routeID string, year int) (*domain.Route, error) {
	var route domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, vessel_type, fuel_type, year, ghg_intensity,
		   fuel_consumption, distance, total_emissions, is_baseline, created_at
		 FROM routes WHERE route_id = ? AND year = ?`,
		routeID,
		year,
	).Scan(&route).Error
	if err != nil {
		return nil, err
	}
	if route.ID == 0 {
		return nil, nil
	}
	return &route, nil
}

func (r *repo) FindBaseline(ctx context.Context, db *gorm.DB) (*domain.Route, error) {
	var route domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, route_id, vessel_type, fuel_type, year, ghg_intensity,
		   fuel_consumption, distance, total_emissions, is_baseline, created_at
		 FROM routes WHERE is_baseline = ?`,
		true,
	).Scan(&route).Error
	if err != nil {
		return nil, err
	}
	if route.ID == 0 {
		return nil, nil
	}
	return &route, nil
}

func (r *repo) ClearBaseline(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(
		`UPDATE routes SET is_baseline = ? WHERE is_baseline = ?`, false, true,
	).Error
}

func (r *repo) MarkBaseline(ctx context.Context, db *gorm.DB, routeID string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE routes SET is_baseline = ? WHERE route_id = ?`, true, routeID,
	).Error
}
