package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListRouteFilter struct {
	VesselType string
	FuelType   string
	Year       int
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, route *Route) error
	FindAll(ctx context.Context, db *gorm.DB, filter ListRouteFilter) ([]Route, error)
	FindByRouteID(ctx context.Context, db *gorm.DB, routeID string) (*Route, error)
	FindByRouteIDAndYear(ctx context.Context, db *gorm.DB, routeID string, year int) (*Route, error)
	FindBaseline(ctx context.Context, db *gorm.DB) (*Route, error)
	// ClearBaseline unsets the flag on every route. Combined with MarkBaseline
	// in one transaction it restores the at-most-one-baseline invariant from
	// any prior state.
	ClearBaseline(ctx context.Context, db *gorm.DB) error
	MarkBaseline(ctx context.Context, db *gorm.DB, routeID string) error
}
