package domain

import (
	"context"
	"errors"
)

type ListRouteRequest struct {
	VesselType string
	FuelType   string
	Year       int
}

type CreateRouteRequest struct {
	RouteID         string
	VesselType      string
	FuelType        string
	Year            int
	GHGIntensity    float64
	FuelConsumption float64
	Distance        float64
	TotalEmissions  float64
}

type SetBaselineRequest struct {
	RouteID string
}

// RouteComparison compares one route against the current baseline.
type RouteComparison struct {
	RouteID                string  `json:"route_id"`
	BaselineGHGIntensity   float64 `json:"baseline_ghg_intensity"`
	ComparisonGHGIntensity float64 `json:"comparison_ghg_intensity"`
	PercentDifference      float64 `json:"percent_difference"`
	Compliant              bool    `json:"compliant"`
}

type ComparisonResponse struct {
	Baseline   Route             `json:"baseline"`
	Comparison []RouteComparison `json:"comparison"`
	Target     float64           `json:"target"`
}

type Service interface {
	List(context.Context, ListRouteRequest) ([]Route, error)
	Create(context.Context, CreateRouteRequest) (Route, error)
	SetBaseline(context.Context, SetBaselineRequest) (Route, error)
	Comparison(context.Context) (ComparisonResponse, error)
}

var (
	ErrInvalidRouteID   = errors.New("invalid_route_id")
	ErrInvalidYear      = errors.New("invalid_year")
	ErrInvalidIntensity = errors.New("invalid_ghg_intensity")
	ErrInvalidFuel      = errors.New("invalid_fuel_consumption")
	ErrRouteExists      = errors.New("route_exists")
	ErrNotFound         = errors.New("route_not_found")
	ErrAlreadyBaseline  = errors.New("already_baseline")
	ErrNoBaseline       = errors.New("no_baseline_set")
)
