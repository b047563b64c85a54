package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/marinex/fueleu/internal/config"
	"github.com/marinex/fueleu/internal/route/domain"
	routerepo "github.com/marinex/fueleu/internal/route/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Route{}))
	return db
}

func newService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Regulatory: config.StaticRegulatoryHolder(config.DefaultRegulatoryConfig()),
		Repo:       routerepo.Provide(),
	})
}

func createRoute(t *testing.T, svc domain.Service, routeID string, ghg float64) domain.Route {
	t.Helper()
	route, err := svc.Create(context.Background(), domain.CreateRouteRequest{
		RouteID:         routeID,
		VesselType:      "Container",
		FuelType:        "HFO",
		Year:            2025,
		GHGIntensity:    ghg,
		FuelConsumption: 5000,
		Distance:        11000,
		TotalEmissions:  19000,
	})
	require.NoError(t, err)
	return route
}

func TestCreate_PersistsRoute(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	route := createRoute(t, svc, "R001", 91.2)
	assert.NotZero(t, route.ID)
	assert.False(t, route.IsBaseline)

	routes, err := svc.List(context.Background(), domain.ListRouteRequest{})
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "R001", routes[0].RouteID)
}

func TestCreate_DuplicateRouteID(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	createRoute(t, svc, "R001", 91.2)
	_, err := svc.Create(context.Background(), domain.CreateRouteRequest{
		RouteID:      "R001",
		Year:         2025,
		GHGIntensity: 90,
	})
	assert.ErrorIs(t, err, domain.ErrRouteExists)
}

func TestCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRouteRequest{RouteID: " ", Year: 2025, GHGIntensity: 90})
	assert.ErrorIs(t, err, domain.ErrInvalidRouteID)

	_, err = svc.Create(ctx, domain.CreateRouteRequest{RouteID: "R001", Year: 0, GHGIntensity: 90})
	assert.ErrorIs(t, err, domain.ErrInvalidYear)

	_, err = svc.Create(ctx, domain.CreateRouteRequest{RouteID: "R001", Year: 2025, GHGIntensity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidIntensity)

	_, err = svc.Create(ctx, domain.CreateRouteRequest{RouteID: "R001", Year: 2025, GHGIntensity: 90, FuelConsumption: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidFuel)
}

func TestList_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	createRoute(t, svc, "R001", 91.2)
	_, err := svc.Create(ctx, domain.CreateRouteRequest{
		RouteID:      "R002",
		VesselType:   "Tanker",
		FuelType:     "LNG",
		Year:         2025,
		GHGIntensity: 76.9,
	})
	require.NoError(t, err)

	tankers, err := svc.List(ctx, domain.ListRouteRequest{VesselType: "Tanker"})
	require.NoError(t, err)
	require.Len(t, tankers, 1)
	assert.Equal(t, "R002", tankers[0].RouteID)

	none, err := svc.List(ctx, domain.ListRouteRequest{Year: 2024})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSetBaseline_MovesBaseline(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	createRoute(t, svc, "R001", 91.2)
	createRoute(t, svc, "R002", 76.9)

	updated, err := svc.SetBaseline(ctx, domain.SetBaselineRequest{RouteID: "R001"})
	require.NoError(t, err)
	assert.True(t, updated.IsBaseline)

	// Moving the baseline clears the old one: at most one at any time.
	updated, err = svc.SetBaseline(ctx, domain.SetBaselineRequest{RouteID: "R002"})
	require.NoError(t, err)
	assert.True(t, updated.IsBaseline)

	var count int64
	require.NoError(t, db.Model(&domain.Route{}).Where("is_baseline = ?", true).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var baseline domain.Route
	require.NoError(t, db.First(&baseline, "is_baseline = ?", true).Error)
	assert.Equal(t, "R002", baseline.RouteID)
}

func TestSetBaseline_AlreadyBaseline(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	createRoute(t, svc, "R001", 91.2)
	_, err := svc.SetBaseline(ctx, domain.SetBaselineRequest{RouteID: "R001"})
	require.NoError(t, err)

	_, err = svc.SetBaseline(ctx, domain.SetBaselineRequest{RouteID: "R001"})
	assert.ErrorIs(t, err, domain.ErrAlreadyBaseline)
}

func TestSetBaseline_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	_, err := svc.SetBaseline(context.Background(), domain.SetBaselineRequest{RouteID: "GHOST"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.SetBaseline(context.Background(), domain.SetBaselineRequest{RouteID: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidRouteID)
}

func TestComparison_AgainstBaseline(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)
	ctx := context.Background()

	createRoute(t, svc, "R001", 100)
	createRoute(t, svc, "R002", 110)
	createRoute(t, svc, "R003", 85)

	_, err := svc.SetBaseline(ctx, domain.SetBaselineRequest{RouteID: "R001"})
	require.NoError(t, err)

	resp, err := svc.Comparison(ctx)
	require.NoError(t, err)

	assert.Equal(t, "R001", resp.Baseline.RouteID)
	assert.InDelta(t, 89.3368, resp.Target, 1e-6)
	require.Len(t, resp.Comparison, 2)

	byRoute := map[string]domain.RouteComparison{}
	for _, c := range resp.Comparison {
		byRoute[c.RouteID] = c
	}

	r2 := byRoute["R002"]
	assert.InDelta(t, 100, r2.BaselineGHGIntensity, 1e-9)
	assert.InDelta(t, 110, r2.ComparisonGHGIntensity, 1e-9)
	assert.InDelta(t, 10, r2.PercentDifference, 1e-9)
	assert.False(t, r2.Compliant)

	r3 := byRoute["R003"]
	assert.InDelta(t, -15, r3.PercentDifference, 1e-9)
	assert.True(t, r3.Compliant)
}

func TestComparison_NoBaseline(t *testing.T) {
	db := newTestDB(t)
	svc := newService(t, db)

	createRoute(t, svc, "R001", 91.2)

	_, err := svc.Comparison(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoBaseline)
}
