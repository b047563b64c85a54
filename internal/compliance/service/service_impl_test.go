package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/marinex/fueleu/internal/clock"
	"github.com/marinex/fueleu/internal/compliance/domain"
	compliancerepo "github.com/marinex/fueleu/internal/compliance/repository"
	"github.com/marinex/fueleu/internal/config"
	routedomain "github.com/marinex/fueleu/internal/route/domain"
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

	require.NoError(t, db.AutoMigrate(
		&routedomain.Route{},
		&domain.ComplianceBalance{},
	))
	return db
}

func newService(t *testing.T, db *gorm.DB) (domain.Service, *snowflake.Node) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Clock:      clock.NewFakeClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		Regulatory: config.StaticRegulatoryHolder(config.DefaultRegulatoryConfig()),
		Repo:       compliancerepo.Provide(),
		RouteRepo:  routerepo.Provide(),
	})
	return svc, node
}

func seedRoute(t *testing.T, db *gorm.DB, node *snowflake.Node, routeID string, year int, ghg, fuel float64) {
	t.Helper()
	require.NoError(t, db.Create(&routedomain.Route{
		ID:              node.Generate(),
		RouteID:         routeID,
		VesselType:      "Container",
		FuelType:        "HFO",
		Year:            year,
		GHGIntensity:    ghg,
		FuelConsumption: fuel,
		Distance:        11000,
		TotalEmissions:  19000,
		CreatedAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error)
}

func TestCalculateBalance_ComputesAndPersists(t *testing.T) {
	db := newTestDB(t)
	svc, node := newService(t, db)
	seedRoute(t, db, node, "R001", 2025, 91, 1000)

	resp, err := svc.CalculateBalance(context.Background(), domain.BalanceRequest{ShipID: "R001", Year: 2025})
	require.NoError(t, err)

	// (89.3368 - 91) * 1000 * 41000
	assert.InDelta(t, -68_191_200, resp.CBBeforeBanking, 1)
	assert.InDelta(t, resp.CBBeforeBanking, resp.AdjustedCB, 1e-9)
	assert.InDelta(t, 89.3368, resp.TargetIntensity, 1e-6)
	assert.False(t, resp.Compliant)

	var snapshot domain.ComplianceBalance
	require.NoError(t, db.First(&snapshot, "ship_id = ? AND year = ?", "R001", 2025).Error)
	assert.InDelta(t, resp.CBBeforeBanking, snapshot.CBBeforeBanking, 1e-9)
}

func TestCalculateBalance_SnapshotIsStable(t *testing.T) {
	db := newTestDB(t)
	svc, node := newService(t, db)
	seedRoute(t, db, node, "R001", 2025, 91, 1000)

	first, err := svc.CalculateBalance(context.Background(), domain.BalanceRequest{ShipID: "R001", Year: 2025})
	require.NoError(t, err)

	// Later voyage revisions never rewrite an existing snapshot.
	require.NoError(t, db.Model(&routedomain.Route{}).
		Where("route_id = ?", "R001").
		Update("ghg_intensity", 80).Error)

	second, err := svc.CalculateBalance(context.Background(), domain.BalanceRequest{ShipID: "R001", Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, first.CBBeforeBanking, second.CBBeforeBanking)
}

func TestCalculateBalance_SurplusShipIsCompliant(t *testing.T) {
	db := newTestDB(t)
	svc, node := newService(t, db)
	seedRoute(t, db, node, "R002", 2025, 76.9, 4100)

	resp, err := svc.CalculateBalance(context.Background(), domain.BalanceRequest{ShipID: "R002", Year: 2025})
	require.NoError(t, err)
	assert.Greater(t, resp.CBBeforeBanking, 0.0)
	assert.True(t, resp.Compliant)
}

func TestCalculateBalance_UnknownShip(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newService(t, db)

	_, err := svc.CalculateBalance(context.Background(), domain.BalanceRequest{ShipID: "GHOST", Year: 2025})
	assert.ErrorIs(t, err, routedomain.ErrNotFound)
}

func TestCalculateBalance_Validation(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newService(t, db)
	ctx := context.Background()

	_, err := svc.CalculateBalance(ctx, domain.BalanceRequest{ShipID: " ", Year: 2025})
	assert.ErrorIs(t, err, domain.ErrInvalidShipID)

	_, err = svc.CalculateBalance(ctx, domain.BalanceRequest{ShipID: "R001", Year: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidYear)
}

func TestAdjustedBalance_ReflectsBankingAdjustments(t *testing.T) {
	db := newTestDB(t)
	svc, node := newService(t, db)
	seedRoute(t, db, node, "R001", 2025, 88, 1000)

	first, err := svc.CalculateBalance(context.Background(), domain.BalanceRequest{ShipID: "R001", Year: 2025})
	require.NoError(t, err)
	require.Greater(t, first.CBBeforeBanking, 0.0)

	// Simulate a banking debit against the snapshot.
	require.NoError(t, db.Model(&domain.ComplianceBalance{}).
		Where("ship_id = ? AND year = ?", "R001", 2025).
		Update("adjusted_cb", first.CBBeforeBanking-1000).Error)

	resp, err := svc.AdjustedBalance(context.Background(), domain.BalanceRequest{ShipID: "R001", Year: 2025})
	require.NoError(t, err)
	assert.InDelta(t, first.CBBeforeBanking, resp.CBBeforeBanking, 1e-9)
	assert.InDelta(t, first.CBBeforeBanking-1000, resp.AdjustedCB, 1e-6)
	assert.True(t, resp.Compliant)
}

func TestAdjustedBalance_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newService(t, db)

	_, err := svc.AdjustedBalance(context.Background(), domain.BalanceRequest{ShipID: "R001", Year: 2025})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListShips_OrderedByShipAndYear(t *testing.T) {
	db := newTestDB(t)
	svc, node := newService(t, db)

	seedRoute(t, db, node, "R002", 2025, 90, 1000)
	seedRoute(t, db, node, "R001", 2025, 91, 1000)

	for _, req := range []domain.BalanceRequest{
		{ShipID: "R002", Year: 2025},
		{ShipID: "R001", Year: 2025},
	} {
		_, err := svc.CalculateBalance(context.Background(), req)
		require.NoError(t, err)
	}

	// A prior-year snapshot left over from the 2024 reporting period.
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&domain.ComplianceBalance{
		ID:              node.Generate(),
		ShipID:          "R001",
		Year:            2024,
		CBBeforeBanking: 500,
		AdjustedCB:      500,
		CreatedAt:       now,
		UpdatedAt:       now,
	}).Error)

	ships, err := svc.ListShips(context.Background())
	require.NoError(t, err)
	require.Len(t, ships, 3)
	assert.Equal(t, "R001", ships[0].ShipID)
	assert.Equal(t, 2024, ships[0].Year)
	assert.Equal(t, "R001", ships[1].ShipID)
	assert.Equal(t, 2025, ships[1].Year)
	assert.Equal(t, "R002", ships[2].ShipID)
}
