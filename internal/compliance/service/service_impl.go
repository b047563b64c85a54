package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/marinex/fueleu/internal/clock"
	"github.com/marinex/fueleu/internal/compliance/domain"
	"github.com/marinex/fueleu/internal/config"
	routedomain "github.com/marinex/fueleu/internal/route/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Regulatory *config.RegulatoryHolder
	Repo       domain.Repository
	RouteRepo  routedomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	regulatory *config.RegulatoryHolder
	repo       domain.Repository
	routeRepo  routedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("compliance.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		regulatory: p.Regulatory,
		repo:       p.Repo,
		routeRepo:  p.RouteRepo,
	}
}

// CalculateBalance returns the ship's compliance snapshot for the year,
// computing and persisting it from the voyage data on first request.
// CBBeforeBanking is never recomputed once stored.
func (s *Service) CalculateBalance(ctx context.Context, req domain.BalanceRequest) (domain.BalanceResponse, error) {
	shipID, year, err := validateRequest(req)
	if err != nil {
		return domain.BalanceResponse{}, err
	}

	existing, err := s.repo.FindByShipAndYear(ctx, s.db, shipID, year)
	if err != nil {
		return domain.BalanceResponse{}, err
	}
	if existing != nil {
		return s.response(*existing), nil
	}

	route, err := s.routeRepo.FindByRouteIDAndYear(ctx, s.db, shipID, year)
	if err != nil {
		return domain.BalanceResponse{}, err
	}
	if route == nil {
		return domain.BalanceResponse{}, routedomain.ErrNotFound
	}

	reg := s.regulatory.Current()
	cb := domain.Balance(route.GHGIntensity, route.FuelConsumption, reg.TargetIntensity, reg.EnergyDensity)

	now := s.clock.Now()
	snapshot := domain.ComplianceBalance{
		ID:              s.genID.Generate(),
		ShipID:          shipID,
		Year:            year,
		CBBeforeBanking: cb,
		AdjustedCB:      cb,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Save(ctx, s.db, &snapshot); err != nil {
		return domain.BalanceResponse{}, err
	}

	s.log.Info("compliance balance calculated",
		zap.String("ship_id", shipID),
		zap.Int("year", year),
		zap.Float64("cb_gco2eq", cb),
	)

	return s.response(snapshot), nil
}

func (s *Service) AdjustedBalance(ctx context.Context, req domain.BalanceRequest) (domain.BalanceResponse, error) {
	shipID, year, err := validateRequest(req)
	if err != nil {
		return domain.BalanceResponse{}, err
	}

	balance, err := s.repo.FindByShipAndYear(ctx, s.db, shipID, year)
	if err != nil {
		return domain.BalanceResponse{}, err
	}
	if balance == nil {
		return domain.BalanceResponse{}, domain.ErrNotFound
	}

	return s.response(*balance), nil
}

func (s *Service) ListShips(ctx context.Context) ([]domain.ComplianceBalance, error) {
	return s.repo.FindAllShips(ctx, s.db)
}

func (s *Service) response(balance domain.ComplianceBalance) domain.BalanceResponse {
	reg := s.regulatory.Current()
	return domain.BalanceResponse{
		ShipID:          balance.ShipID,
		Year:            balance.Year,
		CBBeforeBanking: balance.CBBeforeBanking,
		AdjustedCB:      balance.AdjustedCB,
		TargetIntensity: reg.TargetIntensity,
		Compliant:       balance.AdjustedCB >= 0,
	}
}

func validateRequest(req domain.BalanceRequest) (string, int, error) {
	shipID := strings.TrimSpace(req.ShipID)
	if shipID == "" {
		return "", 0, domain.ErrInvalidShipID
	}
	if req.Year <= 0 {
		return "", 0, domain.ErrInvalidYear
	}
	return shipID, req.Year, nil
}
