package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
	"github.com/marinex/fueleu/internal/config"
	"github.com/marinex/fueleu/internal/route/domain"
	"github.com/marinex/fueleu/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Regulatory *config.RegulatoryHolder
	Repo       domain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	regulatory *config.RegulatoryHolder
	repo       domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("route.service"),
		genID:      p.GenID,
		regulatory: p.Regulatory,
		repo:       p.Repo,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRouteRequest) ([]domain.Route, error) {
	return s.repo.FindAll(ctx, s.db, domain.ListRouteFilter{
		VesselType: strings.TrimSpace(req.VesselType),
		FuelType:   strings.TrimSpace(req.FuelType),
		Year:       req.Year,
	})
}

func (s *Service) Create(ctx context.Context, req domain.CreateRouteRequest) (domain.Route, error) {
	routeID := strings.TrimSpace(req.RouteID)
	if routeID == "" {
		return domain.Route{}, domain.ErrInvalidRouteID
	}
	if req.Year <= 0 {
		return domain.Route{}, domain.ErrInvalidYear
	}
	if req.GHGIntensity <= 0 {
		return domain.Route{}, domain.ErrInvalidIntensity
	}
	if req.FuelConsumption < 0 {
		return domain.Route{}, domain.ErrInvalidFuel
	}

	route := domain.Route{
		ID:              s.genID.Generate(),
		RouteID:         routeID,
		VesselType:      strings.TrimSpace(req.VesselType),
		FuelType:        strings.TrimSpace(req.FuelType),
		Year:            req.Year,
		GHGIntensity:    req.GHGIntensity,
		FuelConsumption: req.FuelConsumption,
		Distance:        req.Distance,
		TotalEmissions:  req.TotalEmissions,
		IsBaseline:      false,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &route); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Route{}, domain.ErrRouteExists
		}
		return domain.Route{}, err
	}

	s.log.Info("route created",
		zap.String("route_id", route.RouteID),
		zap.Int("year", route.Year),
	)

	return route, nil
}

func (s *Service) SetBaseline(ctx context.Context, req domain.SetBaselineRequest) (domain.Route, error) {
	routeID := strings.TrimSpace(req.RouteID)
	if routeID == "" {
		return domain.Route{}, domain.ErrInvalidRouteID
	}

	var updated domain.Route
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		route, err := s.repo.FindByRouteID(ctx, tx, routeID)
		if err != nil {
			return err
		}
		if route == nil {
			return domain.ErrNotFound
		}
		if route.IsBaseline {
			return domain.ErrAlreadyBaseline
		}

		// Clear-all-then-set-one keeps the at-most-one-baseline invariant
		// even if prior state held zero or multiple baselines.
		if err := s.repo.ClearBaseline(ctx, tx); err != nil {
			return err
		}
		if err := s.repo.MarkBaseline(ctx, tx, routeID); err != nil {
			return err
		}

		route.IsBaseline = true
		updated = *route
		return nil
	})
	if err != nil {
		return domain.Route{}, err
	}

	s.log.Info("baseline updated", zap.String("route_id", updated.RouteID))

	return updated, nil
}

func (s *Service) Comparison(ctx context.Context) (domain.ComparisonResponse, error) {
	baseline, err := s.repo.FindBaseline(ctx, s.db)
	if err != nil {
		return domain.ComparisonResponse{}, err
	}
	if baseline == nil {
		return domain.ComparisonResponse{}, domain.ErrNoBaseline
	}

	routes, err := s.repo.FindAll(ctx, s.db, domain.ListRouteFilter{})
	if err != nil {
		return domain.ComparisonResponse{}, err
	}

	reg := s.regulatory.Current()
	comparisons := make([]domain.RouteComparison, 0, len(routes))
	for _, route := range routes {
		if route.ID == baseline.ID {
			continue
		}
		comparisons = append(comparisons, domain.RouteComparison{
			RouteID:                route.RouteID,
			BaselineGHGIntensity:   baseline.GHGIntensity,
			ComparisonGHGIntensity: route.GHGIntensity,
			PercentDifference:      compliancedomain.PercentDifference(route.GHGIntensity, baseline.GHGIntensity),
			Compliant:              compliancedomain.IsCompliant(route.GHGIntensity, reg.TargetIntensity),
		})
	}

	return domain.ComparisonResponse{
		Baseline:   *baseline,
		Comparison: comparisons,
		Target:     reg.TargetIntensity,
	}, nil
}
