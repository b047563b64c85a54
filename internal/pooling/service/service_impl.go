package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/marinex/fueleu/internal/clock"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
	"github.com/marinex/fueleu/internal/pooling/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB             *gorm.DB
	Log            *zap.Logger
	GenID          *snowflake.Node
	Clock          clock.Clock
	Repo           domain.Repository
	ComplianceRepo compliancedomain.Repository
}

type Service struct {
	db             *gorm.DB
	log            *zap.Logger
	genID          *snowflake.Node
	clock          clock.Clock
	repo           domain.Repository
	complianceRepo compliancedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:             p.DB,
		log:            p.Log.Named("pooling.service"),
		genID:          p.GenID,
		clock:          p.Clock,
		repo:           p.Repo,
		complianceRepo: p.ComplianceRepo,
	}
}

func (s *Service) CreatePool(ctx context.Context, req domain.CreatePoolRequest) (domain.Pool, error) {
	shipIDs, err := validateMembers(req)
	if err != nil {
		return domain.Pool{}, err
	}

	var pool domain.Pool
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock every member's balance row so the snapshot the allocation
		// runs on cannot move under a concurrent bank/apply.
		balances := make([]domain.MemberBalance, 0, len(shipIDs))
		for _, shipID := range shipIDs {
			record, err := s.complianceRepo.FindByShipAndYearForUpdate(ctx, tx, shipID, req.Year)
			if err != nil {
				return err
			}
			if record == nil {
				return fmt.Errorf("%w: ship %s year %d", domain.ErrMissingComplianceRecord, shipID, req.Year)
			}
			balances = append(balances, domain.MemberBalance{
				ShipID: shipID,
				CB:     record.AdjustedCB,
			})
		}

		allocations, sum, err := domain.Allocate(balances)
		if err != nil {
			if errors.Is(err, domain.ErrNegativeSum) {
				return fmt.Errorf("%w: total compliance balance is negative", domain.ErrConstraintViolation)
			}
			return err
		}

		now := s.clock.Now()
		poolDBID := s.genID.Generate()
		members := make([]domain.PoolMember, 0, len(allocations))
		for _, alloc := range allocations {
			members = append(members, domain.PoolMember{
				ID:        s.genID.Generate(),
				PoolDBID:  poolDBID,
				ShipID:    alloc.ShipID,
				CBBefore:  alloc.CBBefore,
				CBAfter:   alloc.CBAfter,
				CreatedAt: now,
			})
		}

		pool = domain.Pool{
			ID:        poolDBID,
			PoolID:    fmt.Sprintf("POOL-%d", poolDBID),
			Year:      req.Year,
			IsValid:   true,
			SumCB:     sum,
			CreatedAt: now,
			Members:   members,
		}
		return s.repo.Insert(ctx, tx, &pool)
	})
	if err != nil {
		return domain.Pool{}, err
	}

	s.log.Info("pool created",
		zap.String("pool_id", pool.PoolID),
		zap.Int("year", pool.Year),
		zap.Int("members", len(pool.Members)),
		zap.Float64("sum_cb", pool.SumCB),
	)

	return pool, nil
}

func (s *Service) ListPools(ctx context.Context) ([]domain.Pool, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) GetPool(ctx context.Context, req domain.GetPoolRequest) (domain.Pool, error) {
	poolID := strings.TrimSpace(req.PoolID)
	if poolID == "" {
		return domain.Pool{}, domain.ErrNotFound
	}

	pool, err := s.repo.FindByPoolID(ctx, s.db, poolID)
	if err != nil {
		return domain.Pool{}, err
	}
	if pool == nil {
		return domain.Pool{}, domain.ErrNotFound
	}
	return *pool, nil
}

func validateMembers(req domain.CreatePoolRequest) ([]string, error) {
	if req.Year <= 0 {
		return nil, domain.ErrInvalidYear
	}

	shipIDs := make([]string, 0, len(req.ShipIDs))
	seen := make(map[string]struct{}, len(req.ShipIDs))
	for _, raw := range req.ShipIDs {
		shipID := strings.TrimSpace(raw)
		if shipID == "" {
			continue
		}
		if _, dup := seen[shipID]; dup {
			return nil, domain.ErrDuplicateMember
		}
		seen[shipID] = struct{}{}
		shipIDs = append(shipIDs, shipID)
	}
	if len(shipIDs) == 0 {
		return nil, domain.ErrNoMembers
	}
	return shipIDs, nil
}
