package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/marinex/fueleu/internal/banking/domain"
	"github.com/marinex/fueleu/internal/clock"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
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
		log:            p.Log.Named("banking.service"),
		genID:          p.GenID,
		clock:          p.Clock,
		repo:           p.Repo,
		complianceRepo: p.ComplianceRepo,
	}
}

// Bank appends a bank record and decrements the year's adjusted balance in one
// transaction. Validations run before any write; a failed operation leaves the
// ledger and the balance untouched.
func (s *Service) Bank(ctx context.Context, req domain.TransferRequest) (domain.TransferResult, error) {
	shipID, year, amount, err := validateTransfer(req)
	if err != nil {
		return domain.TransferResult{}, err
	}

	var result domain.TransferResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := s.complianceRepo.FindByShipAndYearForUpdate(ctx, tx, shipID, year)
		if err != nil {
			return err
		}
		if balance == nil {
			return compliancedomain.ErrNotFound
		}
		if balance.AdjustedCB < amount {
			return domain.ErrInsufficientBalance
		}

		record := domain.BankingRecord{
			ID:              s.genID.Generate(),
			ShipID:          shipID,
			Year:            year,
			AmountGco2eq:    amount,
			TransactionType: domain.TransactionBank,
			Date:            s.clock.Now(),
		}
		if err := s.repo.Insert(ctx, tx, &record); err != nil {
			return err
		}

		after := balance.AdjustedCB - amount
		if err := s.complianceRepo.UpdateAdjustedCB(ctx, tx, balance.ID, after); err != nil {
			return err
		}

		result = domain.TransferResult{
			ShipID:   shipID,
			Year:     year,
			CBBefore: balance.AdjustedCB,
			Applied:  amount,
			CBAfter:  after,
		}
		return nil
	})
	if err != nil {
		return domain.TransferResult{}, err
	}

	s.log.Info("surplus banked",
		zap.String("ship_id", shipID),
		zap.Int("year", year),
		zap.Float64("amount_gco2eq", amount),
	)

	return result, nil
}

// Apply appends an apply record and increments the year's adjusted balance.
// The reserve check runs against the cross-year banked total.
func (s *Service) Apply(ctx context.Context, req domain.TransferRequest) (domain.TransferResult, error) {
	shipID, year, amount, err := validateTransfer(req)
	if err != nil {
		return domain.TransferResult{}, err
	}

	var result domain.TransferResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := s.complianceRepo.FindByShipAndYearForUpdate(ctx, tx, shipID, year)
		if err != nil {
			return err
		}
		if balance == nil {
			return compliancedomain.ErrNotFound
		}

		reserve, err := s.repo.TotalBanked(ctx, tx, shipID)
		if err != nil {
			return err
		}
		if reserve < amount {
			return domain.ErrInsufficientReserve
		}

		record := domain.BankingRecord{
			ID:              s.genID.Generate(),
			ShipID:          shipID,
			Year:            year,
			AmountGco2eq:    amount,
			TransactionType: domain.TransactionApply,
			Date:            s.clock.Now(),
		}
		if err := s.repo.Insert(ctx, tx, &record); err != nil {
			return err
		}

		after := balance.AdjustedCB + amount
		if err := s.complianceRepo.UpdateAdjustedCB(ctx, tx, balance.ID, after); err != nil {
			return err
		}

		result = domain.TransferResult{
			ShipID:   shipID,
			Year:     year,
			CBBefore: balance.AdjustedCB,
			Applied:  amount,
			CBAfter:  after,
		}
		return nil
	})
	if err != nil {
		return domain.TransferResult{}, err
	}

	s.log.Info("banked surplus applied",
		zap.String("ship_id", shipID),
		zap.Int("year", year),
		zap.Float64("amount_gco2eq", amount),
	)

	return result, nil
}

func (s *Service) Records(ctx context.Context, req domain.RecordsRequest) (domain.RecordsResponse, error) {
	shipID := strings.TrimSpace(req.ShipID)
	if shipID == "" {
		return domain.RecordsResponse{}, domain.ErrInvalidShipID
	}
	if req.Year <= 0 {
		return domain.RecordsResponse{}, domain.ErrInvalidYear
	}

	records, err := s.repo.FindByShipAndYear(ctx, s.db, shipID, req.Year)
	if err != nil {
		return domain.RecordsResponse{}, err
	}

	total, err := s.repo.TotalBanked(ctx, s.db, shipID)
	if err != nil {
		return domain.RecordsResponse{}, err
	}

	return domain.RecordsResponse{
		Records:     records,
		TotalBanked: total,
	}, nil
}

func (s *Service) TotalBanked(ctx context.Context, shipID string) (float64, error) {
	shipID = strings.TrimSpace(shipID)
	if shipID == "" {
		return 0, domain.ErrInvalidShipID
	}
	return s.repo.TotalBanked(ctx, s.db, shipID)
}

func validateTransfer(req domain.TransferRequest) (string, int, float64, error) {
	shipID := strings.TrimSpace(req.ShipID)
	if shipID == "" {
		return "", 0, 0, domain.ErrInvalidShipID
	}
	if req.Year <= 0 {
		return "", 0, 0, domain.ErrInvalidYear
	}
	if req.Amount <= 0 {
		return "", 0, 0, domain.ErrInvalidAmount
	}
	return shipID, req.Year, req.Amount, nil
}
