package domain

import (
	"context"
	"errors"
)

type TransferRequest struct {
	ShipID string
	Year   int
	Amount float64
}

// TransferResult reports the balance movement of a bank or apply operation.
type TransferResult struct {
	ShipID   string  `json:"ship_id"`
	Year     int     `json:"year"`
	CBBefore float64 `json:"cb_before"`
	Applied  float64 `json:"applied"`
	CBAfter  float64 `json:"cb_after"`
}

type RecordsRequest struct {
	ShipID string
	Year   int
}

type RecordsResponse struct {
	Records     []BankingRecord `json:"records"`
	TotalBanked float64         `json:"total_banked"`
}

type Service interface {
	// Bank moves surplus from the year's adjusted balance into the reserve.
	Bank(context.Context, TransferRequest) (TransferResult, error)
	// Apply spends banked reserve against the year's balance. The reserve
	// check runs against the cross-year total, not the year-scoped balance.
	Apply(context.Context, TransferRequest) (TransferResult, error)
	Records(context.Context, RecordsRequest) (RecordsResponse, error)
	TotalBanked(ctx context.Context, shipID string) (float64, error)
}

var (
	ErrInvalidShipID       = errors.New("invalid_ship_id")
	ErrInvalidYear         = errors.New("invalid_year")
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrInsufficientBalance = errors.New("insufficient_balance")
	ErrInsufficientReserve = errors.New("insufficient_reserve")
)
