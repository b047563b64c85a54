package domain

import (
	"context"
	"errors"
)

type BalanceRequest struct {
	ShipID string
	Year   int
}

// BalanceResponse reports a ship's compliance position for a year.
type BalanceResponse struct {
	ShipID          string  `json:"ship_id"`
	Year            int     `json:"year"`
	CBBeforeBanking float64 `json:"cb_before_banking"`
	AdjustedCB      float64 `json:"adjusted_cb"`
	TargetIntensity float64 `json:"target_intensity"`
	Compliant       bool    `json:"compliant"`
}

type Service interface {
	// CalculateBalance computes the compliance balance from the ship's route
	// data and persists the snapshot on first calculation for the year.
	CalculateBalance(context.Context, BalanceRequest) (BalanceResponse, error)
	// AdjustedBalance returns the current position after banking operations.
	AdjustedBalance(context.Context, BalanceRequest) (BalanceResponse, error)
	ListShips(context.Context) ([]ComplianceBalance, error)
}

var (
	ErrInvalidShipID = errors.New("invalid_ship_id")
	ErrInvalidYear   = errors.New("invalid_year")
	ErrNotFound      = errors.New("compliance_record_not_found")
)
