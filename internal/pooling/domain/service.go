package domain

import (
	"context"
	"errors"
)

type CreatePoolRequest struct {
	ShipIDs []string
	Year    int
}

type GetPoolRequest struct {
	PoolID string
}

type Service interface {
	// CreatePool validates the pool, runs the allocation and persists the
	// result atomically. A rejected pool writes nothing.
	CreatePool(context.Context, CreatePoolRequest) (Pool, error)
	ListPools(context.Context) ([]Pool, error)
	GetPool(context.Context, GetPoolRequest) (Pool, error)
}

var (
	ErrInvalidYear             = errors.New("invalid_year")
	ErrNoMembers               = errors.New("no_members")
	ErrDuplicateMember         = errors.New("duplicate_member")
	ErrMissingComplianceRecord = errors.New("missing_compliance_record")
	ErrConstraintViolation     = errors.New("pool_constraint_violation")
	ErrNotFound                = errors.New("pool_not_found")
)
