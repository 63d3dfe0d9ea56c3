package services

import (
	"context"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
)

// AccountViewSvc defines the user-scoped read projections shown on the
// account screen. Everything here is derived from the per-fund ledgers;
// there is no second source of truth to fall out of sync with.
type AccountViewSvc interface {
	// ListUserMovements flattens the history of all funds, newest first,
	// with the fund name attached to each item.
	ListUserMovements(ctx context.Context) ([]domain.HistoryItem, error)

	// ListUserApprovals flattens the approval queues of all funds, newest
	// first, with the fund name attached to each item.
	ListUserApprovals(ctx context.Context) ([]domain.ApprovalItem, error)

	// Summary computes the aggregate totals: sum of fund balances,
	// distinct members across funds and sum of deposit-type movements.
	Summary(ctx context.Context) (*domain.AccountSummary, error)
}
