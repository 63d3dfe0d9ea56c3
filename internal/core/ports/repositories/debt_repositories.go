package repositories

import (
	"context"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
)

// DebtReader defines read operations for the user's debt list.
type DebtReader interface {
	// FindDebtByID retrieves a specific debt by its ID.
	FindDebtByID(ctx context.Context, debtID string) (*domain.DebtItem, error)

	// ListDebts retrieves all outstanding debts, oldest first.
	ListDebts(ctx context.Context) ([]domain.DebtItem, error)
}

// DebtWriter defines write operations for the user's debt list.
type DebtWriter interface {
	// SaveDebt persists a new debt item.
	SaveDebt(ctx context.Context, debt domain.DebtItem) error

	// RemoveDebt removes a settled debt. Returns apperrors.ErrNotFound if
	// the debt is already gone, which makes settlement a one-shot
	// operation even under concurrent submissions.
	RemoveDebt(ctx context.Context, debtID string) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces.
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
