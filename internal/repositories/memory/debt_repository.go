package memory

import (
	"context"
	"fmt"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
)

// DebtRepository implements the debt repository ports over the shared Store.
type DebtRepository struct {
	store *Store
}

// NewDebtRepository creates a debt repository backed by the given store.
func NewDebtRepository(store *Store) *DebtRepository {
	return &DebtRepository{store: store}
}

var _ portsrepo.DebtRepositoryFacade = (*DebtRepository)(nil)

// FindDebtByID retrieves the debt with the given ID.
func (r *DebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.DebtItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.debtIndex(debtID)
	if i < 0 {
		return nil, fmt.Errorf("debt %s: %w", debtID, apperrors.ErrNotFound)
	}
	debt := r.store.debts[i]
	return &debt, nil
}

// ListDebts retrieves all outstanding debts in insertion order.
func (r *DebtRepository) ListDebts(ctx context.Context) ([]domain.DebtItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]domain.DebtItem(nil), r.store.debts...), nil
}

// SaveDebt persists a new debt item.
func (r *DebtRepository) SaveDebt(ctx context.Context, debt domain.DebtItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.debtIndex(debt.DebtID) >= 0 {
		return fmt.Errorf("debt %s: %w", debt.DebtID, apperrors.ErrDuplicate)
	}
	r.store.debts = append(r.store.debts, debt)
	return nil
}

// RemoveDebt removes a settled debt. The first caller wins; later callers
// get ErrNotFound.
func (r *DebtRepository) RemoveDebt(ctx context.Context, debtID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.debtIndex(debtID)
	if i < 0 {
		return fmt.Errorf("debt %s: %w", debtID, apperrors.ErrNotFound)
	}
	r.store.debts = append(r.store.debts[:i], r.store.debts[i+1:]...)
	return nil
}
