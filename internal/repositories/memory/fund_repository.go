package memory

import (
	"context"
	"fmt"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
)

// FundRepository implements the fund repository ports over the shared Store.
type FundRepository struct {
	store *Store
}

// NewFundRepository creates a fund repository backed by the given store.
func NewFundRepository(store *Store) *FundRepository {
	return &FundRepository{store: store}
}

var _ portsrepo.FundRepositoryFacade = (*FundRepository)(nil)

// FindFundByID retrieves a deep copy of the fund with the given ID.
func (r *FundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i := r.store.fundIndex(fundID)
	if i < 0 {
		return nil, fmt.Errorf("fund %s: %w", fundID, apperrors.ErrNotFound)
	}
	fund := cloneFund(&r.store.funds[i])
	return &fund, nil
}

// ListFunds retrieves deep copies of all funds in creation order.
func (r *FundRepository) ListFunds(ctx context.Context) ([]domain.Fund, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	funds := make([]domain.Fund, len(r.store.funds))
	for i := range r.store.funds {
		funds[i] = cloneFund(&r.store.funds[i])
	}
	return funds, nil
}

// SaveFund persists a new fund. Fund IDs must be unique.
func (r *FundRepository) SaveFund(ctx context.Context, fund domain.Fund) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.fundIndex(fund.FundID) >= 0 {
		return fmt.Errorf("fund %s: %w", fund.FundID, apperrors.ErrDuplicate)
	}
	r.store.funds = append(r.store.funds, cloneFund(&fund))
	return nil
}

// MutateFund applies mutate to a working copy of the fund under the store
// lock and commits it only if mutate succeeds, so a failed command leaves
// the fund exactly as it was.
func (r *FundRepository) MutateFund(ctx context.Context, fundID string, mutate func(*domain.Fund) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.store.fundIndex(fundID)
	if i < 0 {
		return fmt.Errorf("fund %s: %w", fundID, apperrors.ErrNotFound)
	}

	working := cloneFund(&r.store.funds[i])
	if err := mutate(&working); err != nil {
		return err
	}
	r.store.funds[i] = working
	return nil
}
