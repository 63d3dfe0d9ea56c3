// Package memory implements the repository ports with an in-memory store.
// The application holds no persistent state: a process restart resets to
// the seeded demo dataset.
package memory

import (
	"sync"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
)

// Store is the single in-memory source of truth for funds and debts.
// One mutex guards both collections so a command that touches a debt and
// a fund ledger stays a single consistent state update.
type Store struct {
	mu    sync.RWMutex
	funds []domain.Fund
	debts []domain.DebtItem
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore creates a store pre-populated with the given dataset.
func NewSeededStore(funds []domain.Fund, debts []domain.DebtItem) *Store {
	s := NewStore()
	s.funds = append(s.funds, funds...)
	s.debts = append(s.debts, debts...)
	return s
}

// cloneFund returns a deep copy so callers can never mutate stored state
// behind the store's back.
func cloneFund(f *domain.Fund) domain.Fund {
	c := *f
	c.Members = append([]domain.Member(nil), f.Members...)
	c.History = append([]domain.HistoryItem(nil), f.History...)
	c.Approvals = make([]domain.ApprovalItem, len(f.Approvals))
	for i, a := range f.Approvals {
		c.Approvals[i] = a
		if a.Value != nil {
			v := *a.Value
			c.Approvals[i].Value = &v
		}
	}
	return c
}

func (s *Store) fundIndex(fundID string) int {
	for i := range s.funds {
		if s.funds[i].FundID == fundID {
			return i
		}
	}
	return -1
}

func (s *Store) debtIndex(debtID string) int {
	for i := range s.debts {
		if s.debts[i].DebtID == debtID {
			return i
		}
	}
	return -1
}
