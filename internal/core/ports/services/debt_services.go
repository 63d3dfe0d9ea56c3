package services

import (
	"context"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtSvcFacade defines operations on the user's outstanding debts.
type DebtSvcFacade interface {
	// ListUserDebts retrieves the user's outstanding debts.
	ListUserDebts(ctx context.Context) ([]domain.DebtItem, error)

	// PayFundDebt settles a debt in full: the amount must match the
	// outstanding amount exactly, the debt is removed from the user's
	// list and a debt-payment HistoryItem is added to the owning fund.
	PayFundDebt(ctx context.Context, fundID, debtID string, amount decimal.Decimal) error
}
