package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// debtService implements the DebtSvcFacade interface.
type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
	fundRepo portsrepo.FundRepositoryFacade
	now      func() time.Time
}

// DebtServiceOption configures a debtService.
type DebtServiceOption func(*debtService)

// WithDebtClock overrides the service clock, mainly for tests.
func WithDebtClock(now func() time.Time) DebtServiceOption {
	return func(s *debtService) {
		s.now = now
	}
}

// NewDebtService creates a new debt service with the provided dependencies.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, fundRepo portsrepo.FundRepositoryFacade, opts ...DebtServiceOption) portssvc.DebtSvcFacade {
	s := &debtService{
		debtRepo: debtRepo,
		fundRepo: fundRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure debtService implements the DebtSvcFacade interface
var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// ListUserDebts retrieves the user's outstanding debts.
func (s *debtService) ListUserDebts(ctx context.Context) ([]domain.DebtItem, error) {
	debts, err := s.debtRepo.ListDebts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts")
		return nil, err
	}

	if debts == nil {
		return []domain.DebtItem{}, nil
	}
	return debts, nil
}

// PayFundDebt settles a debt in full. The amount must equal the
// outstanding amount exactly; on success the debt disappears from the
// user's list and the owning fund gains a debt-payment movement.
func (s *debtService) PayFundDebt(ctx context.Context, fundID, debtID string, amount decimal.Decimal) error {
	debt, err := s.debtRepo.FindDebtByID(ctx, debtID)
	if err != nil {
		return err
	}
	if debt.FundID != fundID {
		return fmt.Errorf("debt %s does not belong to fund %s: %w", debtID, fundID, apperrors.ErrNotFound)
	}
	if !amount.Equal(debt.Amount) {
		return fmt.Errorf("payment of %s does not settle outstanding amount %s: %w",
			amount.String(), debt.Amount.String(), apperrors.ErrValidation)
	}

	// Removal is the one-shot gate: a concurrent duplicate submission
	// loses here with ErrNotFound and records nothing.
	if err := s.debtRepo.RemoveDebt(ctx, debtID); err != nil {
		return err
	}

	now := s.now()
	payment := domain.HistoryItem{
		HistoryID:   uuid.NewString(),
		Date:        utils.FormatDisplayDate(now),
		Description: fmt.Sprintf("Pagamento de dívida: %s", debt.Description),
		Value:       amount,
		Type:        domain.HistoryDebtPayment,
	}

	err = s.fundRepo.MutateFund(ctx, fundID, func(fund *domain.Fund) error {
		fund.History = append([]domain.HistoryItem{payment}, fund.History...)
		// Repayment flows back into the pool, keeping the balance equal to
		// the sum of signed history values.
		fund.Balance = fund.Balance.Add(amount)
		fund.Touch(now)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record debt payment movement",
			slog.String("fund_id", fundID),
			slog.String("debt_id", debtID))
		return err
	}

	s.LogInfo(ctx, "Debt settled",
		slog.String("fund_id", fundID),
		slog.String("debt_id", debtID),
		slog.String("amount", amount.String()))
	return nil
}
