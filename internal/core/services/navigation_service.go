package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
)

// navigationService holds the client's navigation state machine and the
// global display preferences. All transitions run under one mutex so each
// user action is a single consistent state update.
type navigationService struct {
	BaseService
	fundRepo portsrepo.FundReader

	mu         sync.Mutex
	state      domain.NavigationState
	hideValues bool
}

// NewNavigationService creates a navigation service in the initial state.
func NewNavigationService(fundRepo portsrepo.FundReader) *navigationService {
	return &navigationService{
		fundRepo: fundRepo,
		state:    domain.InitialNavigationState(),
	}
}

// Ensure navigationService implements both facades
var (
	_ portssvc.NavigationSvcFacade = (*navigationService)(nil)
	_ portssvc.PreferencesSvc      = (*navigationService)(nil)
)

// State returns a snapshot of the current navigation state.
func (s *navigationService) State(ctx context.Context) domain.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// GoToFund selects an existing fund and opens fund-detail with the fund
// tab reset to history.
func (s *navigationService) GoToFund(ctx context.Context, fundID string) (domain.NavigationState, error) {
	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		s.LogDebug(ctx, "Navigation to unknown fund refused", slog.String("fund_id", fundID))
		return s.State(ctx), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveScreen = domain.ScreenFundDetail
	s.state.SelectedFundID = fundID
	s.state.FundTab = domain.FundTabHistory
	return s.snapshot(), nil
}

// GoHome returns to the home screen and clears the fund selection.
func (s *navigationService) GoHome(ctx context.Context) domain.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveScreen = domain.ScreenHome
	s.state.SelectedFundID = ""
	return s.snapshot()
}

// GoToAccount switches to the account screen.
func (s *navigationService) GoToAccount(ctx context.Context) domain.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveScreen = domain.ScreenAccount
	return s.snapshot()
}

// SelectFundTab activates a tab within the fund-detail screen.
func (s *navigationService) SelectFundTab(ctx context.Context, tab domain.FundTab) (domain.NavigationState, error) {
	switch tab {
	case domain.FundTabHistory, domain.FundTabApprovals, domain.FundTabMembers:
	default:
		return s.State(ctx), fmt.Errorf("unknown fund tab %q: %w", tab, apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FundTab = tab
	return s.snapshot(), nil
}

// SelectAccountTab activates a tab within the account screen.
func (s *navigationService) SelectAccountTab(ctx context.Context, tab domain.AccountTab) (domain.NavigationState, error) {
	switch tab {
	case domain.AccountTabDebts, domain.AccountTabMovements, domain.AccountTabApprovals:
	default:
		return s.State(ctx), fmt.Errorf("unknown account tab %q: %w", tab, apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AccountTab = tab
	return s.snapshot(), nil
}

// OpenSheet opens a modal sheet at its initial step. Deposit and
// capital-request sheets skip fund selection when a target fund is given.
func (s *navigationService) OpenSheet(ctx context.Context, kind domain.SheetKind, targetFundID string) (domain.NavigationState, error) {
	if targetFundID != "" {
		if _, err := s.fundRepo.FindFundByID(ctx, targetFundID); err != nil {
			return s.State(ctx), err
		}
	}

	var step domain.SheetStep
	switch kind {
	case domain.SheetFundCreation:
		// Single-step form, no fund to select.
		step = domain.StepDetails
	case domain.SheetDeposit, domain.SheetCapitalRequest:
		step = domain.StepSelectFund
		if targetFundID != "" {
			step = domain.StepDetails
		}
	case domain.SheetDebtPayment:
		step = domain.StepSelectFund
	default:
		return s.State(ctx), fmt.Errorf("unknown sheet kind %q: %w", kind, apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sheet = &domain.Sheet{
		Kind:         kind,
		Step:         step,
		TargetFundID: targetFundID,
	}
	return s.snapshot(), nil
}

// AdvanceSheet moves the open sheet from selection to details, carrying
// the fund picked on the selection step.
func (s *navigationService) AdvanceSheet(ctx context.Context, targetFundID string) (domain.NavigationState, error) {
	if targetFundID != "" {
		if _, err := s.fundRepo.FindFundByID(ctx, targetFundID); err != nil {
			return s.State(ctx), err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := s.state.Sheet
	if sheet == nil {
		return s.snapshot(), fmt.Errorf("no sheet is open: %w", apperrors.ErrConflict)
	}
	if sheet.Step == domain.StepDetails {
		return s.snapshot(), fmt.Errorf("%s sheet is already at its last step: %w", sheet.Kind, apperrors.ErrConflict)
	}
	if targetFundID != "" {
		sheet.TargetFundID = targetFundID
	}
	if sheet.TargetFundID == "" && sheet.Kind != domain.SheetDebtPayment {
		return s.snapshot(), fmt.Errorf("a fund must be selected before continuing: %w", apperrors.ErrValidation)
	}

	sheet.Step = domain.StepDetails
	return s.snapshot(), nil
}

// RetreatSheet moves the open sheet back to its selection step.
func (s *navigationService) RetreatSheet(ctx context.Context) (domain.NavigationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := s.state.Sheet
	if sheet == nil {
		return s.snapshot(), fmt.Errorf("no sheet is open: %w", apperrors.ErrConflict)
	}
	if sheet.Kind == domain.SheetFundCreation || sheet.Step == domain.StepSelectFund {
		return s.snapshot(), fmt.Errorf("%s sheet has no earlier step: %w", sheet.Kind, apperrors.ErrConflict)
	}

	sheet.Step = domain.StepSelectFund
	return s.snapshot(), nil
}

// CloseSheet discards the open sheet and its draft entirely. Closing when
// nothing is open is a no-op.
func (s *navigationService) CloseSheet(ctx context.Context) domain.NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sheet = nil
	return s.snapshot()
}

// HideValues reports whether monetary values are currently masked.
func (s *navigationService) HideValues(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hideValues
}

// SetHideValues sets the masking preference.
func (s *navigationService) SetHideValues(ctx context.Context, hide bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hideValues = hide
	return s.hideValues
}

// snapshot copies the state so callers never alias the live sheet.
// Callers must hold s.mu.
func (s *navigationService) snapshot() domain.NavigationState {
	snap := s.state
	if s.state.Sheet != nil {
		sheet := *s.state.Sheet
		snap.Sheet = &sheet
	}
	return snap
}
