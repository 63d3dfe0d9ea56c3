package services

import (
	"context"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
)

// NavigationSvcFacade is the screen/tab/sheet state machine of the client.
// Every transition returns the resulting state so callers can re-render
// from a single snapshot.
type NavigationSvcFacade interface {
	// State returns the current navigation state.
	State(ctx context.Context) domain.NavigationState

	// GoToFund selects an existing fund and switches to the fund-detail
	// screen with the fund tab reset to history.
	GoToFund(ctx context.Context, fundID string) (domain.NavigationState, error)

	// GoHome switches to the home screen and clears the fund selection.
	GoHome(ctx context.Context) domain.NavigationState

	// GoToAccount switches to the account screen.
	GoToAccount(ctx context.Context) domain.NavigationState

	// SelectFundTab activates a tab within the fund-detail screen.
	SelectFundTab(ctx context.Context, tab domain.FundTab) (domain.NavigationState, error)

	// SelectAccountTab activates a tab within the account screen.
	SelectAccountTab(ctx context.Context, tab domain.AccountTab) (domain.NavigationState, error)

	// OpenSheet opens a modal sheet at its initial step. A target fund id
	// pre-selects the fund and jumps deposit/capital-request sheets
	// straight to their details step.
	OpenSheet(ctx context.Context, kind domain.SheetKind, targetFundID string) (domain.NavigationState, error)

	// AdvanceSheet moves the open sheet from fund selection to details.
	AdvanceSheet(ctx context.Context, targetFundID string) (domain.NavigationState, error)

	// RetreatSheet moves the open sheet back to fund selection.
	RetreatSheet(ctx context.Context) (domain.NavigationState, error)

	// CloseSheet discards the open sheet and its draft entirely.
	CloseSheet(ctx context.Context) domain.NavigationState
}

// PreferencesSvc holds the global display preferences of the client.
type PreferencesSvc interface {
	// HideValues reports whether monetary values are currently masked.
	HideValues(ctx context.Context) bool

	// SetHideValues sets the masking preference and returns the new value.
	SetHideValues(ctx context.Context, hide bool) bool
}
