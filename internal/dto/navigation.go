package dto

import (
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
)

// --- Navigation DTOs ---

// GoToFundRequest selects a fund and opens the fund-detail screen.
type GoToFundRequest struct {
	FundID string `json:"fundId" binding:"required"`
}

// SelectFundTabRequest activates a tab on the fund-detail screen.
type SelectFundTabRequest struct {
	Tab domain.FundTab `json:"tab" binding:"required,oneof=history approvals members"`
}

// SelectAccountTabRequest activates a tab on the account screen.
type SelectAccountTabRequest struct {
	Tab domain.AccountTab `json:"tab" binding:"required,oneof=debts movements approvals"`
}

// OpenSheetRequest opens one of the modal sheets, optionally pre-selecting
// a target fund.
type OpenSheetRequest struct {
	Kind         domain.SheetKind `json:"kind" binding:"required,oneof=fund-creation deposit capital-request debt-payment"`
	TargetFundID string           `json:"targetFundId"`
}

// AdvanceSheetRequest moves the open sheet to its details step, carrying
// the fund picked on the selection step.
type AdvanceSheetRequest struct {
	TargetFundID string `json:"targetFundId"`
}

// SheetResponse mirrors domain.Sheet.
type SheetResponse struct {
	Kind         domain.SheetKind `json:"kind"`
	Step         domain.SheetStep `json:"step"`
	TargetFundID string           `json:"targetFundId,omitempty"`
}

// NavigationStateResponse defines the data returned for the navigation state.
type NavigationStateResponse struct {
	ActiveScreen   domain.Screen     `json:"activeScreen"`
	SelectedFundID string            `json:"selectedFundId,omitempty"`
	FundTab        domain.FundTab    `json:"fundTab"`
	AccountTab     domain.AccountTab `json:"accountTab"`
	Sheet          *SheetResponse    `json:"sheet,omitempty"`
}

// ToNavigationStateResponse converts domain.NavigationState to DTO.
func ToNavigationStateResponse(s domain.NavigationState) NavigationStateResponse {
	resp := NavigationStateResponse{
		ActiveScreen:   s.ActiveScreen,
		SelectedFundID: s.SelectedFundID,
		FundTab:        s.FundTab,
		AccountTab:     s.AccountTab,
	}
	if s.Sheet != nil {
		resp.Sheet = &SheetResponse{
			Kind:         s.Sheet.Kind,
			Step:         s.Sheet.Step,
			TargetFundID: s.Sheet.TargetFundID,
		}
	}
	return resp
}

// --- Preference DTOs ---

// SetHideValuesRequest toggles the global value-masking preference.
type SetHideValuesRequest struct {
	HideValues *bool `json:"hideValues" binding:"required"`
}

// PreferencesResponse returns the current display preferences.
type PreferencesResponse struct {
	HideValues bool `json:"hideValues"`
}
