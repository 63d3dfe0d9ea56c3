package domain

// Screen is a mutually exclusive top-level screen of the client.
type Screen string

const (
	ScreenHome       Screen = "home"
	ScreenFundDetail Screen = "fund-detail"
	ScreenAccount    Screen = "account"
)

// FundTab is the active tab within the fund-detail screen.
type FundTab string

const (
	FundTabHistory   FundTab = "history"
	FundTabApprovals FundTab = "approvals"
	FundTabMembers   FundTab = "members"
)

// AccountTab is the active tab within the account screen.
type AccountTab string

const (
	AccountTabDebts     AccountTab = "debts"
	AccountTabMovements AccountTab = "movements"
	AccountTabApprovals AccountTab = "approvals"
)

// SheetKind identifies one of the modal sheets a user can open.
type SheetKind string

const (
	SheetFundCreation   SheetKind = "fund-creation"
	SheetDeposit        SheetKind = "deposit"
	SheetCapitalRequest SheetKind = "capital-request"
	SheetDebtPayment    SheetKind = "debt-payment"
)

// SheetStep is the position inside a sheet's short-lived step flow.
// Deposit and capital-request flow select-fund -> details; debt-payment
// flows select-fund (debt selection) -> details (payment); fund-creation
// is a single details step.
type SheetStep string

const (
	StepSelectFund SheetStep = "select-fund"
	StepDetails    SheetStep = "details"
)

// Sheet is the state of the currently open modal sheet. It is discarded
// wholesale on close; no draft survives across opens.
type Sheet struct {
	Kind         SheetKind `json:"kind"`
	Step         SheetStep `json:"step"`
	TargetFundID string    `json:"targetFundId,omitempty"` // Pre-selected fund, if opened from a fund screen
}

// NavigationState is the full navigation state of the client: the active
// screen, the orthogonal tab sub-states, and the open sheet if any.
type NavigationState struct {
	ActiveScreen   Screen     `json:"activeScreen"`
	SelectedFundID string     `json:"selectedFundId,omitempty"`
	FundTab        FundTab    `json:"fundTab"`
	AccountTab     AccountTab `json:"accountTab"`
	Sheet          *Sheet     `json:"sheet,omitempty"`
}

// InitialNavigationState returns the state the client starts in: home
// screen, nothing selected, no sheet open, default tabs.
func InitialNavigationState() NavigationState {
	return NavigationState{
		ActiveScreen: ScreenHome,
		FundTab:      FundTabHistory,
		AccountTab:   AccountTabDebts,
	}
}
