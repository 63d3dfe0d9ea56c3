package domain

import "github.com/shopspring/decimal"

// DebtItem is an outstanding debt the user owes to a fund, typically from
// a disbursed capital request. Partial payments are not supported; the
// item is removed from the debt list once settled in full.
type DebtItem struct {
	DebtID      string          `json:"id"`          // Primary Key (e.g., UUID)
	FundID      string          `json:"fundId"`      // Owning fund (read-only back-reference)
	FundName    string          `json:"fundName"`    // Denormalized for display
	Amount      decimal.Decimal `json:"amount"`      // Outstanding amount, always positive
	DueDate     string          `json:"dueDate"`     // DD/MM/YYYY
	Description string          `json:"description"` // What the debt is for
}
