package domain

import "github.com/shopspring/decimal"

// AccountSummary aggregates the user's position across all funds.
// It is always derived from the per-fund ledgers, never stored.
type AccountSummary struct {
	TotalBalance  decimal.Decimal `json:"totalBalance"`  // Sum of all fund balances
	TotalMembers  int             `json:"totalMembers"`  // Distinct member ids across funds
	TotalDeposits decimal.Decimal `json:"totalDeposits"` // Sum of deposit-type movements
}
