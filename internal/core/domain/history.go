package domain

import "github.com/shopspring/decimal"

// HistoryType classifies a ledger movement.
type HistoryType string

const (
	HistoryDeposit     HistoryType = "deposit"
	HistoryWithdrawal  HistoryType = "withdrawal"
	HistoryDebtPayment HistoryType = "debt-payment"
)

// HistoryItem is a single immutable ledger movement of a fund.
// Items are created only by ledger commands and never deleted; Value is
// signed (deposits and debt payments positive, withdrawals negative).
type HistoryItem struct {
	HistoryID   string          `json:"id"`                 // Primary Key (e.g., UUID)
	Date        string          `json:"date"`               // DD/MM/YYYY
	Description string          `json:"description"`        // User description
	Value       decimal.Decimal `json:"value"`              // Signed amount
	Type        HistoryType     `json:"type"`               // deposit, withdrawal or debt-payment
	FundName    string          `json:"fundName,omitempty"` // Set only on flattened cross-fund views
}
