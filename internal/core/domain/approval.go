package domain

import "github.com/shopspring/decimal"

// ApprovalStatus indicates the state of an approval request.
// pending is the only non-terminal status; approved and rejected are
// reached exactly once and never left.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// ApprovalItem is a request awaiting the fund's approval.
// A nil Value marks a non-monetary governance request (e.g. a rule
// change); only monetary requests disburse on approval.
type ApprovalItem struct {
	ApprovalID  string           `json:"id"`                    // Primary Key (e.g., UUID)
	Date        string           `json:"date"`                  // DD/MM/YYYY
	Description string           `json:"description"`           // What is being requested
	Value       *decimal.Decimal `json:"value"`                 // Requested amount, nil for governance requests
	Status      ApprovalStatus   `json:"status"`                // pending, approved or rejected
	RequesterID string           `json:"requesterId,omitempty"` // Member who raised the request
	FundName    string           `json:"fundName,omitempty"`    // Set only on flattened cross-fund views
}

// IsMonetary reports whether approving this item moves money.
func (a *ApprovalItem) IsMonetary() bool {
	return a.Value != nil
}
