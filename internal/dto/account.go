package dto

import (
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	"github.com/caixinha-app/caixinha_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// --- Account screen DTOs ---

// PayDebtRequest defines the data needed to settle a debt. The amount must
// match the outstanding amount exactly; partial payments are rejected.
type PayDebtRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// DebtItemResponse defines the data returned for an outstanding debt.
type DebtItemResponse struct {
	DebtID          string          `json:"id"`
	FundID          string          `json:"fundId"`
	FundName        string          `json:"fundName"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
	DueDate         string          `json:"dueDate"`
	Description     string          `json:"description"`
}

// ListDebtsResponse wraps the user's outstanding debts.
type ListDebtsResponse struct {
	Debts []DebtItemResponse `json:"debts"`
}

// ListMovementsResponse wraps the user's movements across all funds.
type ListMovementsResponse struct {
	Movements []HistoryItemResponse `json:"movements"`
}

// ListApprovalsResponse wraps the user's approvals across all funds.
type ListApprovalsResponse struct {
	Approvals []ApprovalItemResponse `json:"approvals"`
}

// AccountSummaryResponse defines the aggregate totals for the account screen.
type AccountSummaryResponse struct {
	TotalBalance           decimal.Decimal `json:"totalBalance"`
	TotalBalanceFormatted  string          `json:"totalBalanceFormatted"`
	TotalMembers           int             `json:"totalMembers"`
	TotalDeposits          decimal.Decimal `json:"totalDeposits"`
	TotalDepositsFormatted string          `json:"totalDepositsFormatted"`
}

// ToDebtItemResponse converts domain.DebtItem to DTO.
func ToDebtItemResponse(d *domain.DebtItem, hideValues bool) DebtItemResponse {
	return DebtItemResponse{
		DebtID:          d.DebtID,
		FundID:          d.FundID,
		FundName:        d.FundName,
		Amount:          d.Amount,
		AmountFormatted: utils.FormatCurrency(d.Amount, hideValues),
		DueDate:         d.DueDate,
		Description:     d.Description,
	}
}

// ToListDebtsResponse converts a slice of domain.DebtItem to DTO.
func ToListDebtsResponse(debts []domain.DebtItem, hideValues bool) ListDebtsResponse {
	list := make([]DebtItemResponse, len(debts))
	for i := range debts {
		list[i] = ToDebtItemResponse(&debts[i], hideValues)
	}
	return ListDebtsResponse{Debts: list}
}

// ToListMovementsResponse converts flattened movements to DTO.
func ToListMovementsResponse(movements []domain.HistoryItem, hideValues bool) ListMovementsResponse {
	list := make([]HistoryItemResponse, len(movements))
	for i := range movements {
		list[i] = ToHistoryItemResponse(&movements[i], hideValues)
	}
	return ListMovementsResponse{Movements: list}
}

// ToListApprovalsResponse converts flattened approvals to DTO.
func ToListApprovalsResponse(approvals []domain.ApprovalItem, hideValues bool) ListApprovalsResponse {
	list := make([]ApprovalItemResponse, len(approvals))
	for i := range approvals {
		list[i] = ToApprovalItemResponse(&approvals[i], hideValues)
	}
	return ListApprovalsResponse{Approvals: list}
}

// ToAccountSummaryResponse converts domain.AccountSummary to DTO.
func ToAccountSummaryResponse(s *domain.AccountSummary, hideValues bool) AccountSummaryResponse {
	return AccountSummaryResponse{
		TotalBalance:           s.TotalBalance,
		TotalBalanceFormatted:  utils.FormatCurrency(s.TotalBalance, hideValues),
		TotalMembers:           s.TotalMembers,
		TotalDeposits:          s.TotalDeposits,
		TotalDepositsFormatted: utils.FormatCurrency(s.TotalDeposits, hideValues),
	}
}
