package dto

import (
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	"github.com/caixinha-app/caixinha_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// --- Fund DTOs ---

// CreateFundRequest defines the data needed to create a new fund.
type CreateFundRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Image       string   `json:"image"`                  // Optional cover image URL
	MemberNames []string `json:"memberNames"`            // Invited members, Membro role
	CreatorName string   `json:"creatorName,omitempty"`  // Defaults to the local user
}

// DepositRequest defines the data needed to deposit into a fund.
type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// CapitalRequest defines the data needed to request capital from a fund.
type CapitalRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	RepaymentDate string          `json:"repaymentDate" binding:"required,brdate"`
}

// MemberResponse defines the data returned for a fund member.
type MemberResponse struct {
	MemberID     string            `json:"id"`
	Name         string            `json:"name"`
	Role         domain.MemberRole `json:"role"`
	Joined       string            `json:"joined"`
	ProfileImage string            `json:"profileImage,omitempty"`
}

// HistoryItemResponse defines the data returned for a ledger movement.
type HistoryItemResponse struct {
	HistoryID      string             `json:"id"`
	Date           string             `json:"date"`
	Description    string             `json:"description"`
	Value          decimal.Decimal    `json:"value"`
	ValueFormatted string             `json:"valueFormatted"`
	Type           domain.HistoryType `json:"type"`
	FundName       string             `json:"fundName,omitempty"`
}

// ApprovalItemResponse defines the data returned for an approval request.
// Value is omitted entirely for non-monetary governance requests.
type ApprovalItemResponse struct {
	ApprovalID     string                `json:"id"`
	Date           string                `json:"date"`
	Description    string                `json:"description"`
	Value          *decimal.Decimal      `json:"value,omitempty"`
	ValueFormatted string                `json:"valueFormatted,omitempty"`
	Status         domain.ApprovalStatus `json:"status"`
	RequesterID    string                `json:"requesterId,omitempty"`
	FundName       string                `json:"fundName,omitempty"`
}

// FundResponse defines the data returned for a fund.
type FundResponse struct {
	FundID           string                 `json:"id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	Image            string                 `json:"image"`
	Date             string                 `json:"date"`
	Balance          decimal.Decimal        `json:"balance"`
	BalanceFormatted string                 `json:"balanceFormatted"`
	Growth           decimal.Decimal        `json:"growth"`
	GrowthFormatted  string                 `json:"growthFormatted"`
	Members          []MemberResponse       `json:"members"`
	History          []HistoryItemResponse  `json:"history"`
	Approvals        []ApprovalItemResponse `json:"approvals"`
}

// ListFundsResponse wraps a list of funds.
type ListFundsResponse struct {
	Funds []FundResponse `json:"funds"`
}

// ToMemberResponse converts domain.Member to DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:     m.MemberID,
		Name:         m.Name,
		Role:         m.Role,
		Joined:       m.Joined,
		ProfileImage: m.ProfileImage,
	}
}

// ToHistoryItemResponse converts domain.HistoryItem to DTO, formatting the
// value according to the hide-values preference.
func ToHistoryItemResponse(h *domain.HistoryItem, hideValues bool) HistoryItemResponse {
	return HistoryItemResponse{
		HistoryID:      h.HistoryID,
		Date:           h.Date,
		Description:    h.Description,
		Value:          h.Value,
		ValueFormatted: utils.FormatCurrency(h.Value, hideValues),
		Type:           h.Type,
		FundName:       h.FundName,
	}
}

// ToApprovalItemResponse converts domain.ApprovalItem to DTO.
func ToApprovalItemResponse(a *domain.ApprovalItem, hideValues bool) ApprovalItemResponse {
	resp := ApprovalItemResponse{
		ApprovalID:  a.ApprovalID,
		Date:        a.Date,
		Description: a.Description,
		Status:      a.Status,
		RequesterID: a.RequesterID,
		FundName:    a.FundName,
	}
	if a.Value != nil {
		resp.Value = a.Value
		resp.ValueFormatted = utils.FormatCurrency(*a.Value, hideValues)
	}
	return resp
}

// ToFundResponse converts domain.Fund to DTO.
func ToFundResponse(f *domain.Fund, hideValues bool) FundResponse {
	members := make([]MemberResponse, len(f.Members))
	for i := range f.Members {
		members[i] = ToMemberResponse(&f.Members[i])
	}
	history := make([]HistoryItemResponse, len(f.History))
	for i := range f.History {
		history[i] = ToHistoryItemResponse(&f.History[i], hideValues)
	}
	approvals := make([]ApprovalItemResponse, len(f.Approvals))
	for i := range f.Approvals {
		approvals[i] = ToApprovalItemResponse(&f.Approvals[i], hideValues)
	}
	return FundResponse{
		FundID:           f.FundID,
		Name:             f.Name,
		Description:      f.Description,
		Image:            f.Image,
		Date:             f.Date,
		Balance:          f.Balance,
		BalanceFormatted: utils.FormatCurrency(f.Balance, hideValues),
		Growth:           f.Growth,
		GrowthFormatted:  utils.FormatPercentage(f.Growth, hideValues),
		Members:          members,
		History:          history,
		Approvals:        approvals,
	}
}

// ToListFundsResponse converts a slice of domain.Fund to DTO.
func ToListFundsResponse(funds []domain.Fund, hideValues bool) ListFundsResponse {
	list := make([]FundResponse, len(funds))
	for i := range funds {
		list[i] = ToFundResponse(&funds[i], hideValues)
	}
	return ListFundsResponse{Funds: list}
}
