package domain

import (
	"github.com/shopspring/decimal"
)

// MemberRole defines the possible roles a member can have within a fund.
type MemberRole string

const (
	RoleAdmin  MemberRole = "Admin"
	RoleMember MemberRole = "Membro"
)

// Member represents the membership of a person in a fund.
// Member identity is scoped to the fund; the same person in two funds
// holds two independent memberships.
type Member struct {
	MemberID     string     `json:"id"`                     // Primary Key (e.g., UUID)
	Name         string     `json:"name"`                   // Display name
	Role         MemberRole `json:"role"`                   // Admin or Membro
	Joined       string     `json:"joined"`                 // Join date, DD/MM/YYYY
	ProfileImage string     `json:"profileImage,omitempty"` // Optional avatar URL
}

// Fund represents a collective fund: a pool of money shared by a group of
// members, with its own history ledger and approval queue.
// History and Approvals are ordered newest-first by insertion.
type Fund struct {
	FundID      string          `json:"id"`          // Primary Key (e.g., UUID)
	Name        string          `json:"name"`        // User-defined name
	Description string          `json:"description"` // Purpose of the fund
	Image       string          `json:"image"`       // Cover image URL
	Date        string          `json:"date"`        // Creation date, DD/MM/YYYY
	Balance     decimal.Decimal `json:"balance"`     // Current pooled amount
	Growth      decimal.Decimal `json:"growth"`      // Display-only percentage, caller supplied
	Members     []Member        `json:"members"`
	History     []HistoryItem   `json:"history"`
	Approvals   []ApprovalItem  `json:"approvals"`
	AuditFields
}

// FindApproval returns the approval with the given ID, or nil.
func (f *Fund) FindApproval(approvalID string) *ApprovalItem {
	for i := range f.Approvals {
		if f.Approvals[i].ApprovalID == approvalID {
			return &f.Approvals[i]
		}
	}
	return nil
}

// HasMemberNamed reports whether a member with the given display name
// already belongs to the fund.
func (f *Fund) HasMemberNamed(name string) bool {
	for _, m := range f.Members {
		if m.Name == name {
			return true
		}
	}
	return false
}
