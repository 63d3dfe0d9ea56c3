package services

import (
	"context"
	"sort"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/utils"
)

// accountViewService derives the user-scoped account views from the
// per-fund ledgers. Nothing here is stored; the projections can never
// drift from the funds they are computed from.
type accountViewService struct {
	BaseService
	fundRepo portsrepo.FundReader
}

// NewAccountViewService creates a new account view service.
func NewAccountViewService(fundRepo portsrepo.FundReader) portssvc.AccountViewSvc {
	return &accountViewService{
		fundRepo: fundRepo,
	}
}

// Ensure accountViewService implements the AccountViewSvc interface
var _ portssvc.AccountViewSvc = (*accountViewService)(nil)

// ListUserMovements flattens the history of all funds with the fund name
// attached. Per-fund insertion order is authoritative; display dates are
// used only to interleave the funds, and the sort is stable so ties keep
// their ledger order.
func (s *accountViewService) ListUserMovements(ctx context.Context) ([]domain.HistoryItem, error) {
	funds, err := s.fundRepo.ListFunds(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds for movements view")
		return nil, err
	}

	movements := []domain.HistoryItem{}
	for _, fund := range funds {
		for _, item := range fund.History {
			item.FundName = fund.Name
			movements = append(movements, item)
		}
	}
	sortByDisplayDateDesc(movements, func(h domain.HistoryItem) string { return h.Date })
	return movements, nil
}

// ListUserApprovals flattens the approval queues of all funds with the
// fund name attached, newest first.
func (s *accountViewService) ListUserApprovals(ctx context.Context) ([]domain.ApprovalItem, error) {
	funds, err := s.fundRepo.ListFunds(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds for approvals view")
		return nil, err
	}

	approvals := []domain.ApprovalItem{}
	for _, fund := range funds {
		for _, item := range fund.Approvals {
			item.FundName = fund.Name
			approvals = append(approvals, item)
		}
	}
	sortByDisplayDateDesc(approvals, func(a domain.ApprovalItem) string { return a.Date })
	return approvals, nil
}

// Summary computes the aggregate totals for the account screen.
func (s *accountViewService) Summary(ctx context.Context) (*domain.AccountSummary, error) {
	funds, err := s.fundRepo.ListFunds(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds for summary")
		return nil, err
	}

	summary := &domain.AccountSummary{}
	memberIDs := map[string]bool{}
	for _, fund := range funds {
		summary.TotalBalance = summary.TotalBalance.Add(fund.Balance)
		for _, member := range fund.Members {
			memberIDs[member.MemberID] = true
		}
		for _, item := range fund.History {
			if item.Type == domain.HistoryDeposit {
				summary.TotalDeposits = summary.TotalDeposits.Add(item.Value)
			}
		}
	}
	summary.TotalMembers = len(memberIDs)
	return summary, nil
}

// sortByDisplayDateDesc stable-sorts items newest first by their
// DD/MM/YYYY display date. Unparseable dates sink to the end without
// disturbing the relative order of the rest.
func sortByDisplayDateDesc[T any](items []T, date func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, erri := utils.ParseDisplayDate(date(items[i]))
		tj, errj := utils.ParseDisplayDate(date(items[j]))
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return ti.After(tj)
	})
}
