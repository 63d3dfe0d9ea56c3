package services

import (
	"context"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	"github.com/caixinha-app/caixinha_backend/internal/dto"
)

// FundReaderSvc defines read operations for fund data.
type FundReaderSvc interface {
	// FindFundByID retrieves a specific fund by its ID.
	FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// ListFunds retrieves all funds in creation order.
	ListFunds(ctx context.Context) ([]domain.Fund, error)
}

// FundWriterSvc defines the ledger commands that mutate a fund.
type FundWriterSvc interface {
	// CreateFund allocates a new fund with the submitter as Admin and the
	// listed member names as Membro, zero balance and empty ledgers.
	CreateFund(ctx context.Context, req dto.CreateFundRequest) (*domain.Fund, error)

	// DepositToFund records a deposit: prepends a deposit HistoryItem and
	// increases the balance by the amount.
	DepositToFund(ctx context.Context, fundID string, req dto.DepositRequest) (*domain.Fund, error)

	// RequestCapital queues a pending capital request. The balance is not
	// touched until the request is approved.
	RequestCapital(ctx context.Context, fundID string, req dto.CapitalRequest) (*domain.ApprovalItem, error)
}

// ApprovalSvc defines the one-shot transitions of pending approvals.
type ApprovalSvc interface {
	// ApproveApproval transitions a pending approval to approved. For
	// monetary requests this disburses: the balance decreases by the
	// approved amount and a withdrawal HistoryItem is recorded.
	ApproveApproval(ctx context.Context, fundID, approvalID string) (*domain.ApprovalItem, error)

	// RejectApproval transitions a pending approval to rejected. The
	// balance is never touched.
	RejectApproval(ctx context.Context, fundID, approvalID string) (*domain.ApprovalItem, error)
}

// FundSvcFacade combines all fund-related service interfaces.
type FundSvcFacade interface {
	FundReaderSvc
	FundWriterSvc
	ApprovalSvc
}
