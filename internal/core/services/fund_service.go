package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portsrepo "github.com/caixinha-app/caixinha_backend/internal/core/ports/repositories"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/dto"
	"github.com/caixinha-app/caixinha_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultCreatorName is the display name used for the local user when a
// fund creation request does not carry one.
const defaultCreatorName = "Lucas"

// fundService implements the FundSvcFacade interface.
type fundService struct {
	BaseService
	fundRepo portsrepo.FundRepositoryFacade
	now      func() time.Time
}

// FundServiceOption configures a fundService.
type FundServiceOption func(*fundService)

// WithFundClock overrides the service clock, mainly for tests.
func WithFundClock(now func() time.Time) FundServiceOption {
	return func(s *fundService) {
		s.now = now
	}
}

// NewFundService creates a new fund service with the provided dependencies.
func NewFundService(fundRepo portsrepo.FundRepositoryFacade, opts ...FundServiceOption) portssvc.FundSvcFacade {
	s := &fundService{
		fundRepo: fundRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure fundService implements the FundSvcFacade interface
var _ portssvc.FundSvcFacade = (*fundService)(nil)

// FindFundByID retrieves a fund by its ID.
func (s *fundService) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Fund retrieved successfully", slog.String("fund_id", fund.FundID))
	return fund, nil
}

// ListFunds retrieves all funds in creation order.
func (s *fundService) ListFunds(ctx context.Context) ([]domain.Fund, error) {
	funds, err := s.fundRepo.ListFunds(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list funds")
		return nil, err
	}

	if funds == nil {
		return []domain.Fund{}, nil
	}
	return funds, nil
}

// CreateFund creates a new fund with the creator as Admin and every listed
// member name as Membro, each with a freshly generated id.
func (s *fundService) CreateFund(ctx context.Context, req dto.CreateFundRequest) (*domain.Fund, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" {
		return nil, fmt.Errorf("fund name is required: %w", apperrors.ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("fund description is required: %w", apperrors.ErrValidation)
	}

	creatorName := strings.TrimSpace(req.CreatorName)
	if creatorName == "" {
		creatorName = defaultCreatorName
	}

	now := s.now()
	today := utils.FormatDisplayDate(now)

	members := []domain.Member{{
		MemberID: uuid.NewString(),
		Name:     creatorName,
		Role:     domain.RoleAdmin,
		Joined:   today,
	}}

	seen := map[string]bool{creatorName: true}
	for _, raw := range req.MemberNames {
		memberName := strings.TrimSpace(raw)
		if memberName == "" {
			return nil, fmt.Errorf("member name must not be empty: %w", apperrors.ErrValidation)
		}
		if seen[memberName] {
			return nil, fmt.Errorf("duplicate member name %q: %w", memberName, apperrors.ErrValidation)
		}
		seen[memberName] = true
		members = append(members, domain.Member{
			MemberID: uuid.NewString(),
			Name:     memberName,
			Role:     domain.RoleMember,
			Joined:   today,
		})
	}

	fund := domain.Fund{
		FundID:      uuid.NewString(),
		Name:        name,
		Description: description,
		Image:       req.Image,
		Date:        today,
		Balance:     decimal.Zero,
		Growth:      decimal.Zero,
		Members:     members,
		History:     []domain.HistoryItem{},
		Approvals:   []domain.ApprovalItem{},
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.fundRepo.SaveFund(ctx, fund); err != nil {
		s.LogError(ctx, err, "Failed to save fund", slog.String("fund_id", fund.FundID))
		return nil, err
	}

	s.LogInfo(ctx, "Fund created successfully",
		slog.String("fund_id", fund.FundID),
		slog.Int("member_count", len(fund.Members)))
	return &fund, nil
}

// DepositToFund records a deposit: the movement is prepended to the
// history (newest first) and the balance grows by the amount.
func (s *fundService) DepositToFund(ctx context.Context, fundID string, req dto.DepositRequest) (*domain.Fund, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("deposit description is required: %w", apperrors.ErrValidation)
	}

	now := s.now()
	var updated domain.Fund
	err := s.fundRepo.MutateFund(ctx, fundID, func(fund *domain.Fund) error {
		item := domain.HistoryItem{
			HistoryID:   uuid.NewString(),
			Date:        utils.FormatDisplayDate(now),
			Description: description,
			Value:       req.Amount,
			Type:        domain.HistoryDeposit,
		}
		fund.History = append([]domain.HistoryItem{item}, fund.History...)
		fund.Balance = fund.Balance.Add(req.Amount)
		fund.Touch(now)
		updated = *fund
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to deposit to fund", slog.String("fund_id", fundID))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit recorded",
		slog.String("fund_id", fundID),
		slog.String("amount", req.Amount.String()))
	return &updated, nil
}

// RequestCapital queues a pending capital request on the fund. The balance
// is only touched when the request is approved.
func (s *fundService) RequestCapital(ctx context.Context, fundID string, req dto.CapitalRequest) (*domain.ApprovalItem, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("request description is required: %w", apperrors.ErrValidation)
	}

	now := s.now()
	if !utils.IsDateStrictlyAfter(req.RepaymentDate, now) {
		return nil, fmt.Errorf("repayment date must be after the request date: %w", apperrors.ErrValidation)
	}

	amount := req.Amount
	approval := domain.ApprovalItem{
		ApprovalID:  uuid.NewString(),
		Date:        utils.FormatDisplayDate(now),
		Description: description,
		Value:       &amount,
		Status:      domain.ApprovalPending,
	}

	err := s.fundRepo.MutateFund(ctx, fundID, func(fund *domain.Fund) error {
		fund.Approvals = append([]domain.ApprovalItem{approval}, fund.Approvals...)
		fund.Touch(now)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to request capital", slog.String("fund_id", fundID))
		return nil, err
	}

	s.LogInfo(ctx, "Capital request queued",
		slog.String("fund_id", fundID),
		slog.String("approval_id", approval.ApprovalID),
		slog.String("amount", amount.String()))
	return &approval, nil
}

// ApproveApproval transitions a pending approval to approved. Monetary
// requests disburse in the same state update: the balance decreases by the
// approved amount and a withdrawal movement is recorded.
func (s *fundService) ApproveApproval(ctx context.Context, fundID, approvalID string) (*domain.ApprovalItem, error) {
	return s.settleApproval(ctx, fundID, approvalID, domain.ApprovalApproved)
}

// RejectApproval transitions a pending approval to rejected. The balance
// is never touched.
func (s *fundService) RejectApproval(ctx context.Context, fundID, approvalID string) (*domain.ApprovalItem, error) {
	return s.settleApproval(ctx, fundID, approvalID, domain.ApprovalRejected)
}

func (s *fundService) settleApproval(ctx context.Context, fundID, approvalID string, target domain.ApprovalStatus) (*domain.ApprovalItem, error) {
	now := s.now()
	var settled domain.ApprovalItem
	err := s.fundRepo.MutateFund(ctx, fundID, func(fund *domain.Fund) error {
		approval := fund.FindApproval(approvalID)
		if approval == nil {
			return fmt.Errorf("approval %s: %w", approvalID, apperrors.ErrNotFound)
		}
		if approval.Status != domain.ApprovalPending {
			return fmt.Errorf("approval %s is already %s: %w", approvalID, approval.Status, apperrors.ErrConflict)
		}

		approval.Status = target

		if target == domain.ApprovalApproved && approval.IsMonetary() {
			fund.Balance = fund.Balance.Sub(*approval.Value)
			withdrawal := domain.HistoryItem{
				HistoryID:   uuid.NewString(),
				Date:        utils.FormatDisplayDate(now),
				Description: approval.Description,
				Value:       approval.Value.Neg(),
				Type:        domain.HistoryWithdrawal,
			}
			fund.History = append([]domain.HistoryItem{withdrawal}, fund.History...)
		}

		fund.Touch(now)
		settled = *approval
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to settle approval",
			slog.String("fund_id", fundID),
			slog.String("approval_id", approvalID),
			slog.String("target_status", string(target)))
		return nil, err
	}

	s.LogInfo(ctx, "Approval settled",
		slog.String("fund_id", fundID),
		slog.String("approval_id", approvalID),
		slog.String("status", string(settled.Status)))
	return &settled, nil
}

// validateAmount rejects non-positive amounts.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be a positive number, got %s: %w", amount.String(), apperrors.ErrValidation)
	}
	return nil
}
