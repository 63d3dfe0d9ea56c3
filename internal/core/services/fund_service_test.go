package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/core/services"
	"github.com/caixinha-app/caixinha_backend/internal/dto"
	"github.com/caixinha-app/caixinha_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type FundServiceTestSuite struct {
	suite.Suite
	now     time.Time
	service portssvc.FundSvcFacade
}

func (suite *FundServiceTestSuite) SetupTest() {
	suite.now = time.Date(2023, 5, 20, 12, 0, 0, 0, time.UTC)
	funds, debts := memory.SeedDemoData(suite.now)
	store := memory.NewSeededStore(funds, debts)
	suite.service = services.NewFundService(
		memory.NewFundRepository(store),
		services.WithFundClock(func() time.Time { return suite.now }),
	)
}

// --- Test Cases ---

func (suite *FundServiceTestSuite) TestCreateFund_Success() {
	ctx := context.Background()
	req := dto.CreateFundRequest{
		Name:        "Churrasco do time",
		Description: "Vaquinha mensal do churrasco",
		MemberNames: []string{"Bruno", "Clara"},
	}

	fund, err := suite.service.CreateFund(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(fund)
	suite.True(fund.Balance.IsZero())
	suite.True(fund.Growth.IsZero())
	suite.Empty(fund.History)
	suite.Empty(fund.Approvals)
	suite.Equal("20/05/2023", fund.Date)

	suite.Require().Len(fund.Members, 3)
	suite.Equal(domain.RoleAdmin, fund.Members[0].Role)
	suite.Equal("Lucas", fund.Members[0].Name)
	suite.Equal(domain.RoleMember, fund.Members[1].Role)
	suite.Equal("Bruno", fund.Members[1].Name)
	suite.NotEmpty(fund.Members[1].MemberID)
	suite.NotEqual(fund.Members[0].MemberID, fund.Members[1].MemberID)

	// The created fund must be readable back through the service.
	stored, err := suite.service.FindFundByID(ctx, fund.FundID)
	suite.Require().NoError(err)
	suite.Equal(fund.Name, stored.Name)
}

func (suite *FundServiceTestSuite) TestCreateFund_ExplicitCreatorName() {
	ctx := context.Background()
	req := dto.CreateFundRequest{
		Name:        "Viagem",
		Description: "Fundo da viagem de julho",
		CreatorName: "Renata",
	}

	fund, err := suite.service.CreateFund(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(fund.Members, 1)
	suite.Equal("Renata", fund.Members[0].Name)
	suite.Equal(domain.RoleAdmin, fund.Members[0].Role)
}

func (suite *FundServiceTestSuite) TestCreateFund_BlankName() {
	ctx := context.Background()
	req := dto.CreateFundRequest{
		Name:        "   ",
		Description: "desc",
	}

	fund, err := suite.service.CreateFund(ctx, req)

	suite.Require().Error(err)
	suite.Nil(fund)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundServiceTestSuite) TestCreateFund_EmptyMemberName() {
	ctx := context.Background()
	req := dto.CreateFundRequest{
		Name:        "Fundo",
		Description: "desc",
		MemberNames: []string{"Bruno", "  "},
	}

	_, err := suite.service.CreateFund(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundServiceTestSuite) TestCreateFund_DuplicateMemberName() {
	ctx := context.Background()
	req := dto.CreateFundRequest{
		Name:        "Fundo",
		Description: "desc",
		MemberNames: []string{"Bruno", "Bruno"},
	}

	_, err := suite.service.CreateFund(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundServiceTestSuite) TestDepositToFund_Success() {
	ctx := context.Background()
	req := dto.DepositRequest{
		Amount:      decimal.NewFromInt(100),
		Description: "Aporte de Lucas",
	}

	fund, err := suite.service.DepositToFund(ctx, "1", req)

	suite.Require().NoError(err)
	suite.True(fund.Balance.Equal(decimal.NewFromInt(5100)))
	suite.Require().Len(fund.History, 4)

	newest := fund.History[0]
	suite.Equal(domain.HistoryDeposit, newest.Type)
	suite.Equal("Aporte de Lucas", newest.Description)
	suite.True(newest.Value.Equal(decimal.NewFromInt(100)))
	suite.Equal("20/05/2023", newest.Date)
}

func (suite *FundServiceTestSuite) TestDepositToFund_SequenceAccumulates() {
	ctx := context.Background()

	_, err := suite.service.DepositToFund(ctx, "2", dto.DepositRequest{
		Amount: decimal.NewFromInt(50), Description: "Aporte de Rafael",
	})
	suite.Require().NoError(err)

	fund, err := suite.service.DepositToFund(ctx, "2", dto.DepositRequest{
		Amount: decimal.RequireFromString("25.50"), Description: "Aporte de Juliana",
	})
	suite.Require().NoError(err)

	suite.True(fund.Balance.Equal(decimal.RequireFromString("575.50")))
	suite.Require().Len(fund.History, 4)
	suite.Equal("Aporte de Juliana", fund.History[0].Description)
	suite.Equal("Aporte de Rafael", fund.History[1].Description)
}

func (suite *FundServiceTestSuite) TestDepositToFund_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.NewFromInt(-5), decimal.Zero} {
		_, err := suite.service.DepositToFund(ctx, "1", dto.DepositRequest{
			Amount: amount, Description: "Aporte inválido",
		})
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	// A rejected deposit must leave the fund untouched.
	fund, err := suite.service.FindFundByID(ctx, "1")
	suite.Require().NoError(err)
	suite.True(fund.Balance.Equal(decimal.NewFromInt(5000)))
	suite.Len(fund.History, 3)
}

func (suite *FundServiceTestSuite) TestDepositToFund_UnknownFund() {
	ctx := context.Background()

	_, err := suite.service.DepositToFund(ctx, "missing", dto.DepositRequest{
		Amount: decimal.NewFromInt(10), Description: "Aporte",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FundServiceTestSuite) TestRequestCapital_Success() {
	ctx := context.Background()
	req := dto.CapitalRequest{
		Amount:        decimal.NewFromInt(250),
		Description:   "Compra de rede nova",
		RepaymentDate: "30/06/2023",
	}

	approval, err := suite.service.RequestCapital(ctx, "1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(approval)
	suite.Equal(domain.ApprovalPending, approval.Status)
	suite.Require().NotNil(approval.Value)
	suite.True(approval.Value.Equal(decimal.NewFromInt(250)))

	fund, err := suite.service.FindFundByID(ctx, "1")
	suite.Require().NoError(err)
	suite.Require().Len(fund.Approvals, 3)
	suite.Equal(approval.ApprovalID, fund.Approvals[0].ApprovalID)
	// Queuing a request never touches the balance.
	suite.True(fund.Balance.Equal(decimal.NewFromInt(5000)))
}

func (suite *FundServiceTestSuite) TestRequestCapital_RepaymentDateNotInFuture() {
	ctx := context.Background()

	for _, date := range []string{"20/05/2023", "19/05/2023"} {
		_, err := suite.service.RequestCapital(ctx, "1", dto.CapitalRequest{
			Amount:        decimal.NewFromInt(250),
			Description:   "Compra de rede nova",
			RepaymentDate: date,
		})
		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *FundServiceTestSuite) TestApproveApproval_MonetaryDisburses() {
	ctx := context.Background()

	approval, err := suite.service.ApproveApproval(ctx, "1", "1")

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalApproved, approval.Status)

	fund, err := suite.service.FindFundByID(ctx, "1")
	suite.Require().NoError(err)
	suite.True(fund.Balance.Equal(decimal.NewFromInt(4650)), "balance must drop by the approved amount")

	suite.Require().Len(fund.History, 4)
	withdrawal := fund.History[0]
	suite.Equal(domain.HistoryWithdrawal, withdrawal.Type)
	suite.Equal("Compra de bolas", withdrawal.Description)
	suite.True(withdrawal.Value.Equal(decimal.NewFromInt(-350)))
}

func (suite *FundServiceTestSuite) TestApproveApproval_GovernanceLeavesBalance() {
	ctx := context.Background()

	approval, err := suite.service.ApproveApproval(ctx, "2", "3")

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalApproved, approval.Status)
	suite.Nil(approval.Value)

	fund, err := suite.service.FindFundByID(ctx, "2")
	suite.Require().NoError(err)
	suite.True(fund.Balance.Equal(decimal.NewFromInt(500)))
	suite.Len(fund.History, 2)
}

func (suite *FundServiceTestSuite) TestRejectApproval_LeavesBalance() {
	ctx := context.Background()

	approval, err := suite.service.RejectApproval(ctx, "1", "2")

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalRejected, approval.Status)

	fund, err := suite.service.FindFundByID(ctx, "1")
	suite.Require().NoError(err)
	suite.True(fund.Balance.Equal(decimal.NewFromInt(5000)))
	suite.Len(fund.History, 3)
}

func (suite *FundServiceTestSuite) TestSettleApproval_IsOneShot() {
	ctx := context.Background()

	_, err := suite.service.RejectApproval(ctx, "1", "1")
	suite.Require().NoError(err)

	_, err = suite.service.ApproveApproval(ctx, "1", "1")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)

	// The failed second settlement must not have disbursed anything.
	fund, err := suite.service.FindFundByID(ctx, "1")
	suite.Require().NoError(err)
	suite.True(fund.Balance.Equal(decimal.NewFromInt(5000)))
	suite.Equal(domain.ApprovalRejected, fund.Approvals[0].Status)
}

func (suite *FundServiceTestSuite) TestSettleApproval_UnknownApproval() {
	ctx := context.Background()

	_, err := suite.service.ApproveApproval(ctx, "1", "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestFundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundServiceTestSuite))
}
