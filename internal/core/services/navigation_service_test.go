package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/core/services"
	"github.com/caixinha-app/caixinha_backend/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type NavigationServiceTestSuite struct {
	suite.Suite
	service portssvc.NavigationSvcFacade
	prefs   portssvc.PreferencesSvc
}

func (suite *NavigationServiceTestSuite) SetupTest() {
	funds, debts := memory.SeedDemoData(time.Date(2023, 5, 20, 12, 0, 0, 0, time.UTC))
	store := memory.NewSeededStore(funds, debts)
	nav := services.NewNavigationService(memory.NewFundRepository(store))
	suite.service = nav
	suite.prefs = nav
}

// --- Test Cases ---

func (suite *NavigationServiceTestSuite) TestInitialState() {
	state := suite.service.State(context.Background())

	suite.Equal(domain.ScreenHome, state.ActiveScreen)
	suite.Empty(state.SelectedFundID)
	suite.Equal(domain.FundTabHistory, state.FundTab)
	suite.Equal(domain.AccountTabDebts, state.AccountTab)
	suite.Nil(state.Sheet)
}

func (suite *NavigationServiceTestSuite) TestGoToFund_ResetsFundTab() {
	ctx := context.Background()

	_, err := suite.service.SelectFundTab(ctx, domain.FundTabMembers)
	suite.Require().NoError(err)

	state, err := suite.service.GoToFund(ctx, "1")
	suite.Require().NoError(err)
	suite.Equal(domain.ScreenFundDetail, state.ActiveScreen)
	suite.Equal("1", state.SelectedFundID)
	suite.Equal(domain.FundTabHistory, state.FundTab, "entering a fund always lands on the history tab")
}

func (suite *NavigationServiceTestSuite) TestGoToFund_UnknownFund() {
	ctx := context.Background()

	state, err := suite.service.GoToFund(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(domain.ScreenHome, state.ActiveScreen)
	suite.Empty(state.SelectedFundID)
}

func (suite *NavigationServiceTestSuite) TestGoHome_ClearsSelection() {
	ctx := context.Background()

	_, err := suite.service.GoToFund(ctx, "2")
	suite.Require().NoError(err)

	state := suite.service.GoHome(ctx)
	suite.Equal(domain.ScreenHome, state.ActiveScreen)
	suite.Empty(state.SelectedFundID)
}

func (suite *NavigationServiceTestSuite) TestTabSelection_RejectsUnknownTabs() {
	ctx := context.Background()

	_, err := suite.service.SelectFundTab(ctx, domain.FundTab("settings"))
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SelectAccountTab(ctx, domain.AccountTab("profile"))
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *NavigationServiceTestSuite) TestAccountTab_Persists() {
	ctx := context.Background()

	state, err := suite.service.SelectAccountTab(ctx, domain.AccountTabMovements)
	suite.Require().NoError(err)
	suite.Equal(domain.AccountTabMovements, state.AccountTab)

	// Moving between screens leaves the account tab where it was.
	suite.service.GoToAccount(ctx)
	state = suite.service.State(ctx)
	suite.Equal(domain.ScreenAccount, state.ActiveScreen)
	suite.Equal(domain.AccountTabMovements, state.AccountTab)
}

func (suite *NavigationServiceTestSuite) TestOpenSheet_DepositStartsAtSelection() {
	ctx := context.Background()

	state, err := suite.service.OpenSheet(ctx, domain.SheetDeposit, "")

	suite.Require().NoError(err)
	suite.Require().NotNil(state.Sheet)
	suite.Equal(domain.SheetDeposit, state.Sheet.Kind)
	suite.Equal(domain.StepSelectFund, state.Sheet.Step)
	suite.Empty(state.Sheet.TargetFundID)
}

func (suite *NavigationServiceTestSuite) TestOpenSheet_PreselectedFundSkipsSelection() {
	ctx := context.Background()

	state, err := suite.service.OpenSheet(ctx, domain.SheetCapitalRequest, "1")

	suite.Require().NoError(err)
	suite.Require().NotNil(state.Sheet)
	suite.Equal(domain.StepDetails, state.Sheet.Step)
	suite.Equal("1", state.Sheet.TargetFundID)
}

func (suite *NavigationServiceTestSuite) TestOpenSheet_FundCreationIsSingleStep() {
	ctx := context.Background()

	state, err := suite.service.OpenSheet(ctx, domain.SheetFundCreation, "")
	suite.Require().NoError(err)
	suite.Equal(domain.StepDetails, state.Sheet.Step)

	_, err = suite.service.RetreatSheet(ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *NavigationServiceTestSuite) TestOpenSheet_UnknownKindOrFund() {
	ctx := context.Background()

	_, err := suite.service.OpenSheet(ctx, domain.SheetKind("transfer"), "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.OpenSheet(ctx, domain.SheetDeposit, "missing")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *NavigationServiceTestSuite) TestAdvanceAndRetreatSheet() {
	ctx := context.Background()

	_, err := suite.service.OpenSheet(ctx, domain.SheetDeposit, "")
	suite.Require().NoError(err)

	// Cannot continue without picking a fund.
	_, err = suite.service.AdvanceSheet(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	state, err := suite.service.AdvanceSheet(ctx, "2")
	suite.Require().NoError(err)
	suite.Equal(domain.StepDetails, state.Sheet.Step)
	suite.Equal("2", state.Sheet.TargetFundID)

	// Already at the last step.
	_, err = suite.service.AdvanceSheet(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)

	state, err = suite.service.RetreatSheet(ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.StepSelectFund, state.Sheet.Step)
}

func (suite *NavigationServiceTestSuite) TestAdvanceSheet_NoSheetOpen() {
	ctx := context.Background()

	_, err := suite.service.AdvanceSheet(ctx, "1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *NavigationServiceTestSuite) TestCloseSheet_DiscardsDraft() {
	ctx := context.Background()

	_, err := suite.service.OpenSheet(ctx, domain.SheetDeposit, "1")
	suite.Require().NoError(err)

	state := suite.service.CloseSheet(ctx)
	suite.Nil(state.Sheet)

	// Reopening starts fresh; the previous target is gone.
	state, err = suite.service.OpenSheet(ctx, domain.SheetDeposit, "")
	suite.Require().NoError(err)
	suite.Equal(domain.StepSelectFund, state.Sheet.Step)
	suite.Empty(state.Sheet.TargetFundID)

	// Closing with nothing open is a no-op.
	suite.service.CloseSheet(ctx)
	suite.Nil(suite.service.CloseSheet(ctx).Sheet)
}

func (suite *NavigationServiceTestSuite) TestHideValuesPreference() {
	ctx := context.Background()

	suite.False(suite.prefs.HideValues(ctx))
	suite.True(suite.prefs.SetHideValues(ctx, true))
	suite.True(suite.prefs.HideValues(ctx))
	suite.False(suite.prefs.SetHideValues(ctx, false))
}

func TestNavigationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NavigationServiceTestSuite))
}
