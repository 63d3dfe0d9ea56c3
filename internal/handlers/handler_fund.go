package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/dto"
	"github.com/caixinha-app/caixinha_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundHandler handles HTTP requests related to funds and their ledgers.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
	debtService portssvc.DebtSvcFacade
	preferences portssvc.PreferencesSvc
}

// newFundHandler creates a new fundHandler.
func newFundHandler(fs portssvc.FundSvcFacade, ds portssvc.DebtSvcFacade, ps portssvc.PreferencesSvc) *fundHandler {
	return &fundHandler{
		fundService: fs,
		debtService: ds,
		preferences: ps,
	}
}

// registerFundRoutes registers routes related to funds, their ledgers and
// approval queues.
func registerFundRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade, debtService portssvc.DebtSvcFacade, preferences portssvc.PreferencesSvc) {
	h := newFundHandler(fundService, debtService, preferences)

	funds := rg.Group("/funds")
	{
		funds.GET("", h.listFunds)
		funds.POST("", h.createFund)
	}

	fundSpecific := rg.Group("/funds/:fund_id")
	{
		fundSpecific.GET("", h.getFund)
		fundSpecific.POST("/deposits", h.deposit)
		fundSpecific.POST("/capital-requests", h.requestCapital)
		fundSpecific.POST("/approvals/:approval_id/approve", h.approveApproval)
		fundSpecific.POST("/approvals/:approval_id/reject", h.rejectApproval)
		fundSpecific.POST("/debts/:debt_id/payments", h.payDebt)
	}
}

// listFunds godoc
// @Summary List funds
// @Description Retrieves all funds with their members, history and approvals.
// @Tags funds
// @Produce json
// @Success 200 {object} dto.ListFundsResponse
// @Router /funds [get]
func (h *fundHandler) listFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	funds, err := h.fundService.ListFunds(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list funds")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListFundsResponse(funds, hide))
}

// createFund godoc
// @Summary Create a new fund
// @Description Creates a new collective fund with the submitter as Admin.
// @Tags funds
// @Accept json
// @Produce json
// @Param fund body dto.CreateFundRequest true "Fund details"
// @Success 201 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /funds [post]
func (h *fundHandler) createFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create fund", slog.String("fund_name", req.Name))

	fund, err := h.fundService.CreateFund(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fund")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusCreated, dto.ToFundResponse(fund, hide))
}

// getFund godoc
// @Summary Get fund detail
// @Tags funds
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Success 200 {object} dto.FundResponse
// @Failure 404 {object} map[string]string "Fund not found"
// @Router /funds/{fund_id} [get]
func (h *fundHandler) getFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fund_id")

	fund, err := h.fundService.FindFundByID(c.Request.Context(), fundID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get fund")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToFundResponse(fund, hide))
}

// deposit godoc
// @Summary Deposit into a fund
// @Description Records a deposit movement and grows the fund balance.
// @Tags funds
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param deposit body dto.DepositRequest true "Deposit details"
// @Success 201 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid amount or description"
// @Failure 404 {object} map[string]string "Fund not found"
// @Router /funds/{fund_id}/deposits [post]
func (h *fundHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fund_id")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fund, err := h.fundService.DepositToFund(c.Request.Context(), fundID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to deposit")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusCreated, dto.ToFundResponse(fund, hide))
}

// requestCapital godoc
// @Summary Request capital from a fund
// @Description Queues a pending capital request; disburses only on approval.
// @Tags funds
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param request body dto.CapitalRequest true "Capital request details"
// @Success 201 {object} dto.ApprovalItemResponse
// @Failure 400 {object} map[string]string "Invalid amount, description or repayment date"
// @Failure 404 {object} map[string]string "Fund not found"
// @Router /funds/{fund_id}/capital-requests [post]
func (h *fundHandler) requestCapital(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fund_id")

	var req dto.CapitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RequestCapital", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	approval, err := h.fundService.RequestCapital(c.Request.Context(), fundID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to request capital")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusCreated, dto.ToApprovalItemResponse(approval, hide))
}

// approveApproval godoc
// @Summary Approve a pending request
// @Description One-shot transition to approved; monetary requests disburse.
// @Tags approvals
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param approval_id path string true "Approval ID"
// @Success 200 {object} dto.ApprovalItemResponse
// @Failure 404 {object} map[string]string "Fund or approval not found"
// @Failure 409 {object} map[string]string "Approval already settled"
// @Router /funds/{fund_id}/approvals/{approval_id}/approve [post]
func (h *fundHandler) approveApproval(c *gin.Context) {
	h.settleApproval(c, h.fundService.ApproveApproval)
}

// rejectApproval godoc
// @Summary Reject a pending request
// @Description One-shot transition to rejected; the balance is untouched.
// @Tags approvals
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param approval_id path string true "Approval ID"
// @Success 200 {object} dto.ApprovalItemResponse
// @Failure 404 {object} map[string]string "Fund or approval not found"
// @Failure 409 {object} map[string]string "Approval already settled"
// @Router /funds/{fund_id}/approvals/{approval_id}/reject [post]
func (h *fundHandler) rejectApproval(c *gin.Context) {
	h.settleApproval(c, h.fundService.RejectApproval)
}

func (h *fundHandler) settleApproval(c *gin.Context, settle func(ctx context.Context, fundID, approvalID string) (*domain.ApprovalItem, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fund_id")
	approvalID := c.Param("approval_id")

	approval, err := settle(c.Request.Context(), fundID, approvalID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to settle approval")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToApprovalItemResponse(approval, hide))
}

// payDebt godoc
// @Summary Pay a debt in full
// @Description Settles an outstanding debt; the amount must match exactly.
// @Tags debts
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param debt_id path string true "Debt ID"
// @Param payment body dto.PayDebtRequest true "Payment details"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Amount mismatch"
// @Failure 404 {object} map[string]string "Debt or fund not found"
// @Router /funds/{fund_id}/debts/{debt_id}/payments [post]
func (h *fundHandler) payDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("fund_id")
	debtID := c.Param("debt_id")

	var req dto.PayDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.debtService.PayFundDebt(c.Request.Context(), fundID, debtID, req.Amount); err != nil {
		respondServiceError(c, logger, err, "Failed to pay debt")
		return
	}

	logger.Info("Debt paid successfully", slog.String("debt_id", debtID))
	c.Status(http.StatusNoContent)
}
