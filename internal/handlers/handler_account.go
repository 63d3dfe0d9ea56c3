package handlers

import (
	"net/http"

	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/dto"
	"github.com/caixinha-app/caixinha_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the user-scoped account views.
type accountHandler struct {
	debtService portssvc.DebtSvcFacade
	viewService portssvc.AccountViewSvc
	preferences portssvc.PreferencesSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(ds portssvc.DebtSvcFacade, vs portssvc.AccountViewSvc, ps portssvc.PreferencesSvc) *accountHandler {
	return &accountHandler{
		debtService: ds,
		viewService: vs,
		preferences: ps,
	}
}

// registerAccountRoutes registers routes for the account screen views.
// All of them are projections over the per-fund ledgers.
func registerAccountRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade, viewService portssvc.AccountViewSvc, preferences portssvc.PreferencesSvc) {
	h := newAccountHandler(debtService, viewService, preferences)

	account := rg.Group("/account")
	{
		account.GET("/debts", h.listDebts)
		account.GET("/movements", h.listMovements)
		account.GET("/approvals", h.listApprovals)
		account.GET("/summary", h.summary)
	}
}

// listDebts godoc
// @Summary List the user's outstanding debts
// @Tags account
// @Produce json
// @Success 200 {object} dto.ListDebtsResponse
// @Router /account/debts [get]
func (h *accountHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debts, err := h.debtService.ListUserDebts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list debts")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListDebtsResponse(debts, hide))
}

// listMovements godoc
// @Summary List the user's movements across all funds
// @Tags account
// @Produce json
// @Success 200 {object} dto.ListMovementsResponse
// @Router /account/movements [get]
func (h *accountHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	movements, err := h.viewService.ListUserMovements(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list movements")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements, hide))
}

// listApprovals godoc
// @Summary List the user's approvals across all funds
// @Tags account
// @Produce json
// @Success 200 {object} dto.ListApprovalsResponse
// @Router /account/approvals [get]
func (h *accountHandler) listApprovals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	approvals, err := h.viewService.ListUserApprovals(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list approvals")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListApprovalsResponse(approvals, hide))
}

// summary godoc
// @Summary Aggregate totals across all funds
// @Tags account
// @Produce json
// @Success 200 {object} dto.AccountSummaryResponse
// @Router /account/summary [get]
func (h *accountHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.viewService.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute summary")
		return
	}

	hide := h.preferences.HideValues(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(summary, hide))
}
