package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/dto"
	"github.com/caixinha-app/caixinha_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// navigationHandler exposes the navigation state machine over HTTP.
type navigationHandler struct {
	navigation portssvc.NavigationSvcFacade
}

// newNavigationHandler creates a new navigationHandler.
func newNavigationHandler(ns portssvc.NavigationSvcFacade) *navigationHandler {
	return &navigationHandler{navigation: ns}
}

// registerNavigationRoutes registers the navigation transition routes.
func registerNavigationRoutes(rg *gin.RouterGroup, navigation portssvc.NavigationSvcFacade) {
	h := newNavigationHandler(navigation)

	nav := rg.Group("/navigation")
	{
		nav.GET("", h.state)
		nav.POST("/go-to-fund", h.goToFund)
		nav.POST("/go-home", h.goHome)
		nav.POST("/go-to-account", h.goToAccount)
		nav.POST("/fund-tab", h.selectFundTab)
		nav.POST("/account-tab", h.selectAccountTab)
		nav.POST("/sheet/open", h.openSheet)
		nav.POST("/sheet/advance", h.advanceSheet)
		nav.POST("/sheet/retreat", h.retreatSheet)
		nav.POST("/sheet/close", h.closeSheet)
	}
}

// state godoc
// @Summary Current navigation state
// @Tags navigation
// @Produce json
// @Success 200 {object} dto.NavigationStateResponse
// @Router /navigation [get]
func (h *navigationHandler) state(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(h.navigation.State(c.Request.Context())))
}

// goToFund godoc
// @Summary Open the fund-detail screen for a fund
// @Tags navigation
// @Accept json
// @Produce json
// @Param target body dto.GoToFundRequest true "Target fund"
// @Success 200 {object} dto.NavigationStateResponse
// @Failure 404 {object} map[string]string "Fund not found"
// @Router /navigation/go-to-fund [post]
func (h *navigationHandler) goToFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoToFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GoToFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.navigation.GoToFund(c.Request.Context(), req.FundID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to navigate to fund")
		return
	}
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(state))
}

func (h *navigationHandler) goHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(h.navigation.GoHome(c.Request.Context())))
}

func (h *navigationHandler) goToAccount(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(h.navigation.GoToAccount(c.Request.Context())))
}

func (h *navigationHandler) selectFundTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SelectFundTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectFundTab", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.navigation.SelectFundTab(c.Request.Context(), req.Tab)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to select fund tab")
		return
	}
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(state))
}

func (h *navigationHandler) selectAccountTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SelectAccountTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectAccountTab", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.navigation.SelectAccountTab(c.Request.Context(), req.Tab)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to select account tab")
		return
	}
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(state))
}

// openSheet godoc
// @Summary Open a modal sheet
// @Description Opens a sheet at its initial step; a target fund jumps
// @Description deposit and capital-request sheets straight to details.
// @Tags navigation
// @Accept json
// @Produce json
// @Param sheet body dto.OpenSheetRequest true "Sheet kind and optional target fund"
// @Success 200 {object} dto.NavigationStateResponse
// @Failure 404 {object} map[string]string "Target fund not found"
// @Router /navigation/sheet/open [post]
func (h *navigationHandler) openSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpenSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenSheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.navigation.OpenSheet(c.Request.Context(), req.Kind, req.TargetFundID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to open sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(state))
}

func (h *navigationHandler) advanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdvanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdvanceSheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	state, err := h.navigation.AdvanceSheet(c.Request.Context(), req.TargetFundID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to advance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(state))
}

func (h *navigationHandler) retreatSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.navigation.RetreatSheet(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retreat sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(state))
}

func (h *navigationHandler) closeSheet(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToNavigationStateResponse(h.navigation.CloseSheet(c.Request.Context())))
}
