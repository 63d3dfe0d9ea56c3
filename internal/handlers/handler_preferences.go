package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/caixinha-app/caixinha_backend/internal/core/ports/services"
	"github.com/caixinha-app/caixinha_backend/internal/dto"
	"github.com/caixinha-app/caixinha_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferencesHandler exposes the global display preferences.
type preferencesHandler struct {
	preferences portssvc.PreferencesSvc
}

// registerPreferenceRoutes registers the display preference routes.
func registerPreferenceRoutes(rg *gin.RouterGroup, preferences portssvc.PreferencesSvc) {
	h := &preferencesHandler{preferences: preferences}

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.get)
		prefs.PUT("/hide-values", h.setHideValues)
	}
}

// get godoc
// @Summary Current display preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Router /preferences [get]
func (h *preferencesHandler) get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PreferencesResponse{
		HideValues: h.preferences.HideValues(c.Request.Context()),
	})
}

// setHideValues godoc
// @Summary Toggle value masking
// @Description Sets whether monetary values are masked in responses.
// @Description Affects formatting only, never stored values.
// @Tags preferences
// @Accept json
// @Produce json
// @Param preference body dto.SetHideValuesRequest true "Masking preference"
// @Success 200 {object} dto.PreferencesResponse
// @Router /preferences/hide-values [put]
func (h *preferencesHandler) setHideValues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetHideValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetHideValues", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	hide := h.preferences.SetHideValues(c.Request.Context(), *req.HideValues)
	logger.Info("Hide-values preference updated", slog.Bool("hide_values", hide))
	c.JSON(http.StatusOK, dto.PreferencesResponse{HideValues: hide})
}
