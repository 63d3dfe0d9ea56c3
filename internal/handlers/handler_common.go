package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caixinha-app/caixinha_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error onto the HTTP taxonomy:
// validation -> 400, not found -> 404, conflict -> 409, otherwise 500.
// The caller's message is used for the opaque 500 case only; taxonomy
// errors surface their own text so the client can show it to the user.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Resource state conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
