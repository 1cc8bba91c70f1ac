package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/donation_tracker/internal/apperrors"
	"github.com/SscSPs/donation_tracker/internal/backup"
	"github.com/gin-gonic/gin"
)

// respondError maps store and repository errors onto status codes.
// Validation messages are shown to the user as is.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	if rule, ok := apperrors.RuleOf(err); ok {
		logger.Warn("Validation failed", slog.String("action", action), slog.String("rule", rule), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "rule": rule})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, backup.ErrUnsupported):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	default:
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
