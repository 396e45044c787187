package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondSuccess writes the uniform success envelope: {"success":true, ...payload}.
func respondSuccess(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondError maps a service error to its HTTP status and writes the
// uniform failure envelope: {"success":false, "error":"..."}.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status int
	message := err.Error()
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrNoOpenRegister):
		status = http.StatusPreconditionFailed
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	default:
		// Storage or other unexpected failure: log the detail, hide it
		// from the client.
		status = http.StatusInternalServerError
		message = "Internal server error"
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
	}

	if status != http.StatusInternalServerError {
		logger.Warn("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondBindError writes the failure envelope for a malformed request body
// or query string.
func respondBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format: " + err.Error()})
}
