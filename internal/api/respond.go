package api

import (
	"errors"
	"net/http"

	"fishmarket-be/internal/apperr"
	"fishmarket-be/internal/auth"
	"fishmarket-be/internal/logger"
	"fishmarket-be/internal/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Handlers never branch
// on error types themselves.
func respondError(c *gin.Context, err error) {
	var pf *order.PartialFailure
	if errors.As(err, &pf) {
		// Some order groups committed before the failure. 207 tells the
		// client to inspect the body rather than retry the whole cart.
		c.JSON(http.StatusMultiStatus, gin.H{
			"orders":           pf.Committed,
			"failed_farmer_id": pf.FailedFarmerID,
			"error":            "some order groups could not be placed",
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrUpstream):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		logger.FromCtx(c.Request.Context()).Error("unhandled service error", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
