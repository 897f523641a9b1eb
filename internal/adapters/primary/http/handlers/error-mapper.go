package handlers

import (
	"errors"
	"net/http"

	"loan-approval-service/internal/adapters/primary/http/dto"
	"loan-approval-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ToValidationErrorResponse(verr))

	case errors.Is(err, domain.ErrUnknownGroupBy),
		errors.Is(err, domain.ErrUnknownFeature):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrScoringUnavailable),
		errors.Is(err, domain.ErrSnapshotUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
