package handlers

import (
	"net/http"

	"loan-approval-service/internal/adapters/primary/http/dto"
	"loan-approval-service/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSchemaResponse(domain.Schema()))
}

func (h *Handler) CreatePrediction(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.predictionSvc.Predict(c.Request.Context(), raw)
	if err != nil {
		if _, ok := err.(*domain.ValidationError); !ok {
			log.WithError(err).Error("prediction failed")
		}
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(result))
}

func (h *Handler) DeriveFinancials(c *gin.Context) {
	var req dto.DeriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	derived, err := h.predictionSvc.Derive(req.ToLoanTerms())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeriveResponse(derived))
}
