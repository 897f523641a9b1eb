package handlers

import (
	"net/http"
	"strconv"

	"loan-approval-service/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.analyticsSvc.Overview(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

func (h *Handler) GetApprovalRates(c *gin.Context) {
	by := c.DefaultQuery("by", "EmploymentStatus")

	rates, err := h.analyticsSvc.ApprovalRates(c.Request.Context(), by)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApprovalRatesResponse(by, rates))
}

func (h *Handler) GetDistribution(c *gin.Context) {
	feature := c.Query("feature")
	if feature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feature query parameter is required"})
		return
	}
	bins, _ := strconv.Atoi(c.DefaultQuery("bins", "0"))

	dist, err := h.analyticsSvc.Distribution(c.Request.Context(), feature, bins)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDistributionResponse(dist))
}

func (h *Handler) GetFinancialPatterns(c *gin.Context) {
	patterns, err := h.analyticsSvc.FinancialPatterns(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialPatternsResponse(patterns))
}

func (h *Handler) GetCorrelations(c *gin.Context) {
	correlations, err := h.analyticsSvc.Correlations(c.Request.Context())
	if err != nil {
		log.WithError(err).Debug("correlations unavailable")
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCorrelationsResponse(correlations))
}
