package handlers

import (
	"loan-approval-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictionSvc *services.PredictionService
	analyticsSvc  *services.AnalyticsService
}

func New(predictionSvc *services.PredictionService, analyticsSvc *services.AnalyticsService) *Handler {
	return &Handler{
		predictionSvc: predictionSvc,
		analyticsSvc:  analyticsSvc,
	}
}

func (h *Handler) RegisterAPI(r *gin.RouterGroup) {
	r.GET("/schema", h.GetSchema)
	r.POST("/predictions", h.CreatePrediction)
	r.POST("/applications/derive", h.DeriveFinancials)

	r.GET("/analytics/overview", h.GetOverview)
	r.GET("/analytics/approval-rates", h.GetApprovalRates)
	r.GET("/analytics/distributions", h.GetDistribution)
	r.GET("/analytics/financial", h.GetFinancialPatterns)
	r.GET("/analytics/correlations", h.GetCorrelations)
}

func (h *Handler) RegisterPages(r *gin.Engine) {
	r.GET("/", h.HomePage)
	r.GET("/eda", h.EDAPage)
	r.GET("/prediction", h.PredictionPage)
	r.GET("/presentation", h.PresentationPage)
}
