package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HomePage(c *gin.Context) {
	data := gin.H{
		"Active":           "home",
		"ScoringAvailable": h.predictionSvc.Available(),
		"DatasetAvailable": h.analyticsSvc.Available(),
	}
	if overview, err := h.analyticsSvc.Overview(c.Request.Context()); err == nil {
		data["Overview"] = overview
	}
	c.HTML(http.StatusOK, "home.html", data)
}

func (h *Handler) EDAPage(c *gin.Context) {
	c.HTML(http.StatusOK, "eda.html", gin.H{
		"Active":           "eda",
		"DatasetAvailable": h.analyticsSvc.Available(),
	})
}

func (h *Handler) PredictionPage(c *gin.Context) {
	c.HTML(http.StatusOK, "prediction.html", gin.H{
		"Active":           "prediction",
		"ScoringAvailable": h.predictionSvc.Available(),
		"Threshold":        h.predictionSvc.Threshold(),
	})
}

func (h *Handler) PresentationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "presentation.html", gin.H{
		"Active": "presentation",
	})
}
