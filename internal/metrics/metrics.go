package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_predictions_total",
			Help: "Total number of scored applications by decision",
		},
		[]string{"decision"},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "loan_prediction_duration_seconds",
			Help: "Duration of a single record scoring call",
		},
	)

	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "loan_validation_failures_total",
			Help: "Total number of applications rejected by schema validation",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "path", "status"},
	)
)
