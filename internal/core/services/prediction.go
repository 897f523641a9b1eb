package services

import (
	"context"
	"fmt"
	"time"

	"loan-approval-service/internal/core/domain"
	ports "loan-approval-service/internal/core/ports/output"
	"loan-approval-service/internal/metrics"
)

// PredictionService validates applicant input, hands it to the scoring
// artifact, and maps the probability to a decision.
type PredictionService struct {
	scorer    ports.Scorer
	threshold float64
}

// NewPredictionService wires a scorer and the decision threshold. A nil
// scorer means the artifact failed to load at startup; predictions then
// report ErrScoringUnavailable while the rest of the service keeps running.
func NewPredictionService(scorer ports.Scorer, threshold float64) *PredictionService {
	return &PredictionService{scorer: scorer, threshold: threshold}
}

func (s *PredictionService) Available() bool { return s.scorer != nil }

func (s *PredictionService) Threshold() float64 { return s.threshold }

// Predict builds a validated record from raw field values and scores it.
// Deterministic: identical input yields an identical result.
func (s *PredictionService) Predict(ctx context.Context, raw map[string]any) (*domain.PredictionResult, error) {
	if s.scorer == nil {
		return nil, domain.ErrScoringUnavailable
	}

	rec, err := domain.BuildRecord(raw)
	if err != nil {
		metrics.ValidationFailures.Inc()
		return nil, err
	}

	start := time.Now()
	p, err := s.scorer.Score(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("score record: %w", err)
	}
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())

	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	res := &domain.PredictionResult{
		Approved:    p >= s.threshold,
		Probability: p,
		Threshold:   s.threshold,
		Factors:     domain.SummarizeFactors(rec),
	}
	metrics.PredictionsTotal.WithLabelValues(res.Decision()).Inc()
	return res, nil
}

// Derive computes the dependent financial features from base loan terms so
// form clients can fill the full record before submitting it.
func (s *PredictionService) Derive(terms domain.LoanTerms) (*domain.DerivedFinancials, error) {
	return domain.DeriveFinancials(terms)
}
