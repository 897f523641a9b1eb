package services

import (
	"context"

	"loan-approval-service/internal/core/domain"
	ports "loan-approval-service/internal/core/ports/output"
)

const (
	defaultBins   = 30
	minBins       = 5
	maxBins       = 100
	scatterSample = 500
)

// AnalyticsService answers descriptive queries over the dataset snapshot.
// All queries are pure reads; a nil snapshot means the dataset file was
// missing at startup and every query reports ErrSnapshotUnavailable.
type AnalyticsService struct {
	snap ports.Snapshot
}

func NewAnalyticsService(snap ports.Snapshot) *AnalyticsService {
	return &AnalyticsService{snap: snap}
}

func (s *AnalyticsService) Available() bool { return s.snap != nil }

func (s *AnalyticsService) Overview(_ context.Context) (*domain.Overview, error) {
	if s.snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	o := s.snap.Overview()
	return &o, nil
}

func (s *AnalyticsService) ApprovalRates(_ context.Context, by string) ([]domain.GroupRate, error) {
	if s.snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	if by == "" {
		by = "EmploymentStatus"
	}
	return s.snap.ApprovalRateBy(by)
}

func (s *AnalyticsService) Distribution(_ context.Context, feature string, bins int) (*domain.Distribution, error) {
	if s.snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	if bins == 0 {
		bins = defaultBins
	} else if bins < minBins {
		bins = minBins
	} else if bins > maxBins {
		bins = maxBins
	}
	return s.snap.Distribution(feature, bins)
}

func (s *AnalyticsService) FinancialPatterns(_ context.Context) (*domain.FinancialPatterns, error) {
	if s.snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	return s.snap.FinancialPatterns(scatterSample), nil
}

func (s *AnalyticsService) Correlations(_ context.Context) ([]domain.Correlation, error) {
	if s.snap == nil {
		return nil, domain.ErrSnapshotUnavailable
	}
	return s.snap.Correlations(), nil
}
