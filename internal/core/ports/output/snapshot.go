package ports

import "loan-approval-service/internal/core/domain"

// Snapshot is the read-only view over the historical dataset. Implementations
// are immutable after load and safe for concurrent reads.
type Snapshot interface {
	Len() int
	Overview() domain.Overview
	ApprovalRateBy(feature string) ([]domain.GroupRate, error)
	Distribution(feature string, bins int) (*domain.Distribution, error)
	FinancialPatterns(sampleSize int) *domain.FinancialPatterns
	Correlations() []domain.Correlation
}
