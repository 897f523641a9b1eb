package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loan-approval-service/internal/core/domain"
)

// MockScorer is a testify mock of the scoring-artifact port.
type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Score(ctx context.Context, rec *domain.ApplicationRecord) (float64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(float64), args.Error(1)
}

// MockSnapshot is a testify mock of the dataset-snapshot port.
type MockSnapshot struct {
	mock.Mock
}

func (m *MockSnapshot) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockSnapshot) Overview() domain.Overview {
	args := m.Called()
	return args.Get(0).(domain.Overview)
}

func (m *MockSnapshot) ApprovalRateBy(feature string) ([]domain.GroupRate, error) {
	args := m.Called(feature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupRate), args.Error(1)
}

func (m *MockSnapshot) Distribution(feature string, bins int) (*domain.Distribution, error) {
	args := m.Called(feature, bins)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

func (m *MockSnapshot) FinancialPatterns(sampleSize int) *domain.FinancialPatterns {
	args := m.Called(sampleSize)
	return args.Get(0).(*domain.FinancialPatterns)
}

func (m *MockSnapshot) Correlations() []domain.Correlation {
	args := m.Called()
	return args.Get(0).([]domain.Correlation)
}
