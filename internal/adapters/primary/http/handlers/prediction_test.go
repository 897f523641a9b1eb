package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loan-approval-service/internal/adapters/primary/http/dto"
	"loan-approval-service/internal/testutil"
)

func TestGetSchema(t *testing.T) {
	r := setupAPI(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/schema", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SchemaResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Features, 33)
	assert.Equal(t, "Age", resp.Features[0].Name)
	assert.Equal(t, "numeric", resp.Features[0].Kind)
}

func TestCreatePrediction(t *testing.T) {
	scorer := new(testutil.MockScorer)
	scorer.On("Score", mock.Anything, mock.Anything).Return(0.82, nil)
	r := setupAPI(scorer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/predictions", testutil.ValidApplication())

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PredictionResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.Approved)
	assert.Equal(t, "approved", resp.Decision)
	assert.Equal(t, 0.82, resp.Probability)
	assert.Equal(t, "82.0%", resp.ProbabilityDisplay)
	assert.Equal(t, 0.5, resp.Threshold)
	assert.Len(t, resp.Factors, 4)
}

func TestCreatePredictionRejection(t *testing.T) {
	scorer := new(testutil.MockScorer)
	scorer.On("Score", mock.Anything, mock.Anything).Return(0.12, nil)
	r := setupAPI(scorer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/predictions", testutil.ValidApplication())

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.PredictionResponse
	decodeBody(t, w, &resp)
	assert.False(t, resp.Approved)
	assert.Equal(t, "rejected", resp.Decision)
}

func TestCreatePredictionValidationFailure(t *testing.T) {
	scorer := new(testutil.MockScorer)
	r := setupAPI(scorer, nil)

	raw := testutil.ValidApplication()
	raw["Age"] = 17.0
	raw["EmploymentStatus"] = "Retired"

	w := doJSON(t, r, http.MethodPost, "/api/v1/predictions", raw)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Violations, 2)
	assert.Equal(t, "Age", resp.Violations[0].Field)
	assert.Equal(t, "EmploymentStatus", resp.Violations[1].Field)
	scorer.AssertNotCalled(t, "Score")
}

func TestCreatePredictionMalformedBody(t *testing.T) {
	r := setupAPI(new(testutil.MockScorer), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePredictionScoringUnavailable(t *testing.T) {
	r := setupAPI(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/predictions", testutil.ValidApplication())

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Contains(t, resp["error"], "not available")
}

func TestCreatePredictionScorerFault(t *testing.T) {
	scorer := new(testutil.MockScorer)
	scorer.On("Score", mock.Anything, mock.Anything).Return(0.0, assert.AnError)
	r := setupAPI(scorer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/predictions", testutil.ValidApplication())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "internal server error", resp["error"])
}

func TestDeriveFinancials(t *testing.T) {
	r := setupAPI(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/applications/derive", dto.DeriveRequest{
		AnnualIncome:        60000,
		MonthlyDebtPayments: 400,
		TotalAssets:         150000,
		TotalLiabilities:    60000,
		CreditScore:         700,
		BaseInterestRate:    6.5,
		LoanAmount:          25000,
		LoanDuration:        36,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.DeriveResponse
	decodeBody(t, w, &resp)
	assert.InDelta(t, 5000.0, resp.MonthlyIncome, 1e-9)
	assert.InDelta(t, 0.08, resp.DebtToIncomeRatio, 1e-9)
	assert.InDelta(t, 90000.0, resp.NetWorth, 1e-9)
	assert.InDelta(t, 6.5, resp.InterestRate, 1e-9)
}

func TestDeriveFinancialsValidationFailure(t *testing.T) {
	r := setupAPI(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/applications/derive", dto.DeriveRequest{
		AnnualIncome: 0,
		CreditScore:  650,
		LoanAmount:   25000,
		LoanDuration: 36,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Violations)
	assert.Equal(t, "AnnualIncome", resp.Violations[0].Field)
}
