package dto

import (
	"fmt"

	"loan-approval-service/internal/core/domain"
)

type FactorResponse struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	Assessment string `json:"assessment,omitempty"`
}

type PredictionResponse struct {
	Approved           bool             `json:"approved"`
	Decision           string           `json:"decision"`
	Probability        float64          `json:"probability"`
	ProbabilityDisplay string           `json:"probability_display"`
	Threshold          float64          `json:"threshold"`
	Factors            []FactorResponse `json:"factors"`
}

func ToPredictionResponse(r *domain.PredictionResult) PredictionResponse {
	factors := make([]FactorResponse, 0, len(r.Factors))
	for _, f := range r.Factors {
		factors = append(factors, FactorResponse{Name: f.Name, Value: f.Value, Assessment: f.Assessment})
	}
	return PredictionResponse{
		Approved:           r.Approved,
		Decision:           r.Decision(),
		Probability:        r.Probability,
		ProbabilityDisplay: fmt.Sprintf("%.1f%%", r.Probability*100),
		Threshold:          r.Threshold,
		Factors:            factors,
	}
}

type ValidationErrorResponse struct {
	Error      string                  `json:"error"`
	Violations []domain.FieldViolation `json:"violations"`
}

func ToValidationErrorResponse(err *domain.ValidationError) ValidationErrorResponse {
	return ValidationErrorResponse{
		Error:      "validation failed",
		Violations: err.Violations,
	}
}

type DeriveRequest struct {
	AnnualIncome        float64 `json:"AnnualIncome"`
	MonthlyDebtPayments float64 `json:"MonthlyDebtPayments"`
	TotalAssets         float64 `json:"TotalAssets"`
	TotalLiabilities    float64 `json:"TotalLiabilities"`
	CreditScore         float64 `json:"CreditScore"`
	BaseInterestRate    float64 `json:"BaseInterestRate"`
	LoanAmount          float64 `json:"LoanAmount"`
	LoanDuration        float64 `json:"LoanDuration"`
}

func (r DeriveRequest) ToLoanTerms() domain.LoanTerms {
	return domain.LoanTerms{
		AnnualIncome:        r.AnnualIncome,
		MonthlyDebtPayments: r.MonthlyDebtPayments,
		TotalAssets:         r.TotalAssets,
		TotalLiabilities:    r.TotalLiabilities,
		CreditScore:         r.CreditScore,
		BaseInterestRate:    r.BaseInterestRate,
		LoanAmount:          r.LoanAmount,
		LoanDuration:        r.LoanDuration,
	}
}

type DeriveResponse struct {
	MonthlyIncome          float64 `json:"MonthlyIncome"`
	DebtToIncomeRatio      float64 `json:"DebtToIncomeRatio"`
	TotalDebtToIncomeRatio float64 `json:"TotalDebtToIncomeRatio"`
	NetWorth               float64 `json:"NetWorth"`
	InterestRate           float64 `json:"InterestRate"`
	MonthlyLoanPayment     float64 `json:"MonthlyLoanPayment"`
}

func ToDeriveResponse(d *domain.DerivedFinancials) DeriveResponse {
	return DeriveResponse{
		MonthlyIncome:          d.MonthlyIncome,
		DebtToIncomeRatio:      d.DebtToIncomeRatio,
		TotalDebtToIncomeRatio: d.TotalDebtToIncomeRatio,
		NetWorth:               d.NetWorth,
		InterestRate:           d.InterestRate,
		MonthlyLoanPayment:     d.MonthlyLoanPayment,
	}
}

type FeatureResponse struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Integer    bool     `json:"integer,omitempty"`
	MultipleOf float64  `json:"multiple_of,omitempty"`
	Values     []string `json:"values,omitempty"`
}

type SchemaResponse struct {
	Features []FeatureResponse `json:"features"`
}

func ToSchemaResponse(features []domain.Feature) SchemaResponse {
	out := SchemaResponse{Features: make([]FeatureResponse, 0, len(features))}
	for _, f := range features {
		out.Features = append(out.Features, FeatureResponse{
			Name:       f.Name,
			Kind:       string(f.Kind),
			Min:        f.Min,
			Max:        f.Max,
			Integer:    f.Integer,
			MultipleOf: f.MultipleOf,
			Values:     f.Enum,
		})
	}
	return out
}
