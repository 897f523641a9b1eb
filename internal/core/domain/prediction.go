package domain

import "fmt"

// PredictionResult is the probability and derived decision for one record.
// Immutable once produced; its lifetime is one request.
type PredictionResult struct {
	Approved    bool
	Probability float64
	Threshold   float64
	Factors     []Factor
}

func (r *PredictionResult) Decision() string {
	if r.Approved {
		return "approved"
	}
	return "rejected"
}

// Factor is one headline metric shown alongside a decision.
type Factor struct {
	Name       string
	Value      string
	Assessment string
}

// SummarizeFactors picks the headline metrics the decision view highlights.
func SummarizeFactors(rec *ApplicationRecord) []Factor {
	creditAssessment := "Fair"
	if rec.CreditScore >= 600 {
		creditAssessment = "Good"
	}

	dtiAssessment := "High"
	if rec.DebtToIncomeRatio < 0.36 {
		dtiAssessment = "Good"
	}

	netWorthAssessment := "Negative"
	if rec.NetWorth > 0 {
		netWorthAssessment = "Positive"
	}

	return []Factor{
		{Name: "Credit Score", Value: fmt.Sprintf("%.0f", rec.CreditScore), Assessment: creditAssessment},
		{Name: "Debt-to-Income", Value: fmt.Sprintf("%.1f%%", rec.DebtToIncomeRatio*100), Assessment: dtiAssessment},
		{Name: "Net Worth", Value: fmt.Sprintf("$%.0f", rec.NetWorth), Assessment: netWorthAssessment},
		{Name: "Monthly Payment", Value: fmt.Sprintf("$%.2f", rec.MonthlyLoanPayment)},
	}
}
