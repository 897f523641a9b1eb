package domain

import "math"

// LoanTerms are the base inputs a form client collects; the remaining
// financial features are derived from them.
type LoanTerms struct {
	AnnualIncome        float64
	MonthlyDebtPayments float64
	TotalAssets         float64
	TotalLiabilities    float64
	CreditScore         float64
	BaseInterestRate    float64
	LoanAmount          float64
	LoanDuration        float64
}

// DerivedFinancials are the computed features that complete a record.
type DerivedFinancials struct {
	MonthlyIncome          float64
	DebtToIncomeRatio      float64
	TotalDebtToIncomeRatio float64
	NetWorth               float64
	InterestRate           float64
	MonthlyLoanPayment     float64
}

// DeriveFinancials computes the derived features from base loan terms. The
// adjusted rate adds half a point per hundred score points below 700, and the
// payment follows the standard annuity formula. Rates are percentages.
func DeriveFinancials(t LoanTerms) (*DerivedFinancials, error) {
	verr := &ValidationError{}
	if t.AnnualIncome <= 0 {
		verr.add("AnnualIncome", "must be greater than zero")
	}
	if t.MonthlyDebtPayments < 0 {
		verr.add("MonthlyDebtPayments", "must be at least 0")
	}
	if t.TotalAssets < 0 {
		verr.add("TotalAssets", "must be at least 0")
	}
	if t.TotalLiabilities < 0 {
		verr.add("TotalLiabilities", "must be at least 0")
	}
	if t.CreditScore < 300 || t.CreditScore > 850 {
		verr.add("CreditScore", "must be between 300 and 850")
	}
	if t.BaseInterestRate < 0 || t.BaseInterestRate > 100 {
		verr.add("BaseInterestRate", "must be between 0 and 100")
	}
	if t.LoanAmount <= 0 {
		verr.add("LoanAmount", "must be greater than zero")
	}
	if t.LoanDuration <= 0 {
		verr.add("LoanDuration", "must be greater than zero")
	}
	if len(verr.Violations) > 0 {
		return nil, verr
	}

	monthlyIncome := t.AnnualIncome / 12
	rate := t.BaseInterestRate + (700-t.CreditScore)/100*0.5

	return &DerivedFinancials{
		MonthlyIncome:          monthlyIncome,
		DebtToIncomeRatio:      t.MonthlyDebtPayments / monthlyIncome,
		TotalDebtToIncomeRatio: t.MonthlyDebtPayments * 12 / t.AnnualIncome,
		NetWorth:               t.TotalAssets - t.TotalLiabilities,
		InterestRate:           rate,
		MonthlyLoanPayment:     annuityPayment(t.LoanAmount, rate, t.LoanDuration),
	}, nil
}

func annuityPayment(amount, annualRatePct, months float64) float64 {
	monthlyRate := annualRatePct / 100 / 12
	if monthlyRate == 0 {
		return amount / months
	}
	growth := math.Pow(1+monthlyRate, months)
	return amount * monthlyRate * growth / (growth - 1)
}
