package testutil

// ValidApplication returns raw submission fields that pass schema validation,
// describing a solid applicant. Tests mutate the copy to build their cases.
func ValidApplication() map[string]any {
	return map[string]any{
		"Age":                        35.0,
		"AnnualIncome":               60000.0,
		"CreditScore":                750.0,
		"EmploymentStatus":           "Employed",
		"EducationLevel":             "Bachelor",
		"Experience":                 10.0,
		"LoanAmount":                 25000.0,
		"LoanDuration":               36.0,
		"MaritalStatus":              "Married",
		"NumberOfDependents":         1.0,
		"HomeOwnershipStatus":        "Mortgage",
		"MonthlyDebtPayments":        400.0,
		"CreditCardUtilizationRate":  0.3,
		"NumberOfOpenCreditLines":    3.0,
		"NumberOfCreditInquiries":    1.0,
		"DebtToIncomeRatio":          0.2,
		"BankruptcyHistory":          0.0,
		"LoanPurpose":                "Auto",
		"PreviousLoanDefaults":       0.0,
		"PaymentHistory":             0.85,
		"LengthOfCreditHistory":      12.0,
		"SavingsAccountBalance":      10000.0,
		"CheckingAccountBalance":     5000.0,
		"TotalAssets":                150000.0,
		"TotalLiabilities":           60000.0,
		"MonthlyIncome":              5000.0,
		"UtilityBillsPaymentHistory": 0.9,
		"JobTenure":                  5.0,
		"NetWorth":                   90000.0,
		"BaseInterestRate":           6.5,
		"InterestRate":               6.25,
		"MonthlyLoanPayment":         769.07,
		"TotalDebtToIncomeRatio":     0.08,
	}
}
