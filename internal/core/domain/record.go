package domain

// ApplicationRecord is one applicant's 33 validated feature values, ready for
// scoring. Records are transient: built per prediction request, never stored.
type ApplicationRecord struct {
	Age                        float64 `json:"Age"`
	AnnualIncome               float64 `json:"AnnualIncome"`
	CreditScore                float64 `json:"CreditScore"`
	EmploymentStatus           string  `json:"EmploymentStatus"`
	EducationLevel             string  `json:"EducationLevel"`
	Experience                 float64 `json:"Experience"`
	LoanAmount                 float64 `json:"LoanAmount"`
	LoanDuration               float64 `json:"LoanDuration"`
	MaritalStatus              string  `json:"MaritalStatus"`
	NumberOfDependents         float64 `json:"NumberOfDependents"`
	HomeOwnershipStatus        string  `json:"HomeOwnershipStatus"`
	MonthlyDebtPayments        float64 `json:"MonthlyDebtPayments"`
	CreditCardUtilizationRate  float64 `json:"CreditCardUtilizationRate"`
	NumberOfOpenCreditLines    float64 `json:"NumberOfOpenCreditLines"`
	NumberOfCreditInquiries    float64 `json:"NumberOfCreditInquiries"`
	DebtToIncomeRatio          float64 `json:"DebtToIncomeRatio"`
	BankruptcyHistory          float64 `json:"BankruptcyHistory"`
	LoanPurpose                string  `json:"LoanPurpose"`
	PreviousLoanDefaults       float64 `json:"PreviousLoanDefaults"`
	PaymentHistory             float64 `json:"PaymentHistory"`
	LengthOfCreditHistory      float64 `json:"LengthOfCreditHistory"`
	SavingsAccountBalance      float64 `json:"SavingsAccountBalance"`
	CheckingAccountBalance     float64 `json:"CheckingAccountBalance"`
	TotalAssets                float64 `json:"TotalAssets"`
	TotalLiabilities           float64 `json:"TotalLiabilities"`
	MonthlyIncome              float64 `json:"MonthlyIncome"`
	UtilityBillsPaymentHistory float64 `json:"UtilityBillsPaymentHistory"`
	JobTenure                  float64 `json:"JobTenure"`
	NetWorth                   float64 `json:"NetWorth"`
	BaseInterestRate           float64 `json:"BaseInterestRate"`
	InterestRate               float64 `json:"InterestRate"`
	MonthlyLoanPayment         float64 `json:"MonthlyLoanPayment"`
	TotalDebtToIncomeRatio     float64 `json:"TotalDebtToIncomeRatio"`
}

// Numeric returns the value of a numeric feature by canonical name.
func (r *ApplicationRecord) Numeric(name string) (float64, bool) {
	switch name {
	case "Age":
		return r.Age, true
	case "AnnualIncome":
		return r.AnnualIncome, true
	case "CreditScore":
		return r.CreditScore, true
	case "Experience":
		return r.Experience, true
	case "LoanAmount":
		return r.LoanAmount, true
	case "LoanDuration":
		return r.LoanDuration, true
	case "NumberOfDependents":
		return r.NumberOfDependents, true
	case "MonthlyDebtPayments":
		return r.MonthlyDebtPayments, true
	case "CreditCardUtilizationRate":
		return r.CreditCardUtilizationRate, true
	case "NumberOfOpenCreditLines":
		return r.NumberOfOpenCreditLines, true
	case "NumberOfCreditInquiries":
		return r.NumberOfCreditInquiries, true
	case "DebtToIncomeRatio":
		return r.DebtToIncomeRatio, true
	case "BankruptcyHistory":
		return r.BankruptcyHistory, true
	case "PreviousLoanDefaults":
		return r.PreviousLoanDefaults, true
	case "PaymentHistory":
		return r.PaymentHistory, true
	case "LengthOfCreditHistory":
		return r.LengthOfCreditHistory, true
	case "SavingsAccountBalance":
		return r.SavingsAccountBalance, true
	case "CheckingAccountBalance":
		return r.CheckingAccountBalance, true
	case "TotalAssets":
		return r.TotalAssets, true
	case "TotalLiabilities":
		return r.TotalLiabilities, true
	case "MonthlyIncome":
		return r.MonthlyIncome, true
	case "UtilityBillsPaymentHistory":
		return r.UtilityBillsPaymentHistory, true
	case "JobTenure":
		return r.JobTenure, true
	case "NetWorth":
		return r.NetWorth, true
	case "BaseInterestRate":
		return r.BaseInterestRate, true
	case "InterestRate":
		return r.InterestRate, true
	case "MonthlyLoanPayment":
		return r.MonthlyLoanPayment, true
	case "TotalDebtToIncomeRatio":
		return r.TotalDebtToIncomeRatio, true
	}
	return 0, false
}

// Categorical returns the value of a categorical feature by canonical name.
func (r *ApplicationRecord) Categorical(name string) (string, bool) {
	switch name {
	case "EmploymentStatus":
		return r.EmploymentStatus, true
	case "EducationLevel":
		return r.EducationLevel, true
	case "MaritalStatus":
		return r.MaritalStatus, true
	case "HomeOwnershipStatus":
		return r.HomeOwnershipStatus, true
	case "LoanPurpose":
		return r.LoanPurpose, true
	}
	return "", false
}

func (r *ApplicationRecord) setNumeric(name string, v float64) {
	switch name {
	case "Age":
		r.Age = v
	case "AnnualIncome":
		r.AnnualIncome = v
	case "CreditScore":
		r.CreditScore = v
	case "Experience":
		r.Experience = v
	case "LoanAmount":
		r.LoanAmount = v
	case "LoanDuration":
		r.LoanDuration = v
	case "NumberOfDependents":
		r.NumberOfDependents = v
	case "MonthlyDebtPayments":
		r.MonthlyDebtPayments = v
	case "CreditCardUtilizationRate":
		r.CreditCardUtilizationRate = v
	case "NumberOfOpenCreditLines":
		r.NumberOfOpenCreditLines = v
	case "NumberOfCreditInquiries":
		r.NumberOfCreditInquiries = v
	case "DebtToIncomeRatio":
		r.DebtToIncomeRatio = v
	case "BankruptcyHistory":
		r.BankruptcyHistory = v
	case "PreviousLoanDefaults":
		r.PreviousLoanDefaults = v
	case "PaymentHistory":
		r.PaymentHistory = v
	case "LengthOfCreditHistory":
		r.LengthOfCreditHistory = v
	case "SavingsAccountBalance":
		r.SavingsAccountBalance = v
	case "CheckingAccountBalance":
		r.CheckingAccountBalance = v
	case "TotalAssets":
		r.TotalAssets = v
	case "TotalLiabilities":
		r.TotalLiabilities = v
	case "MonthlyIncome":
		r.MonthlyIncome = v
	case "UtilityBillsPaymentHistory":
		r.UtilityBillsPaymentHistory = v
	case "JobTenure":
		r.JobTenure = v
	case "NetWorth":
		r.NetWorth = v
	case "BaseInterestRate":
		r.BaseInterestRate = v
	case "InterestRate":
		r.InterestRate = v
	case "MonthlyLoanPayment":
		r.MonthlyLoanPayment = v
	case "TotalDebtToIncomeRatio":
		r.TotalDebtToIncomeRatio = v
	}
}

func (r *ApplicationRecord) setCategorical(name, v string) {
	switch name {
	case "EmploymentStatus":
		r.EmploymentStatus = v
	case "EducationLevel":
		r.EducationLevel = v
	case "MaritalStatus":
		r.MaritalStatus = v
	case "HomeOwnershipStatus":
		r.HomeOwnershipStatus = v
	case "LoanPurpose":
		r.LoanPurpose = v
	}
}
