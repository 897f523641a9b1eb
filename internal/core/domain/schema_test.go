package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() map[string]any {
	return map[string]any{
		"Age":                        35.0,
		"AnnualIncome":               60000.0,
		"CreditScore":                650.0,
		"EmploymentStatus":           "Employed",
		"EducationLevel":             "Bachelor",
		"Experience":                 10.0,
		"LoanAmount":                 25000.0,
		"LoanDuration":               36.0,
		"MaritalStatus":              "Married",
		"NumberOfDependents":         2.0,
		"HomeOwnershipStatus":        "Mortgage",
		"MonthlyDebtPayments":        400.0,
		"CreditCardUtilizationRate":  0.3,
		"NumberOfOpenCreditLines":    3.0,
		"NumberOfCreditInquiries":    1.0,
		"DebtToIncomeRatio":          0.08,
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
		"InterestRate":               6.75,
		"MonthlyLoanPayment":         768.91,
		"TotalDebtToIncomeRatio":     0.08,
	}
}

func TestSchemaShape(t *testing.T) {
	feats := Schema()
	assert.Len(t, feats, 33)

	numeric := 0
	categorical := 0
	for _, f := range feats {
		switch f.Kind {
		case FeatureNumeric:
			numeric++
		case FeatureCategorical:
			categorical++
			assert.NotEmpty(t, f.Enum, f.Name)
		}
	}
	assert.Equal(t, 28, numeric)
	assert.Equal(t, 5, categorical)
}

func TestBuildRecordValid(t *testing.T) {
	rec, err := BuildRecord(validRaw())

	require.NoError(t, err)
	assert.Equal(t, 650.0, rec.CreditScore)
	assert.Equal(t, "Employed", rec.EmploymentStatus)
	assert.Equal(t, 0.08, rec.DebtToIncomeRatio)
}

func TestBuildRecordIntegerInputs(t *testing.T) {
	raw := validRaw()
	raw["Age"] = 35
	raw["CreditScore"] = int64(650)

	rec, err := BuildRecord(raw)

	require.NoError(t, err)
	assert.Equal(t, 35.0, rec.Age)
}

func TestBuildRecordViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(raw map[string]any)
		field   string
		message string
	}{
		{
			name:    "age below minimum",
			mutate:  func(raw map[string]any) { raw["Age"] = 17.0 },
			field:   "Age",
			message: "must be at least 18",
		},
		{
			name:    "credit score above maximum",
			mutate:  func(raw map[string]any) { raw["CreditScore"] = 900.0 },
			field:   "CreditScore",
			message: "must be at most 850",
		},
		{
			name:    "non integer age",
			mutate:  func(raw map[string]any) { raw["Age"] = 35.5 },
			field:   "Age",
			message: "must be a whole number",
		},
		{
			name:    "duration not a multiple of twelve",
			mutate:  func(raw map[string]any) { raw["LoanDuration"] = 30.0 },
			field:   "LoanDuration",
			message: "must be a multiple of 12",
		},
		{
			name:    "numeric given as string",
			mutate:  func(raw map[string]any) { raw["AnnualIncome"] = "60000" },
			field:   "AnnualIncome",
			message: "must be a number",
		},
		{
			name:    "unknown enum value",
			mutate:  func(raw map[string]any) { raw["EmploymentStatus"] = "Retired" },
			field:   "EmploymentStatus",
			message: "must be one of: Employed, Self-Employed, Unemployed",
		},
		{
			name:    "categorical given as number",
			mutate:  func(raw map[string]any) { raw["LoanPurpose"] = 3.0 },
			field:   "LoanPurpose",
			message: "must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(raw)

			rec, err := BuildRecord(raw)

			assert.Nil(t, rec)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tt.field, verr.Violations[0].Field)
			assert.Equal(t, tt.message, verr.Violations[0].Message)
		})
	}
}

func TestBuildRecordMissingFields(t *testing.T) {
	raw := validRaw()
	delete(raw, "Age")
	delete(raw, "LoanPurpose")

	rec, err := BuildRecord(raw)

	assert.Nil(t, rec)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 2)

	fields := []string{verr.Violations[0].Field, verr.Violations[1].Field}
	assert.Contains(t, fields, "Age")
	assert.Contains(t, fields, "LoanPurpose")
	for _, v := range verr.Violations {
		assert.Equal(t, "required feature is missing", v.Message)
	}
}

func TestBuildRecordRejectsUnknownKeys(t *testing.T) {
	raw := validRaw()
	raw["FavoriteColor"] = "blue"

	rec, err := BuildRecord(raw)

	assert.Nil(t, rec)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "FavoriteColor", verr.Violations[0].Field)
	assert.Equal(t, "is not a recognized feature", verr.Violations[0].Message)
}

func TestBuildRecordCollectsEveryViolation(t *testing.T) {
	raw := validRaw()
	raw["Age"] = 17.0
	raw["EmploymentStatus"] = "Retired"
	delete(raw, "NetWorth")

	_, err := BuildRecord(raw)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 3)
}

func TestBuildRecordDeterministic(t *testing.T) {
	first, err := BuildRecord(validRaw())
	require.NoError(t, err)

	second, err := BuildRecord(validRaw())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{}
	verr.add("Age", "must be at least 18")
	verr.add("CreditScore", "must be at most 850")

	assert.Contains(t, verr.Error(), "Age")
	assert.Contains(t, verr.Error(), "CreditScore")
	assert.False(t, errors.Is(verr, ErrScoringUnavailable))
}

func TestLookupFeature(t *testing.T) {
	f, ok := LookupFeature("CreditScore")
	require.True(t, ok)
	assert.Equal(t, FeatureNumeric, f.Kind)
	assert.True(t, f.Integer)

	_, ok = LookupFeature("NoSuchFeature")
	assert.False(t, ok)
}
