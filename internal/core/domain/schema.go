package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type FeatureKind string

const (
	FeatureNumeric     FeatureKind = "numeric"
	FeatureCategorical FeatureKind = "categorical"
)

// Feature describes one column of the canonical applicant schema: its kind,
// its bounds for numeric values, and its enumeration for categorical ones.
// The scoring artifact was trained against exactly this set of 33 features.
type Feature struct {
	Name       string
	Kind       FeatureKind
	Min        *float64
	Max        *float64
	Integer    bool
	MultipleOf float64
	Enum       []string
}

func bound(v float64) *float64 { return &v }

// Categorical enumerations, shared with the artifact's one-hot tables.
var (
	EmploymentStatuses   = []string{"Employed", "Self-Employed", "Unemployed"}
	EducationLevels      = []string{"High School", "Associate", "Bachelor", "Master", "Doctorate"}
	MaritalStatuses      = []string{"Single", "Married", "Divorced"}
	HomeOwnershipStatuses = []string{"Rent", "Own", "Mortgage"}
	LoanPurposes         = []string{"Home", "Auto", "Education", "Business", "Other"}
)

var schema = []Feature{
	{Name: "Age", Kind: FeatureNumeric, Min: bound(18), Max: bound(100), Integer: true},
	{Name: "AnnualIncome", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "CreditScore", Kind: FeatureNumeric, Min: bound(300), Max: bound(850), Integer: true},
	{Name: "EmploymentStatus", Kind: FeatureCategorical, Enum: EmploymentStatuses},
	{Name: "EducationLevel", Kind: FeatureCategorical, Enum: EducationLevels},
	{Name: "Experience", Kind: FeatureNumeric, Min: bound(0), Max: bound(80), Integer: true},
	{Name: "LoanAmount", Kind: FeatureNumeric, Min: bound(1)},
	{Name: "LoanDuration", Kind: FeatureNumeric, Min: bound(12), Max: bound(120), Integer: true, MultipleOf: 12},
	{Name: "MaritalStatus", Kind: FeatureCategorical, Enum: MaritalStatuses},
	{Name: "NumberOfDependents", Kind: FeatureNumeric, Min: bound(0), Max: bound(20), Integer: true},
	{Name: "HomeOwnershipStatus", Kind: FeatureCategorical, Enum: HomeOwnershipStatuses},
	{Name: "MonthlyDebtPayments", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "CreditCardUtilizationRate", Kind: FeatureNumeric, Min: bound(0), Max: bound(1)},
	{Name: "NumberOfOpenCreditLines", Kind: FeatureNumeric, Min: bound(0), Max: bound(50), Integer: true},
	{Name: "NumberOfCreditInquiries", Kind: FeatureNumeric, Min: bound(0), Max: bound(50), Integer: true},
	{Name: "DebtToIncomeRatio", Kind: FeatureNumeric, Min: bound(0), Max: bound(10)},
	{Name: "BankruptcyHistory", Kind: FeatureNumeric, Min: bound(0), Max: bound(1), Integer: true},
	{Name: "LoanPurpose", Kind: FeatureCategorical, Enum: LoanPurposes},
	{Name: "PreviousLoanDefaults", Kind: FeatureNumeric, Min: bound(0), Max: bound(1), Integer: true},
	{Name: "PaymentHistory", Kind: FeatureNumeric, Min: bound(0), Max: bound(1)},
	{Name: "LengthOfCreditHistory", Kind: FeatureNumeric, Min: bound(0), Max: bound(80), Integer: true},
	{Name: "SavingsAccountBalance", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "CheckingAccountBalance", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "TotalAssets", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "TotalLiabilities", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "MonthlyIncome", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "UtilityBillsPaymentHistory", Kind: FeatureNumeric, Min: bound(0), Max: bound(1)},
	{Name: "JobTenure", Kind: FeatureNumeric, Min: bound(0), Max: bound(60), Integer: true},
	{Name: "NetWorth", Kind: FeatureNumeric},
	{Name: "BaseInterestRate", Kind: FeatureNumeric, Min: bound(0), Max: bound(100)},
	{Name: "InterestRate", Kind: FeatureNumeric, Min: bound(0), Max: bound(100)},
	{Name: "MonthlyLoanPayment", Kind: FeatureNumeric, Min: bound(0)},
	{Name: "TotalDebtToIncomeRatio", Kind: FeatureNumeric, Min: bound(0), Max: bound(10)},
}

var schemaIndex = buildSchemaIndex()

func buildSchemaIndex() map[string]*Feature {
	idx := make(map[string]*Feature, len(schema))
	for i := range schema {
		idx[schema[i].Name] = &schema[i]
	}
	return idx
}

// Schema returns the 33 canonical features in artifact column order.
func Schema() []Feature {
	return schema
}

// LookupFeature finds a feature by canonical name.
func LookupFeature(name string) (*Feature, bool) {
	f, ok := schemaIndex[name]
	return f, ok
}

// BuildRecord validates raw field values against the schema and assembles an
// ApplicationRecord. On failure it returns a ValidationError naming every
// offending field; no partial record is produced. The same input always
// yields the same outcome.
func BuildRecord(raw map[string]any) (*ApplicationRecord, error) {
	verr := &ValidationError{}
	rec := &ApplicationRecord{}

	for i := range schema {
		f := &schema[i]
		v, ok := raw[f.Name]
		if !ok {
			verr.add(f.Name, "required feature is missing")
			continue
		}

		switch f.Kind {
		case FeatureCategorical:
			s, ok := v.(string)
			if !ok {
				verr.add(f.Name, "must be a string")
				continue
			}
			if !containsString(f.Enum, s) {
				verr.add(f.Name, fmt.Sprintf("must be one of: %s", strings.Join(f.Enum, ", ")))
				continue
			}
			rec.setCategorical(f.Name, s)

		case FeatureNumeric:
			n, ok := toFloat(v)
			if !ok {
				verr.add(f.Name, "must be a number")
				continue
			}
			if msg := checkNumeric(f, n); msg != "" {
				verr.add(f.Name, msg)
				continue
			}
			rec.setNumeric(f.Name, n)
		}
	}

	var extras []string
	for k := range raw {
		if _, ok := schemaIndex[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		verr.add(k, "is not a recognized feature")
	}

	if len(verr.Violations) > 0 {
		return nil, verr
	}
	return rec, nil
}

func checkNumeric(f *Feature, n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "must be a finite number"
	}
	if f.Integer && math.Trunc(n) != n {
		return "must be a whole number"
	}
	if f.Min != nil && n < *f.Min {
		return fmt.Sprintf("must be at least %g", *f.Min)
	}
	if f.Max != nil && n > *f.Max {
		return fmt.Sprintf("must be at most %g", *f.Max)
	}
	if f.MultipleOf != 0 && math.Mod(n, f.MultipleOf) != 0 {
		return fmt.Sprintf("must be a multiple of %g", f.MultipleOf)
	}
	return ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
