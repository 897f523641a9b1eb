package domain

// Overview summarizes the snapshot for the dashboard headline metrics.
type Overview struct {
	Total         int
	Approved      int
	ApprovalRate  float64
	AvgLoanAmount float64
}

// GroupRate is the approval rate within one category of a grouping feature.
type GroupRate struct {
	Group    string
	Total    int
	Approved int
	Rate     float64
}

// Distribution holds two histograms over shared bin edges, split by outcome.
type Distribution struct {
	Feature  string
	Edges    []float64
	Approved []int
	Rejected []int
}

// Quartiles is a five-number summary of one numeric column.
type Quartiles struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// ScatterPoint is one sampled income/amount pair for the financial view.
type ScatterPoint struct {
	AnnualIncome float64
	LoanAmount   float64
	Approved     bool
}

// FinancialPatterns aggregates the financial-tab analytics in one pass.
type FinancialPatterns struct {
	Averages          map[string]float64
	NetWorthQuartiles map[string]Quartiles
	IncomeLoanSample  []ScatterPoint
}

// Correlation is the Pearson correlation of one numeric feature against the
// realized approval outcome.
type Correlation struct {
	Feature string
	Pearson float64
}
