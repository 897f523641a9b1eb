package dto

import "loan-approval-service/internal/core/domain"

type OverviewResponse struct {
	TotalApplications int     `json:"total_applications"`
	Approved          int     `json:"approved"`
	ApprovalRate      float64 `json:"approval_rate"`
	AvgLoanAmount     float64 `json:"avg_loan_amount"`
}

func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	return OverviewResponse{
		TotalApplications: o.Total,
		Approved:          o.Approved,
		ApprovalRate:      o.ApprovalRate,
		AvgLoanAmount:     o.AvgLoanAmount,
	}
}

type GroupRateResponse struct {
	Group    string  `json:"group"`
	Total    int     `json:"total"`
	Approved int     `json:"approved"`
	Rate     float64 `json:"rate"`
}

type ApprovalRatesResponse struct {
	By     string              `json:"by"`
	Groups []GroupRateResponse `json:"groups"`
}

func ToApprovalRatesResponse(by string, rates []domain.GroupRate) ApprovalRatesResponse {
	groups := make([]GroupRateResponse, 0, len(rates))
	for _, r := range rates {
		groups = append(groups, GroupRateResponse{Group: r.Group, Total: r.Total, Approved: r.Approved, Rate: r.Rate})
	}
	return ApprovalRatesResponse{By: by, Groups: groups}
}

type DistributionResponse struct {
	Feature  string    `json:"feature"`
	Edges    []float64 `json:"edges"`
	Approved []int     `json:"approved"`
	Rejected []int     `json:"rejected"`
}

func ToDistributionResponse(d *domain.Distribution) DistributionResponse {
	return DistributionResponse{
		Feature:  d.Feature,
		Edges:    d.Edges,
		Approved: d.Approved,
		Rejected: d.Rejected,
	}
}

type QuartilesResponse struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

type ScatterPointResponse struct {
	AnnualIncome float64 `json:"annual_income"`
	LoanAmount   float64 `json:"loan_amount"`
	Approved     bool    `json:"approved"`
}

type FinancialPatternsResponse struct {
	Averages          map[string]float64           `json:"averages"`
	NetWorthQuartiles map[string]QuartilesResponse `json:"net_worth_quartiles"`
	IncomeLoanSample  []ScatterPointResponse       `json:"income_loan_sample"`
}

func ToFinancialPatternsResponse(p *domain.FinancialPatterns) FinancialPatternsResponse {
	out := FinancialPatternsResponse{
		Averages:          p.Averages,
		NetWorthQuartiles: make(map[string]QuartilesResponse, len(p.NetWorthQuartiles)),
		IncomeLoanSample:  make([]ScatterPointResponse, 0, len(p.IncomeLoanSample)),
	}
	for k, q := range p.NetWorthQuartiles {
		out.NetWorthQuartiles[k] = QuartilesResponse{Min: q.Min, Q1: q.Q1, Median: q.Median, Q3: q.Q3, Max: q.Max}
	}
	for _, pt := range p.IncomeLoanSample {
		out.IncomeLoanSample = append(out.IncomeLoanSample, ScatterPointResponse{
			AnnualIncome: pt.AnnualIncome,
			LoanAmount:   pt.LoanAmount,
			Approved:     pt.Approved,
		})
	}
	return out
}

type CorrelationResponse struct {
	Feature string  `json:"feature"`
	Pearson float64 `json:"pearson"`
}

func ToCorrelationsResponse(cs []domain.Correlation) []CorrelationResponse {
	out := make([]CorrelationResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CorrelationResponse{Feature: c.Feature, Pearson: c.Pearson})
	}
	return out
}
