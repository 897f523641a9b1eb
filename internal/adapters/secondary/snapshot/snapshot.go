// Package snapshot loads the cleaned historical dataset into an immutable
// in-memory table and answers the descriptive-analytics queries over it.
package snapshot

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"loan-approval-service/internal/core/domain"
)

const outcomeColumn = "LoanApproved"

// Binary history flags grouped as Yes/No alongside the true categoricals.
var flagGroupLabels = map[string]bool{
	"BankruptcyHistory":    true,
	"PreviousLoanDefaults": true,
}

// Table is a column store over the snapshot. Built once at startup and never
// written again, so concurrent readers need no locking.
type Table struct {
	numeric     map[string][]float64
	categorical map[string][]string
	approved    []bool
	n           int
}

// Load reads the delimited snapshot file. The header must carry the 33
// canonical features plus the realized outcome column.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset snapshot: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	for _, feat := range domain.Schema() {
		if _, ok := colIdx[feat.Name]; !ok {
			return nil, fmt.Errorf("snapshot is missing column %q", feat.Name)
		}
	}
	outcomeIdx, ok := colIdx[outcomeColumn]
	if !ok {
		return nil, fmt.Errorf("snapshot is missing column %q", outcomeColumn)
	}

	t := &Table{
		numeric:     make(map[string][]float64),
		categorical: make(map[string][]string),
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read snapshot rows: %w", err)
	}
	for rowNum, row := range rows {
		for _, feat := range domain.Schema() {
			cell := row[colIdx[feat.Name]]
			switch feat.Kind {
			case domain.FeatureNumeric:
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, fmt.Errorf("snapshot row %d, column %s: %w", rowNum+2, feat.Name, err)
				}
				t.numeric[feat.Name] = append(t.numeric[feat.Name], v)
			case domain.FeatureCategorical:
				t.categorical[feat.Name] = append(t.categorical[feat.Name], cell)
			}
		}
		outcome, err := strconv.ParseFloat(row[outcomeIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("snapshot row %d, column %s: %w", rowNum+2, outcomeColumn, err)
		}
		t.approved = append(t.approved, outcome == 1)
	}
	t.n = len(t.approved)
	if t.n == 0 {
		return nil, fmt.Errorf("snapshot %s has no rows", path)
	}
	return t, nil
}

func (t *Table) Len() int { return t.n }

func (t *Table) Overview() domain.Overview {
	approved := 0
	for _, ok := range t.approved {
		if ok {
			approved++
		}
	}
	return domain.Overview{
		Total:         t.n,
		Approved:      approved,
		ApprovalRate:  float64(approved) / float64(t.n),
		AvgLoanAmount: mean(t.numeric["LoanAmount"]),
	}
}

// ApprovalRateBy groups rows by a categorical feature (or a Yes/No history
// flag) and returns per-group approval rates, highest first.
func (t *Table) ApprovalRateBy(feature string) ([]domain.GroupRate, error) {
	groups, err := t.groupValues(feature)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	approvals := make(map[string]int)
	for i, g := range groups {
		totals[g]++
		if t.approved[i] {
			approvals[g]++
		}
	}

	rates := make([]domain.GroupRate, 0, len(totals))
	for g, total := range totals {
		rates = append(rates, domain.GroupRate{
			Group:    g,
			Total:    total,
			Approved: approvals[g],
			Rate:     float64(approvals[g]) / float64(total),
		})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Rate != rates[j].Rate {
			return rates[i].Rate > rates[j].Rate
		}
		return rates[i].Group < rates[j].Group
	})
	return rates, nil
}

func (t *Table) groupValues(feature string) ([]string, error) {
	if col, ok := t.categorical[feature]; ok {
		return col, nil
	}
	if flagGroupLabels[feature] {
		col := t.numeric[feature]
		labels := make([]string, len(col))
		for i, v := range col {
			if v == 1 {
				labels[i] = "Yes"
			} else {
				labels[i] = "No"
			}
		}
		return labels, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownGroupBy, feature)
}

// Distribution bins a numeric feature into equal-width buckets and counts
// approved and rejected rows separately over the same edges.
func (t *Table) Distribution(feature string, bins int) (*domain.Distribution, error) {
	col, ok := t.numeric[feature]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFeature, feature)
	}
	if bins < 1 {
		bins = 1
	}

	lo, hi := col[0], col[0]
	for _, v := range col {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		bins = 1
	}

	d := &domain.Distribution{
		Feature:  feature,
		Edges:    make([]float64, bins+1),
		Approved: make([]int, bins),
		Rejected: make([]int, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := 0; i <= bins; i++ {
		d.Edges[i] = lo + width*float64(i)
	}
	for i, v := range col {
		b := bins - 1
		if width > 0 {
			b = int((v - lo) / width)
			if b >= bins {
				b = bins - 1
			}
		}
		if t.approved[i] {
			d.Approved[b]++
		} else {
			d.Rejected[b]++
		}
	}
	return d, nil
}

// FinancialPatterns aggregates the financial view: column means, net-worth
// five-number summaries by outcome, and a deterministic stride sample of
// income/amount pairs capped at sampleSize points.
func (t *Table) FinancialPatterns(sampleSize int) *domain.FinancialPatterns {
	averages := map[string]float64{}
	for _, name := range []string{"AnnualIncome", "DebtToIncomeRatio", "NetWorth", "Age", "Experience", "CreditScore"} {
		averages[name] = mean(t.numeric[name])
	}

	var approvedNW, rejectedNW []float64
	for i, v := range t.numeric["NetWorth"] {
		if t.approved[i] {
			approvedNW = append(approvedNW, v)
		} else {
			rejectedNW = append(rejectedNW, v)
		}
	}

	p := &domain.FinancialPatterns{
		Averages:          averages,
		NetWorthQuartiles: map[string]domain.Quartiles{},
	}
	if len(approvedNW) > 0 {
		p.NetWorthQuartiles["approved"] = quartiles(approvedNW)
	}
	if len(rejectedNW) > 0 {
		p.NetWorthQuartiles["rejected"] = quartiles(rejectedNW)
	}

	if sampleSize < 1 {
		sampleSize = 1
	}
	step := t.n / sampleSize
	if step < 1 {
		step = 1
	}
	income := t.numeric["AnnualIncome"]
	amount := t.numeric["LoanAmount"]
	for i := 0; i < t.n && len(p.IncomeLoanSample) < sampleSize; i += step {
		p.IncomeLoanSample = append(p.IncomeLoanSample, domain.ScatterPoint{
			AnnualIncome: income[i],
			LoanAmount:   amount[i],
			Approved:     t.approved[i],
		})
	}
	return p
}

// Correlations computes the Pearson correlation of every numeric feature
// against the outcome, in schema order. Zero-variance columns report 0.
func (t *Table) Correlations() []domain.Correlation {
	outcome := make([]float64, t.n)
	for i, ok := range t.approved {
		if ok {
			outcome[i] = 1
		}
	}

	var out []domain.Correlation
	for _, feat := range domain.Schema() {
		if feat.Kind != domain.FeatureNumeric {
			continue
		}
		out = append(out, domain.Correlation{
			Feature: feat.Name,
			Pearson: pearson(t.numeric[feat.Name], outcome),
		})
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func quartiles(xs []float64) domain.Quartiles {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return domain.Quartiles{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile linearly interpolates over a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var cov, vx, vy float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0
	}
	return cov / math.Sqrt(vx*vy)
}
