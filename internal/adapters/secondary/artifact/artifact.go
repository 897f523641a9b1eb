// Package artifact loads the serialized scoring pipeline exported by the
// offline training job and evaluates it. The file bundles the preprocessing
// parameters (robust scaling, drop-first one-hot tables) and the boosted
// oblivious trees as one object; callers see only Score(record) -> probability.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"loan-approval-service/internal/core/domain"
)

const supportedFormatVersion = 1

type NumericFeature struct {
	Name   string  `json:"name"`
	Median float64 `json:"median"`
	IQR    float64 `json:"iqr"`
}

type CategoricalFeature struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// Split is one level of an oblivious tree: every node at that depth compares
// the same input column against the same threshold.
type Split struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
}

type Tree struct {
	Splits []Split   `json:"splits"`
	Leaves []float64 `json:"leaves"`
}

// Model is the deserialized scoring artifact. Loaded once, never mutated.
type Model struct {
	FormatVersion int                  `json:"format_version"`
	TrainedAt     string               `json:"trained_at"`
	Numeric       []NumericFeature     `json:"numeric_features"`
	Categorical   []CategoricalFeature `json:"categorical_features"`
	Bias          float64              `json:"bias"`
	Trees         []Tree               `json:"trees"`

	width int
}

// Load reads and validates an artifact file. Any structural problem is
// reported as a corrupt artifact; the caller decides whether that is fatal.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("corrupt scoring artifact %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("corrupt scoring artifact %s: %w", path, err)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if m.FormatVersion != supportedFormatVersion {
		return fmt.Errorf("unsupported format version %d", m.FormatVersion)
	}

	seen := make(map[string]bool, len(m.Numeric)+len(m.Categorical))
	for _, nf := range m.Numeric {
		f, ok := domain.LookupFeature(nf.Name)
		if !ok || f.Kind != domain.FeatureNumeric {
			return fmt.Errorf("numeric feature %q is not in the applicant schema", nf.Name)
		}
		if seen[nf.Name] {
			return fmt.Errorf("duplicate feature %q", nf.Name)
		}
		seen[nf.Name] = true
	}
	for _, cf := range m.Categorical {
		f, ok := domain.LookupFeature(cf.Name)
		if !ok || f.Kind != domain.FeatureCategorical {
			return fmt.Errorf("categorical feature %q is not in the applicant schema", cf.Name)
		}
		if seen[cf.Name] {
			return fmt.Errorf("duplicate feature %q", cf.Name)
		}
		if len(cf.Categories) < 2 {
			return fmt.Errorf("categorical feature %q needs at least two categories", cf.Name)
		}
		for _, c := range cf.Categories {
			if !inEnum(f.Enum, c) {
				return fmt.Errorf("feature %q category %q is not in the applicant schema", cf.Name, c)
			}
		}
		seen[cf.Name] = true
	}
	if len(seen) != len(domain.Schema()) {
		return fmt.Errorf("artifact covers %d features, schema has %d", len(seen), len(domain.Schema()))
	}

	m.width = len(m.Numeric)
	for _, cf := range m.Categorical {
		m.width += len(cf.Categories) - 1
	}

	if len(m.Trees) == 0 {
		return fmt.Errorf("artifact has no trees")
	}
	for i, t := range m.Trees {
		if len(t.Splits) == 0 {
			return fmt.Errorf("tree %d has no splits", i)
		}
		if len(t.Leaves) != 1<<len(t.Splits) {
			return fmt.Errorf("tree %d: %d splits require %d leaves, got %d",
				i, len(t.Splits), 1<<len(t.Splits), len(t.Leaves))
		}
		for _, s := range t.Splits {
			if s.Feature < 0 || s.Feature >= m.width {
				return fmt.Errorf("tree %d references column %d outside the %d-wide input", i, s.Feature, m.width)
			}
		}
	}
	return nil
}

// Score evaluates the pipeline for one validated record. Deterministic: the
// same record always yields the same probability.
func (m *Model) Score(_ context.Context, rec *domain.ApplicationRecord) (float64, error) {
	x, err := m.vector(rec)
	if err != nil {
		return 0, err
	}

	raw := m.Bias
	for _, t := range m.Trees {
		leaf := 0
		for d, s := range t.Splits {
			if x[s.Feature] > s.Threshold {
				leaf |= 1 << d
			}
		}
		raw += t.Leaves[leaf]
	}
	return sigmoid(raw), nil
}

// vector lays the record out in the column order the trees were fit against:
// scaled numerics first, then the drop-first one-hot blocks.
func (m *Model) vector(rec *domain.ApplicationRecord) ([]float64, error) {
	x := make([]float64, 0, m.width)
	for _, nf := range m.Numeric {
		v, ok := rec.Numeric(nf.Name)
		if !ok {
			return nil, fmt.Errorf("record is missing numeric feature %q", nf.Name)
		}
		scaled := v - nf.Median
		if nf.IQR != 0 {
			scaled /= nf.IQR
		}
		x = append(x, scaled)
	}
	for _, cf := range m.Categorical {
		v, ok := rec.Categorical(cf.Name)
		if !ok {
			return nil, fmt.Errorf("record is missing categorical feature %q", cf.Name)
		}
		for _, c := range cf.Categories[1:] {
			if v == c {
				x = append(x, 1)
			} else {
				x = append(x, 0)
			}
		}
	}
	return x, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func inEnum(enum []string, s string) bool {
	for _, v := range enum {
		if v == s {
			return true
		}
	}
	return false
}
