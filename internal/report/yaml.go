package report

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/guimove/pewfit/internal/model"
)

// YAMLReporter outputs plans and comparisons as YAML.
type YAMLReporter struct {
	w io.Writer
}

func (r *YAMLReporter) Report(ctx context.Context, plan *model.SeatingPlan, meta ReportMeta) error {
	return r.encode(planOutput{Meta: meta, Plan: plan})
}

func (r *YAMLReporter) ReportComparison(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	return r.encode(comparisonOutput{Meta: meta, Recommendations: topN(recs, meta.TopN)})
}

func (r *YAMLReporter) encode(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}
	return nil
}
