package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/guimove/pewfit/internal/model"
)

// JSONReporter outputs plans and comparisons as JSON.
type JSONReporter struct {
	w io.Writer
}

type planOutput struct {
	Meta ReportMeta         `json:"meta" yaml:"meta"`
	Plan *model.SeatingPlan `json:"plan" yaml:"plan"`
}

type comparisonOutput struct {
	Meta            ReportMeta             `json:"meta" yaml:"meta"`
	Recommendations []model.Recommendation `json:"recommendations" yaml:"recommendations"`
}

func (r *JSONReporter) Report(ctx context.Context, plan *model.SeatingPlan, meta ReportMeta) error {
	return r.encode(planOutput{Meta: meta, Plan: plan})
}

func (r *JSONReporter) ReportComparison(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	return r.encode(comparisonOutput{Meta: meta, Recommendations: topN(recs, meta.TopN)})
}

func (r *JSONReporter) encode(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
