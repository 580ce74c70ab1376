package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guimove/pewfit/internal/model"
)

// MarkdownReporter outputs plans and comparisons as Markdown tables.
type MarkdownReporter struct {
	w io.Writer
}

func (r *MarkdownReporter) Report(ctx context.Context, plan *model.SeatingPlan, meta ReportMeta) error {
	st := plan.Stats

	fmt.Fprintf(r.w, "# Seating Plan\n\n")
	fmt.Fprintf(r.w, "| | |\n|---|---|\n")
	fmt.Fprintf(r.w, "| Margin | %d seats |\n", plan.Margin)
	fmt.Fprintf(r.w, "| Seated households | %d of %d |\n", st.SeatedHouseholds, st.Households)
	fmt.Fprintf(r.w, "| Overflow households | %d |\n", st.OverflowHouseholds)
	fmt.Fprintf(r.w, "| Unassigned households | %d |\n", st.UnassignedHouseholds)
	fmt.Fprintf(r.w, "| Seated people | %d of %d |\n", st.SeatedPeople, st.People)
	fmt.Fprintf(r.w, "| Rows used | %d of %d |\n", st.RowsUsed, st.Rows)
	fmt.Fprintf(r.w, "| Leftover seats | %d |\n\n", plan.Leftover.TotalLeftover)

	if len(plan.Assignments) == 0 {
		return nil
	}

	fmt.Fprintf(r.w, "## Assignments\n\n")
	fmt.Fprintf(r.w, "| Household | Size | E-mail | Status | Door | Section | Row | Seats |\n")
	fmt.Fprintf(r.w, "|---|---:|---|---|---|---|---|---|\n")
	for _, a := range plan.Assignments {
		door, section, row := location(a)
		fmt.Fprintf(r.w, "| %s | %d | %s | %s | %s | %s | %s | %s |\n",
			escape(a.Household.Name()), a.Household.Size, escape(a.Household.Email),
			a.Status, escape(door), escape(section), escape(row), joinSeats(a.Seats))
	}
	fmt.Fprintf(r.w, "\n")
	return nil
}

func (r *MarkdownReporter) ReportComparison(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	fmt.Fprintf(r.w, "# Margin Comparison\n\n")
	if len(recs) == 0 {
		fmt.Fprintf(r.w, "No scenarios available.\n")
		return nil
	}

	fmt.Fprintf(r.w, "| Rank | Margin | Households | People | Leftover | Score | Warnings |\n")
	fmt.Fprintf(r.w, "|---:|---:|---:|---:|---:|---:|---|\n")
	for _, rec := range topN(recs, meta.TopN) {
		o := rec.Outcome
		fmt.Fprintf(r.w, "| %d | %d | %d/%d | %d/%d | %d | %.1f | %s |\n",
			rec.Rank, o.Margin, o.SeatedHouseholds, o.Households, o.SeatedPeople, o.People,
			o.Leftover.TotalLeftover, rec.Score, escape(strings.Join(rec.Warnings, "; ")))
	}
	fmt.Fprintf(r.w, "\n**Recommended:** margin %d. %s\n", recs[0].Outcome.Margin, recs[0].Rationale)
	return nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
