package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guimove/pewfit/internal/model"
)

// TableReporter outputs plans and comparisons as formatted terminal tables.
type TableReporter struct {
	w io.Writer
}

func (r *TableReporter) Report(ctx context.Context, plan *model.SeatingPlan, meta ReportMeta) error {
	r.header("pewfit Seating Plan", meta)
	st := plan.Stats

	fmt.Fprintf(r.w, "Plan:        %s\n", plan.ID)
	fmt.Fprintf(r.w, "Margin:      %d seats\n", plan.Margin)
	fmt.Fprintf(r.w, "Households:  %d seated, %d overflow, %d unassigned (of %d)\n",
		st.SeatedHouseholds, st.OverflowHouseholds, st.UnassignedHouseholds, st.Households)
	fmt.Fprintf(r.w, "People:      %d of %d seated\n", st.SeatedPeople, st.People)
	fmt.Fprintf(r.w, "Rows:        %d used, %d unmatched (of %d)\n", st.RowsUsed, st.RowsUnmatched, st.Rows)
	fmt.Fprintf(r.w, "Leftover:    %d seats (max %d in one row), %.1f%% utilization\n",
		plan.Leftover.TotalLeftover, plan.Leftover.MaxLeftover, plan.Leftover.Utilization*100)
	if st.Swaps > 0 || st.Backfilled > 0 {
		fmt.Fprintf(r.w, "Optimizer:   %d swaps, %d households backfilled\n", st.Swaps, st.Backfilled)
	}
	fmt.Fprintf(r.w, "%s\n\n", strings.Repeat("=", 60))

	if len(plan.Assignments) == 0 {
		fmt.Fprintf(r.w, "No households to seat.\n")
		return nil
	}

	fmt.Fprintf(r.w, "%-24s %4s %-10s %-10s %-6s %-12s %s\n",
		"Household", "Size", "Status", "Section", "Row", "Door", "Seats")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 90))

	for _, a := range plan.Assignments {
		name := a.Household.Name()
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		door, section, row := location(a)
		fmt.Fprintf(r.w, "%-24s %4d %-10s %-10s %-6s %-12s %s\n",
			name, a.Household.Size, a.Status, section, row, door, joinSeats(a.Seats))
	}
	fmt.Fprintf(r.w, "%s\n\n", strings.Repeat("-", 90))
	return nil
}

func (r *TableReporter) ReportComparison(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	r.header("pewfit Margin Comparison", meta)
	fmt.Fprintf(r.w, "%s\n\n", strings.Repeat("=", 60))

	if len(recs) == 0 {
		fmt.Fprintf(r.w, "No scenarios available.\n")
		return nil
	}

	fmt.Fprintf(r.w, "%-4s %6s %12s %12s %6s %8s %6s %s\n",
		"Rank", "Margin", "Households", "People", "Rows", "Leftover", "Score", "Notes")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 80))

	for _, rec := range topN(recs, meta.TopN) {
		o := rec.Outcome
		notes := ""
		if o.Swaps > 0 || o.Backfilled > 0 {
			notes = fmt.Sprintf("%d swaps, %d backfilled", o.Swaps, o.Backfilled)
		}
		fmt.Fprintf(r.w, "#%-3d %6d %12s %12s %6d %8d %6.1f %s\n",
			rec.Rank,
			o.Margin,
			fmt.Sprintf("%d/%d", o.SeatedHouseholds, o.Households),
			fmt.Sprintf("%d/%d", o.SeatedPeople, o.People),
			len(o.Matches),
			o.Leftover.TotalLeftover,
			rec.Score,
			notes,
		)
	}
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 80))

	top := recs[0]
	fmt.Fprintf(r.w, "\nRecommended: margin %d\n", top.Outcome.Margin)
	fmt.Fprintf(r.w, "  %s\n", top.Rationale)
	if len(top.Warnings) > 0 {
		fmt.Fprintf(r.w, "\n  Warnings:\n")
		for _, w := range top.Warnings {
			fmt.Fprintf(r.w, "    - %s\n", w)
		}
	}
	fmt.Fprintf(r.w, "\n")
	return nil
}

func (r *TableReporter) header(title string, meta ReportMeta) {
	fmt.Fprintf(r.w, "\n")
	fmt.Fprintf(r.w, "%s\n", title)
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("=", 60))
	if meta.HouseholdsFile != "" {
		fmt.Fprintf(r.w, "Households:  %s\n", meta.HouseholdsFile)
	}
	if meta.PewsFile != "" {
		fmt.Fprintf(r.w, "Pews:        %s\n", meta.PewsFile)
	}
	if meta.MaxCapacity > 0 {
		fmt.Fprintf(r.w, "Capacity:    %d (%d reserved)\n", meta.MaxCapacity, meta.ReservedSeats)
	}
	if meta.SeparationFeet > 0 {
		fmt.Fprintf(r.w, "Separation:  %gft at %gin per seat\n", meta.SeparationFeet, meta.SeatWidthInches)
	}
}
