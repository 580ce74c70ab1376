package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guimove/pewfit/internal/model"
)

// ArrangementHeader is the header row of the seating arrangement CSV.
var ArrangementHeader = []string{
	"Check-in", "First Name", "Last Name", "Size", "E-mail", "Door", "Section", "Row", "Seat #s",
}

// CheckInPending marks a household as not yet checked in.
const CheckInPending = "N"

// CSVReporter writes the seating arrangement as CSV.
type CSVReporter struct {
	w io.Writer
}

// Report writes one line per household: seated households in row order,
// then overflow and unassigned households with empty location fields.
func (r *CSVReporter) Report(ctx context.Context, plan *model.SeatingPlan, meta ReportMeta) error {
	return WriteArrangement(r.w, plan)
}

// ReportComparison writes one line per ranked scenario.
func (r *CSVReporter) ReportComparison(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error {
	cw := csv.NewWriter(r.w)
	_ = cw.Write([]string{
		"Rank", "Margin", "Seated Households", "Households", "Seated People", "People",
		"Rows Used", "Unmatched Rows", "Leftover Seats", "Score", "Warnings",
	})
	for _, rec := range topN(recs, meta.TopN) {
		o := rec.Outcome
		_ = cw.Write([]string{
			strconv.Itoa(rec.Rank),
			strconv.Itoa(o.Margin),
			strconv.Itoa(o.SeatedHouseholds),
			strconv.Itoa(o.Households),
			strconv.Itoa(o.SeatedPeople),
			strconv.Itoa(o.People),
			strconv.Itoa(len(o.Matches)),
			strconv.Itoa(len(o.UnmatchedRows)),
			strconv.Itoa(o.Leftover.TotalLeftover),
			strconv.FormatFloat(rec.Score, 'f', 1, 64),
			strings.Join(rec.Warnings, "; "),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing CSV comparison: %w", err)
	}
	return nil
}

// WriteArrangement writes the seating arrangement CSV for plan.
func WriteArrangement(w io.Writer, plan *model.SeatingPlan) error {
	cw := csv.NewWriter(w)
	_ = cw.Write(ArrangementHeader)
	for _, a := range plan.Assignments {
		_ = cw.Write(arrangementRecord(a))
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing seating arrangement: %w", err)
	}
	return nil
}

func arrangementRecord(a model.SeatAssignment) []string {
	door, section, row := location(a)
	return []string{
		CheckInPending,
		a.Household.FirstName,
		a.Household.LastName,
		strconv.Itoa(a.Household.Size),
		a.Household.Email,
		door,
		section,
		row,
		joinSeats(a.Seats),
	}
}

func joinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, " ")
}
