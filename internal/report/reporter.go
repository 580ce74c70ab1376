package report

import (
	"context"
	"io"
	"time"

	"github.com/guimove/pewfit/internal/model"
)

// Reporter formats and writes seating results to an output destination.
type Reporter interface {
	// Report writes one seating plan.
	Report(ctx context.Context, plan *model.SeatingPlan, meta ReportMeta) error

	// ReportComparison writes ranked margin scenarios.
	ReportComparison(ctx context.Context, recs []model.Recommendation, meta ReportMeta) error
}

// ReportMeta contains contextual metadata for the report.
type ReportMeta struct {
	HouseholdsFile string    `json:"households_file,omitempty" yaml:"households_file,omitempty"`
	PewsFile       string    `json:"pews_file,omitempty" yaml:"pews_file,omitempty"`
	GeneratedAt    time.Time `json:"generated_at" yaml:"generated_at"`

	MaxCapacity     int     `json:"max_capacity,omitempty" yaml:"max_capacity,omitempty"`
	ReservedSeats   int     `json:"reserved_seats,omitempty" yaml:"reserved_seats,omitempty"`
	SeparationFeet  float64 `json:"separation_feet,omitempty" yaml:"separation_feet,omitempty"`
	SeatWidthInches float64 `json:"seat_width_inches,omitempty" yaml:"seat_width_inches,omitempty"`

	// Number of ranked scenarios to print; 0 prints all.
	TopN int `json:"-" yaml:"-"`
}

// NewReporter creates a reporter for the given format writing to w.
func NewReporter(format string, w io.Writer) Reporter {
	switch format {
	case "csv":
		return &CSVReporter{w: w}
	case "json":
		return &JSONReporter{w: w}
	case "yaml":
		return &YAMLReporter{w: w}
	case "markdown":
		return &MarkdownReporter{w: w}
	default:
		return &TableReporter{w: w}
	}
}

// ContentType returns the MIME type of a format's output.
func ContentType(format string) string {
	switch format {
	case "csv":
		return "text/csv"
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	case "markdown":
		return "text/markdown"
	default:
		return "text/plain"
	}
}

func topN(recs []model.Recommendation, n int) []model.Recommendation {
	if n > 0 && len(recs) > n {
		return recs[:n]
	}
	return recs
}

// location returns the door, section and row of an assignment, empty when
// the household has no seat.
func location(a model.SeatAssignment) (door, section, row string) {
	if a.Pew == nil {
		return "", "", ""
	}
	return a.Pew.Door, a.Pew.Section, a.Pew.Row
}
