package model

import "time"

// SeatStatus describes where a household ended up.
type SeatStatus string

const (
	// StatusSeated households have a row and seat numbers.
	StatusSeated SeatStatus = "seated"
	// StatusOverflow households fit under capacity but found no row.
	StatusOverflow SeatStatus = "overflow"
	// StatusUnassigned households were cut before matching by the capacity limit.
	StatusUnassigned SeatStatus = "unassigned"
)

// SeatAssignment is one output record: a household and its location, if any.
type SeatAssignment struct {
	Household Household  `json:"household" yaml:"household"`
	Status    SeatStatus `json:"status" yaml:"status"`

	// Set only for seated households.
	RowIndex int   `json:"row_index" yaml:"row_index"` // -1 when not seated
	Pew      *Pew  `json:"pew,omitempty" yaml:"pew,omitempty"`
	Seats    []int `json:"seats,omitempty" yaml:"seats,omitempty"`
}

// LeftoverReport summarizes unused margin-extended capacity in matched rows.
type LeftoverReport struct {
	PerfectRows   int `json:"perfect_rows" yaml:"perfect_rows"`
	ImperfectRows int `json:"imperfect_rows" yaml:"imperfect_rows"`
	TotalLeftover int `json:"total_leftover" yaml:"total_leftover"`
	MaxLeftover   int `json:"max_leftover" yaml:"max_leftover"`

	// Seated people over raw seats of matched rows, 0.0 - 1.0
	Utilization float64 `json:"utilization" yaml:"utilization"`
}

// PlanStats counts the outcome of a run.
type PlanStats struct {
	Households           int `json:"households" yaml:"households"`
	SeatedHouseholds     int `json:"seated_households" yaml:"seated_households"`
	OverflowHouseholds   int `json:"overflow_households" yaml:"overflow_households"`
	UnassignedHouseholds int `json:"unassigned_households" yaml:"unassigned_households"`

	People       int `json:"people" yaml:"people"`
	SeatedPeople int `json:"seated_people" yaml:"seated_people"`

	Rows          int `json:"rows" yaml:"rows"`
	RowsUsed      int `json:"rows_used" yaml:"rows_used"`
	RowsUnmatched int `json:"rows_unmatched" yaml:"rows_unmatched"`

	Swaps      int `json:"swaps" yaml:"swaps"`
	Backfilled int `json:"backfilled" yaml:"backfilled"`
}

// SeatingPlan is the final, identity-bearing result of one run.
type SeatingPlan struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Margin    int       `json:"margin" yaml:"margin"`

	Pews          []Pew            `json:"pews" yaml:"pews"`
	Assignments   []SeatAssignment `json:"assignments" yaml:"assignments"`
	Matches       []Match          `json:"matches" yaml:"matches"`
	UnmatchedRows []int            `json:"unmatched_rows" yaml:"unmatched_rows"`

	Stats    PlanStats      `json:"stats" yaml:"stats"`
	Leftover LeftoverReport `json:"leftover" yaml:"leftover"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

// ByStatus returns the assignments with the given status, in order.
func (p *SeatingPlan) ByStatus(status SeatStatus) []SeatAssignment {
	var out []SeatAssignment
	for i := range p.Assignments {
		if p.Assignments[i].Status == status {
			out = append(out, p.Assignments[i])
		}
	}
	return out
}

// Outcome captures the engine result for one scenario, before household
// identities are attached.
type Outcome struct {
	Scenario string `json:"scenario" yaml:"scenario"`
	Margin   int    `json:"margin" yaml:"margin"`

	Matches       []Match     `json:"matches" yaml:"matches"`
	UnmatchedRows []int       `json:"unmatched_rows" yaml:"unmatched_rows"`
	Residual      map[int]int `json:"residual" yaml:"residual"`

	Households         int `json:"households" yaml:"households"`
	People             int `json:"people" yaml:"people"`
	SeatedHouseholds   int `json:"seated_households" yaml:"seated_households"`
	SeatedPeople       int `json:"seated_people" yaml:"seated_people"`
	UnseatedHouseholds int `json:"unseated_households" yaml:"unseated_households"`

	Leftover   LeftoverReport `json:"leftover" yaml:"leftover"`
	Swaps      int            `json:"swaps" yaml:"swaps"`
	Backfilled int            `json:"backfilled" yaml:"backfilled"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Recommendation is one ranked scenario.
type Recommendation struct {
	Rank    int     `json:"rank" yaml:"rank"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Percentage of people seated, 0-100
	Score float64 `json:"score" yaml:"score"`

	Rationale string   `json:"rationale" yaml:"rationale"`
	Warnings  []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
