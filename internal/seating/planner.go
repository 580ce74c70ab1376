// Package seating matches households to rows: a greedy row-by-row subset-sum
// pass followed by a pairwise swap and backfill pass over rows with spare
// room.
package seating

import (
	"context"

	"github.com/guimove/pewfit/internal/model"
)

// Planner defines a strategy for placing households into rows.
type Planner interface {
	// Plan places households from input into rows. Each call owns its own
	// household pool; a cancelled context abandons the run without a result.
	Plan(ctx context.Context, input PlanInput) (*PlanResult, error)

	// Name returns the strategy name.
	Name() string
}

// PlanInput is the input to one planning run.
type PlanInput struct {
	Sizes      []int // household sizes, input order
	Capacities []int // row capacities, input order
	Margin     int   // spacing seats added to every household and row
}

// PlanResult is the output of one planning run.
type PlanResult struct {
	Result   *model.MatchResult
	Optimize OptimizeStats
	Leftover model.LeftoverReport
}
