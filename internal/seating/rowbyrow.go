package seating

import (
	"context"
	"fmt"

	"github.com/guimove/pewfit/internal/logging"
	"github.com/guimove/pewfit/internal/model"
)

// RowByRow fills rows in input order with the subset-sum matcher, then runs
// the leftover optimizer.
type RowByRow struct {
	// SkipOptimize disables the swap and backfill pass.
	SkipOptimize bool
	Logger       logging.Logger
}

// Name returns the strategy name.
func (p *RowByRow) Name() string { return "row-by-row" }

// Plan matches input.Sizes to input.Capacities.
func (p *RowByRow) Plan(ctx context.Context, input PlanInput) (*PlanResult, error) {
	log := logging.OrNop(p.Logger)

	if input.Margin < 0 {
		return nil, fmt.Errorf("margin must be non-negative, got %d", input.Margin)
	}

	pool := model.NewHouseholdPool(input.Sizes)
	result, err := matchRows(ctx, pool, input.Capacities, input.Margin)
	if err != nil {
		return nil, err
	}

	log.Debug("first pass complete",
		"matched_rows", len(result.Matches),
		"unmatched_rows", len(result.Unmatched),
		"remaining_households", pool.Len())

	var stats OptimizeStats
	if !p.SkipOptimize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stats, err = Optimize(result.Matches, input.Capacities, input.Margin, pool)
		if err != nil {
			return nil, err
		}
		if stats.Ran {
			log.Debug("leftover pass complete",
				"imperfect_rows", stats.ImperfectRows,
				"sweeps", stats.Sweeps,
				"swaps", stats.Swaps,
				"backfilled", stats.Backfilled)
		}
	}

	return &PlanResult{
		Result:   result,
		Optimize: stats,
		Leftover: AnalyzeLeftover(result.Matches, input.Capacities, input.Margin),
	}, nil
}
