package seating

import (
	"context"
	"fmt"

	"github.com/guimove/pewfit/internal/model"
	"github.com/guimove/pewfit/internal/subsetsum"
)

// MatchRows runs the greedy first pass: rows are visited in input order and
// each takes the combination of remaining households that fills the most of
// its margin-extended capacity. Once every household is seated the remaining
// rows are left untouched, so an empty household list leaves every row in
// Untouched; MatchResult.UnusedRows lists unmatched and untouched rows together.
func MatchRows(sizes, capacities []int, margin int) *model.MatchResult {
	// Background contexts never cancel, so the error is always nil.
	result, _ := matchRows(context.Background(), model.NewHouseholdPool(sizes), capacities, margin)
	return result
}

func matchRows(ctx context.Context, pool *model.HouseholdPool, capacities []int, margin int) (*model.MatchResult, error) {
	result := &model.MatchResult{
		Matches:   []model.Match{},
		Unmatched: []int{},
		Untouched: []int{},
		Pool:      pool,
	}

	for row, capacity := range capacities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		extended := pool.Expand(margin)
		if len(extended) == 0 {
			for rest := row; rest < len(capacities); rest++ {
				result.Untouched = append(result.Untouched, rest)
			}
			break
		}

		subset, ok := subsetsum.Solve(extended, capacity+margin, subsetsum.AtMost)
		if !ok {
			result.Unmatched = append(result.Unmatched, row)
			continue
		}

		households := stripMargin(subset, margin)
		if err := pool.TakeAll(households); err != nil {
			return nil, fmt.Errorf("seating row %d: %w", row, err)
		}

		result.Matches = append(result.Matches, model.Match{Row: row, Households: households})
	}

	return result, nil
}

// stripMargin converts margin-extended values back to household sizes.
func stripMargin(extended []int, margin int) []int {
	sizes := make([]int, len(extended))
	for i, v := range extended {
		sizes[i] = v - margin
	}
	return sizes
}
