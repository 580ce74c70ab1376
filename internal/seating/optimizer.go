package seating

import (
	"fmt"
	"slices"

	"github.com/guimove/pewfit/internal/model"
	"github.com/guimove/pewfit/internal/subsetsum"
)

// OptimizeStats records what the leftover pass did.
type OptimizeStats struct {
	ImperfectRows int  // rows with spare room before the pass
	Ran           bool // false when there was nothing to do
	Sweeps        int
	Swaps         int
	Backfilled    int // households admitted after swapping
}

// Leftover returns the unused margin-extended capacity of a row: each
// household uses its seats plus the margin on one side, and the row is
// extended by one margin to account for the last household.
func Leftover(capacity int, households []int, margin int) int {
	used := 0
	for _, h := range households {
		used += h + margin
	}
	return capacity + margin - used
}

// BestSwap finds the one-for-one exchange between rows a and b that pushes
// their leftovers furthest apart, so that spare room collects in one row.
// Swaps that would overfill either row are skipped, and only swaps that
// widen the current gap qualify; ties keep the first found. It reports false
// when either row is already full or no swap qualifies.
func BestSwap(capA int, householdsA []int, capB int, householdsB []int, margin int) (int, int, bool) {
	leftA := Leftover(capA, householdsA, margin)
	leftB := Leftover(capB, householdsB, margin)
	if leftA == 0 || leftB == 0 {
		return 0, 0, false
	}

	bestDiff := abs(leftA - leftB)
	var bestA, bestB int
	found := false

	for _, fa := range householdsA {
		for _, fb := range householdsB {
			delta := fa - fb // change in row a's leftover
			if leftA+delta < 0 || leftB-delta < 0 {
				continue
			}
			if diff := abs((leftA + delta) - (leftB - delta)); diff > bestDiff {
				bestDiff = diff
				bestA, bestB = fa, fb
				found = true
			}
		}
	}

	return bestA, bestB, found
}

// Optimize improves matches in place. It only acts when at least two rows
// have spare room and some household is still unseated: it swaps households
// between those rows until no pair improves, then offers each row's spare
// room to the remaining households, taking them from pool.
//
// capacities is indexed by Match.Row. Optimize must have exclusive use of
// matches and pool for the duration of the call.
func Optimize(matches []model.Match, capacities []int, margin int, pool *model.HouseholdPool) (OptimizeStats, error) {
	imperfect := imperfectRows(matches, capacities, margin)
	stats := OptimizeStats{ImperfectRows: len(imperfect)}

	if len(imperfect) < 2 || pool.Empty() {
		return stats, nil
	}
	stats.Ran = true

	stats.Sweeps, stats.Swaps = swapUntilStable(matches, imperfect, capacities, margin)

	for _, k := range imperfect {
		m := &matches[k]
		left := Leftover(capacities[m.Row], m.Households, margin)

		extended := pool.Expand(margin)
		if len(extended) == 0 {
			break
		}

		subset, ok := subsetsum.Solve(extended, left, subsetsum.AtMost)
		if !ok {
			continue
		}

		admitted := stripMargin(subset, margin)
		if err := pool.TakeAll(admitted); err != nil {
			return stats, fmt.Errorf("backfilling row %d: %w", m.Row, err)
		}
		m.Households = append(m.Households, admitted...)
		stats.Backfilled += len(admitted)
	}

	return stats, nil
}

// imperfectRows returns the indexes into matches of rows with spare room.
func imperfectRows(matches []model.Match, capacities []int, margin int) []int {
	var out []int
	for i := range matches {
		if Leftover(capacities[matches[i].Row], matches[i].Households, margin) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// swapUntilStable sweeps every pair of rows (a before b), applying each
// pair's best swap as soon as it is found, and repeats until a sweep makes no
// swap. Every swap strictly increases the sum of squared leftovers, so the
// loop terminates.
func swapUntilStable(matches []model.Match, rows []int, capacities []int, margin int) (sweeps, swaps int) {
	for {
		sweeps++
		swapped := 0

		for a := 0; a < len(rows); a++ {
			for b := a + 1; b < len(rows); b++ {
				ma, mb := &matches[rows[a]], &matches[rows[b]]

				fa, fb, ok := BestSwap(capacities[ma.Row], ma.Households, capacities[mb.Row], mb.Households, margin)
				if !ok {
					continue
				}

				ma.Households = exchange(ma.Households, fa, fb)
				mb.Households = exchange(mb.Households, fb, fa)
				swapped++
			}
		}

		swaps += swapped
		if swapped == 0 {
			return sweeps, swaps
		}
	}
}

// exchange removes the first occurrence of out and appends in.
func exchange(households []int, out, in int) []int {
	if i := slices.Index(households, out); i >= 0 {
		households = slices.Delete(households, i, i+1)
	}
	return append(households, in)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
