package seating

import (
	"fmt"
	"sort"

	"github.com/guimove/pewfit/internal/model"
)

// LowUtilThreshold flags plans whose matched rows are mostly empty seats.
const LowUtilThreshold = 0.50

// Scorer ranks scenario outcomes.
type Scorer struct {
	// PreferredMargin is the spacing the venue asked for; scenarios below it
	// carry a warning.
	PreferredMargin int
}

// NewScorer creates a scorer.
func NewScorer(preferredMargin int) *Scorer {
	return &Scorer{PreferredMargin: preferredMargin}
}

// Rank orders outcomes best first: more households seated, then more
// people seated, then less spare room, then wider spacing.
func (s *Scorer) Rank(outcomes []model.Outcome) []model.Recommendation {
	if len(outcomes) == 0 {
		return nil
	}

	recs := make([]model.Recommendation, len(outcomes))
	for i, o := range outcomes {
		recs[i] = s.score(o)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i].Outcome, recs[j].Outcome
		if a.SeatedHouseholds != b.SeatedHouseholds {
			return a.SeatedHouseholds > b.SeatedHouseholds
		}
		if a.SeatedPeople != b.SeatedPeople {
			return a.SeatedPeople > b.SeatedPeople
		}
		if a.Leftover.TotalLeftover != b.Leftover.TotalLeftover {
			return a.Leftover.TotalLeftover < b.Leftover.TotalLeftover
		}
		return a.Margin > b.Margin
	})

	for i := range recs {
		recs[i].Rank = i + 1
	}
	return recs
}

func (s *Scorer) score(o model.Outcome) model.Recommendation {
	rec := model.Recommendation{Outcome: o}

	if o.People > 0 {
		rec.Score = float64(o.SeatedPeople) / float64(o.People) * 100
	} else {
		rec.Score = 100
	}

	rec.Rationale = fmt.Sprintf("margin %d: %d/%d households, %d/%d people seated in %d rows",
		o.Margin, o.SeatedHouseholds, o.Households, o.SeatedPeople, o.People, len(o.Matches))
	if o.Swaps > 0 || o.Backfilled > 0 {
		rec.Rationale += fmt.Sprintf(" (%d swaps, %d backfilled)", o.Swaps, o.Backfilled)
	}

	rec.Warnings = s.warnings(o)
	return rec
}

func (s *Scorer) warnings(o model.Outcome) []string {
	var warnings []string

	if o.UnseatedHouseholds > 0 {
		warnings = append(warnings,
			fmt.Sprintf("%d households could not be seated", o.UnseatedHouseholds))
	}
	if s.PreferredMargin > 0 && o.Margin < s.PreferredMargin {
		warnings = append(warnings,
			fmt.Sprintf("margin %d is below the preferred spacing of %d seats", o.Margin, s.PreferredMargin))
	}
	if len(o.Matches) > 0 && o.Leftover.Utilization < LowUtilThreshold {
		warnings = append(warnings,
			fmt.Sprintf("only %.0f%% of seats in used rows are occupied", o.Leftover.Utilization*100))
	}

	return warnings
}
