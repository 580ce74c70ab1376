package roster

import (
	"fmt"

	"github.com/guimove/pewfit/internal/model"
)

// AssembleInput is everything needed to name the engine's matches.
type AssembleInput struct {
	// Households that went through the engine, in input order.
	Seatable []model.Household
	// Households cut by the capacity limit.
	Cut    []model.Household
	Pews   []model.Pew
	Result *model.MatchResult
	Margin int
}

// Assemble maps each matched size back to the first household of that size
// not yet placed, numbers the seats, and appends overflow and unassigned
// records. Seated records follow row order; the rest keep input order.
func Assemble(in AssembleInput) (*model.SeatingPlan, error) {
	if in.Result == nil {
		return nil, fmt.Errorf("assembling plan: no match result")
	}

	queues := make(map[int][]int)
	for i := range in.Seatable {
		s := in.Seatable[i].Size
		queues[s] = append(queues[s], i)
	}
	placed := make([]bool, len(in.Seatable))

	plan := &model.SeatingPlan{
		Margin:        in.Margin,
		Pews:          in.Pews,
		Matches:       in.Result.Matches,
		UnmatchedRows: in.Result.UnusedRows(),
		Assignments:   make([]model.SeatAssignment, 0, len(in.Seatable)+len(in.Cut)),
	}

	for _, m := range in.Result.Matches {
		if m.Row < 0 || m.Row >= len(in.Pews) {
			return nil, fmt.Errorf("assembling plan: match for row %d outside %d pews", m.Row, len(in.Pews))
		}
		pew := &in.Pews[m.Row]
		seats := SeatNumbers(pew.Capacity, m.Households, in.Margin)

		for j, size := range m.Households {
			q := queues[size]
			if len(q) == 0 {
				return nil, fmt.Errorf("assembling plan: row %d seats a household of %d but none is left", m.Row, size)
			}
			idx := q[0]
			queues[size] = q[1:]
			placed[idx] = true

			plan.Assignments = append(plan.Assignments, model.SeatAssignment{
				Household: in.Seatable[idx],
				Status:    model.StatusSeated,
				RowIndex:  m.Row,
				Pew:       pew,
				Seats:     seats[j],
			})
			plan.Stats.SeatedHouseholds++
			plan.Stats.SeatedPeople += size
		}
	}

	for i := range in.Seatable {
		if placed[i] {
			continue
		}
		plan.Assignments = append(plan.Assignments, model.SeatAssignment{
			Household: in.Seatable[i],
			Status:    model.StatusOverflow,
			RowIndex:  -1,
		})
		plan.Stats.OverflowHouseholds++
	}
	if pool := in.Result.Pool; pool != nil {
		if plan.Stats.OverflowHouseholds != pool.Len() {
			return nil, fmt.Errorf("assembling plan: %d households left unseated but pool holds %d",
				plan.Stats.OverflowHouseholds, pool.Len())
		}
		for size, q := range queues {
			if len(q) != pool.Count(size) {
				return nil, fmt.Errorf("assembling plan: %d households of %d left unseated but pool holds %d",
					len(q), size, pool.Count(size))
			}
		}
	}

	for i := range in.Cut {
		plan.Assignments = append(plan.Assignments, model.SeatAssignment{
			Household: in.Cut[i],
			Status:    model.StatusUnassigned,
			RowIndex:  -1,
		})
		plan.Stats.UnassignedHouseholds++
	}

	plan.Stats.Households = len(in.Seatable) + len(in.Cut)
	plan.Stats.People = model.TotalPeople(in.Seatable) + model.TotalPeople(in.Cut)
	plan.Stats.Rows = len(in.Pews)
	plan.Stats.RowsUsed = len(in.Result.Matches)
	plan.Stats.RowsUnmatched = len(plan.UnmatchedRows)

	return plan, nil
}

// SeatNumbers numbers seats within one row. Seats start at 1; each household
// takes size consecutive seats, then margin seats are skipped unless the
// household ended on the last seat. A household whose first seat would fall
// outside the row gets no numbers.
func SeatNumbers(capacity int, sizes []int, margin int) [][]int {
	out := make([][]int, len(sizes))
	next := 0
	for i, size := range sizes {
		if next < capacity {
			seats := make([]int, size)
			for j := range seats {
				next++
				seats[j] = next
			}
			out[i] = seats
		}
		if next != capacity {
			next += margin
		}
	}
	return out
}
