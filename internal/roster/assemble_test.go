package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guimove/pewfit/internal/model"
)

func household(name string, size int) model.Household {
	return model.Household{FirstName: name, LastName: "Test", Size: size, Email: name + "@example.com"}
}

func TestTrimToCapacity(t *testing.T) {
	hh := []model.Household{household("a", 4), household("b", 3), household("c", 5), household("d", 1)}

	tests := []struct {
		name  string
		limit int
		kept  int
	}{
		{"everyone fits", 20, 4},
		{"limit reached exactly keeps next", 7, 3},
		{"last kept household overshoots", 5, 2},
		{"first household always considered", 0, 1},
		{"negative limit cuts everyone", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, cut := TrimToCapacity(hh, tt.limit)
			assert.Len(t, kept, tt.kept)
			assert.Len(t, cut, len(hh)-tt.kept)
			assert.Equal(t, hh, append(append([]model.Household{}, kept...), cut...))
		})
	}
}

func TestSeatNumbers(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		sizes    []int
		margin   int
		want     [][]int
	}{
		{"single household", 4, []int{4}, 3, [][]int{{1, 2, 3, 4}}},
		{"margin between households", 14, []int{2, 1, 5}, 3, [][]int{{1, 2}, {6}, {10, 11, 12, 13, 14}}},
		{"no margin", 5, []int{2, 3}, 0, [][]int{{1, 2}, {3, 4, 5}}},
		{"trailing gap", 12, []int{4, 6}, 1, [][]int{{1, 2, 3, 4}, {6, 7, 8, 9, 10, 11}}},
		{"empty row", 5, nil, 2, [][]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeatNumbers(tt.capacity, tt.sizes, tt.margin))
		})
	}
}

func TestAssemble(t *testing.T) {
	seatable := []model.Household{
		household("a", 1), household("b", 3), household("c", 4),
		household("d", 6), household("e", 6),
	}
	cut := []model.Household{household("z", 2)}
	pews := []model.Pew{
		{Section: "A", Row: "1", Door: "A", Capacity: 9},
		{Section: "A", Row: "2", Door: "A", Capacity: 3},
		{Section: "B", Row: "1", Door: "B", Capacity: 12},
	}

	pool := model.NewHouseholdPool([]int{1, 3, 4, 6, 6})
	require.NoError(t, pool.TakeAll([]int{1, 6, 3, 4}))
	result := &model.MatchResult{
		Matches: []model.Match{
			{Row: 0, Households: []int{1, 6}},
			{Row: 1, Households: []int{3}},
			{Row: 2, Households: []int{4}},
		},
		Unmatched: []int{},
		Untouched: []int{},
		Pool:      pool,
	}

	plan, err := Assemble(AssembleInput{Seatable: seatable, Cut: cut, Pews: pews, Result: result, Margin: 1})
	require.NoError(t, err)

	type rec struct {
		name   string
		status model.SeatStatus
		row    int
		seats  []int
	}
	var got []rec
	for _, a := range plan.Assignments {
		got = append(got, rec{a.Household.FirstName, a.Status, a.RowIndex, a.Seats})
	}
	assert.Equal(t, []rec{
		{"a", model.StatusSeated, 0, []int{1}},
		{"d", model.StatusSeated, 0, []int{3, 4, 5, 6, 7, 8}},
		{"b", model.StatusSeated, 1, []int{1, 2, 3}},
		{"c", model.StatusSeated, 2, []int{1, 2, 3, 4}},
		{"e", model.StatusOverflow, -1, nil},
		{"z", model.StatusUnassigned, -1, nil},
	}, got)

	assert.Same(t, &pews[0], plan.Assignments[0].Pew)
	assert.Nil(t, plan.Assignments[4].Pew)

	assert.Equal(t, model.PlanStats{
		Households:           6,
		SeatedHouseholds:     4,
		OverflowHouseholds:   1,
		UnassignedHouseholds: 1,
		People:               22,
		SeatedPeople:         14,
		Rows:                 3,
		RowsUsed:             3,
		RowsUnmatched:        0,
	}, plan.Stats)
	assert.Len(t, plan.ByStatus(model.StatusSeated), 4)
}

func TestAssemble_DuplicateNamesStayDistinct(t *testing.T) {
	seatable := []model.Household{household("same", 2), household("same", 2)}
	seatable[1].Email = "second@example.com"
	pews := []model.Pew{{Section: "A", Row: "1", Capacity: 4}}

	pool := model.NewHouseholdPool([]int{2, 2})
	require.NoError(t, pool.TakeAll([]int{2, 2}))
	result := &model.MatchResult{Matches: []model.Match{{Row: 0, Households: []int{2, 2}}}, Pool: pool}

	plan, err := Assemble(AssembleInput{Seatable: seatable, Pews: pews, Result: result})
	require.NoError(t, err)
	require.Len(t, plan.Assignments, 2)
	assert.Equal(t, "same@example.com", plan.Assignments[0].Household.Email)
	assert.Equal(t, "second@example.com", plan.Assignments[1].Household.Email)
	assert.Equal(t, []int{1, 2}, plan.Assignments[0].Seats)
	assert.Equal(t, []int{3, 4}, plan.Assignments[1].Seats)
}

func TestAssemble_UnusedRows(t *testing.T) {
	pews := []model.Pew{{Capacity: 1}, {Capacity: 5}, {Capacity: 9}}
	result := &model.MatchResult{
		Matches:   []model.Match{{Row: 1, Households: []int{5}}},
		Unmatched: []int{0},
		Untouched: []int{2},
		Pool:      model.NewHouseholdPool(nil),
	}

	plan, err := Assemble(AssembleInput{Seatable: []model.Household{household("a", 5)}, Pews: pews, Result: result})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, plan.UnmatchedRows)
	assert.Equal(t, 2, plan.Stats.RowsUnmatched)
}

func TestAssemble_PoolSizesMustMatchOverflow(t *testing.T) {
	pews := []model.Pew{{Capacity: 5}}
	seatable := []model.Household{household("a", 2), household("b", 3)}

	// One household is left over in both, but the pool remembers a 2, not a 3.
	pool := model.NewHouseholdPool([]int{2, 3})
	require.NoError(t, pool.TakeAll([]int{3}))
	result := &model.MatchResult{Matches: []model.Match{{Row: 0, Households: []int{2}}}, Pool: pool}

	_, err := Assemble(AssembleInput{Seatable: seatable, Pews: pews, Result: result})
	assert.ErrorContains(t, err, "left unseated but pool holds")
}

func TestAssemble_Inconsistent(t *testing.T) {
	pews := []model.Pew{{Capacity: 5}}

	_, err := Assemble(AssembleInput{
		Seatable: []model.Household{household("a", 2)},
		Pews:     pews,
		Result:   &model.MatchResult{Matches: []model.Match{{Row: 0, Households: []int{3}}}},
	})
	assert.ErrorContains(t, err, "none is left")

	_, err = Assemble(AssembleInput{
		Seatable: []model.Household{household("a", 2)},
		Pews:     pews,
		Result:   &model.MatchResult{Matches: []model.Match{{Row: 4, Households: []int{2}}}},
	})
	assert.ErrorContains(t, err, "outside")

	_, err = Assemble(AssembleInput{})
	assert.Error(t, err)
}
