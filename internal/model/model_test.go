package model

import (
	"testing"
)

func TestHouseholdPool_ExpandKeepsFirstSeenOrder(t *testing.T) {
	pool := NewHouseholdPool([]int{6, 1, 3, 2, 1, 4, 4})

	got := pool.Expand(0)
	want := []int{6, 1, 1, 3, 2, 4, 4}
	if len(got) != len(want) {
		t.Fatalf("Expand(0) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expand(0) = %v, want %v", got, want)
		}
	}

	withMargin := pool.Expand(4)
	if withMargin[0] != 10 || withMargin[6] != 8 {
		t.Errorf("Expand(4) = %v, want margin added to every size", withMargin)
	}
}

func TestHouseholdPool_TakeAllNeverNegative(t *testing.T) {
	pool := NewHouseholdPool([]int{3})

	if err := pool.TakeAll([]int{3}); err != nil {
		t.Fatalf("first TakeAll([3]) error = %v", err)
	}
	if err := pool.TakeAll([]int{3}); err == nil {
		t.Error("expected second TakeAll([3]) to fail")
	}
	if err := pool.TakeAll([]int{5}); err == nil {
		t.Error("expected TakeAll of unknown size to fail")
	}
	if pool.Count(3) != 0 {
		t.Errorf("Count(3) = %d, want 0", pool.Count(3))
	}
	if !pool.Empty() {
		t.Error("expected pool to be empty")
	}
}

func TestHouseholdPool_TakeAllIsAtomic(t *testing.T) {
	pool := NewHouseholdPool([]int{2, 2, 5})

	if err := pool.TakeAll([]int{2, 2, 2}); err == nil {
		t.Fatal("expected error taking three 2s from two")
	}
	if pool.Len() != 3 {
		t.Errorf("failed TakeAll changed the pool: Len() = %d", pool.Len())
	}

	if err := pool.TakeAll([]int{2, 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Len() != 1 || pool.Count(2) != 1 {
		t.Errorf("after TakeAll: %s", pool)
	}
}

func TestHouseholdPool_ZeroCountsKeepOrder(t *testing.T) {
	pool := NewHouseholdPool([]int{4, 2})
	if err := pool.TakeAll([]int{4}); err != nil {
		t.Fatal(err)
	}
	pool.Add(4)

	got := pool.Expand(0)
	if len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Errorf("Expand(0) = %v, want [4 2]", got)
	}
}

func TestHouseholdPool_Counters(t *testing.T) {
	pool := NewHouseholdPool([]int{4, 2, 4})
	if err := pool.TakeAll([]int{2}); err != nil {
		t.Fatal(err)
	}

	if pool.People() != 8 {
		t.Errorf("People() = %d, want 8", pool.People())
	}
	counts := pool.Counts()
	if len(counts) != 1 || counts[4] != 2 {
		t.Errorf("Counts() = %v, want map[4:2]", counts)
	}
	if s := pool.String(); s != "{4:2}" {
		t.Errorf("String() = %q", s)
	}

	var zero HouseholdPool
	zero.Add(7)
	if zero.Len() != 1 {
		t.Error("zero-value pool should accept Add")
	}
}

func TestMatchResult_Counts(t *testing.T) {
	r := &MatchResult{
		Matches: []Match{
			{Row: 0, Households: []int{6}},
			{Row: 2, Households: []int{3, 1}},
		},
		Pool: NewHouseholdPool(nil),
	}

	if r.SeatedHouseholds() != 3 {
		t.Errorf("SeatedHouseholds() = %d, want 3", r.SeatedHouseholds())
	}
	if r.SeatedPeople() != 10 {
		t.Errorf("SeatedPeople() = %d, want 10", r.SeatedPeople())
	}
}

func TestMatch_CloneIsIndependent(t *testing.T) {
	m := Match{Row: 1, Households: []int{2, 3}}
	c := m.Clone()
	c.Households[0] = 9

	if m.Households[0] != 2 {
		t.Error("mutating the clone changed the original")
	}
}

func TestMarginForSeparation(t *testing.T) {
	tests := []struct {
		name   string
		feet   float64
		inches float64
		want   int
	}{
		{"six feet, 18in seats", 6, 18, 4},
		{"rounds up", 6, 20, 4},
		{"exact", 3, 18, 2},
		{"no separation", 0, 18, 0},
		{"no width", 6, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarginForSeparation(tt.feet, tt.inches); got != tt.want {
				t.Errorf("MarginForSeparation(%v, %v) = %d, want %d", tt.feet, tt.inches, got, tt.want)
			}
		})
	}
}

func TestPew_Label(t *testing.T) {
	tests := []struct {
		pew  Pew
		want string
	}{
		{Pew{Section: "A", Row: "3"}, "Section A, Row 3"},
		{Pew{Row: "3"}, "Row 3"},
		{Pew{Section: "Balcony"}, "Section Balcony"},
		{Pew{}, "-"},
	}

	for _, tt := range tests {
		if got := tt.pew.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestHouseholdHelpers(t *testing.T) {
	hs := []Household{
		{FirstName: "Ada", LastName: "Byron", Size: 3},
		{FirstName: "Alan", LastName: "", Size: 1},
	}

	if TotalPeople(hs) != 4 {
		t.Errorf("TotalPeople = %d, want 4", TotalPeople(hs))
	}
	sizes := HouseholdSizes(hs)
	if len(sizes) != 2 || sizes[0] != 3 || sizes[1] != 1 {
		t.Errorf("HouseholdSizes = %v", sizes)
	}
	if hs[1].Name() != "Alan" {
		t.Errorf("Name() = %q, want trimmed", hs[1].Name())
	}

	pews := []Pew{{Capacity: 6}, {Capacity: 9}}
	if TotalCapacity(pews) != 15 {
		t.Errorf("TotalCapacity = %d", TotalCapacity(pews))
	}
	if c := PewCapacities(pews); c[1] != 9 {
		t.Errorf("PewCapacities = %v", c)
	}
}

func TestMatchResult_UnusedRows(t *testing.T) {
	r := &MatchResult{Unmatched: []int{1, 4}, Untouched: []int{5, 6}}
	got := r.UnusedRows()
	want := []int{1, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("UnusedRows() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UnusedRows() = %v, want %v", got, want)
		}
	}
}
