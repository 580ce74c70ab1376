package model

import "sort"

// Match assigns household sizes (without margin) to one row.
type Match struct {
	Row        int   `json:"row" yaml:"row"`
	Households []int `json:"households" yaml:"households"`
}

// People returns the number of people seated in the row.
func (m Match) People() int {
	total := 0
	for _, s := range m.Households {
		total += s
	}
	return total
}

// Clone returns a copy whose household list can be mutated independently.
func (m Match) Clone() Match {
	return Match{Row: m.Row, Households: append([]int(nil), m.Households...)}
}

// MatchResult is the engine output for one run. A row with no match is in
// exactly one of Unmatched or Untouched; use UnusedRows for all of them. With
// no households at all, every row is untouched.
type MatchResult struct {
	// Matches in ascending row order.
	Matches []Match
	// Rows that were tried and could not take any household, ascending.
	Unmatched []int
	// Rows never tried because every household was already seated, ascending.
	Untouched []int
	// Households that found no row.
	Pool *HouseholdPool
}

// UnusedRows returns every row without a match (unmatched and untouched),
// ascending. This is the "unmatched rows" list callers report.
func (r *MatchResult) UnusedRows() []int {
	out := make([]int, 0, len(r.Unmatched)+len(r.Untouched))
	out = append(out, r.Unmatched...)
	out = append(out, r.Untouched...)
	sort.Ints(out)
	return out
}

// SeatedHouseholds returns the number of households placed in a row.
func (r *MatchResult) SeatedHouseholds() int {
	n := 0
	for i := range r.Matches {
		n += len(r.Matches[i].Households)
	}
	return n
}

// SeatedPeople returns the number of people placed in a row.
func (r *MatchResult) SeatedPeople() int {
	n := 0
	for i := range r.Matches {
		n += r.Matches[i].People()
	}
	return n
}
