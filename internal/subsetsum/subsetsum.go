// Package subsetsum finds subsets of a multiset of positive integers that sum
// to a target, either exactly or as closely as possible without exceeding it.
package subsetsum

// Mode selects how the target is interpreted.
type Mode int

const (
	// Exact requires the subset to sum to the target.
	Exact Mode = iota
	// AtMost picks the largest achievable sum that does not exceed the target.
	AtMost
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case AtMost:
		return "at-most"
	default:
		return "unknown"
	}
}

// step records how a (prefix, sum) cell became achievable.
type step uint8

const (
	// unreachable: the prefix cannot produce this sum.
	unreachable step = iota
	// stop: the item at this prefix achieves the sum alone.
	stop
	// follow: the shorter prefix already achieves the sum; skip this item.
	follow
	// add: this item plus the shorter prefix at (sum - item).
	add
)

// table holds provenance for every (prefix, sum) pair, row-major.
type table struct {
	values []int
	width  int // total + 1
	cells  []step
}

func (t *table) at(i, s int) step { return t.cells[i*t.width+s] }

func (t *table) set(i, s int, st step) { t.cells[i*t.width+s] = st }

// Solve returns a subset of values that sums to target (Exact) or to the
// largest achievable sum not exceeding target (AtMost). The second return
// value is false when no subset qualifies; that is an ordinary outcome.
//
// Each occurrence of a duplicated value is an independent item. The empty
// subset is never returned: a target of 0, or a target smaller than every
// value, reports no subset. Values must be positive.
//
// The witness is deterministic for a given input order. Time and memory are
// O(len(values) * sum(values)).
func Solve(values []int, target int, mode Mode) ([]int, bool) {
	if len(values) == 0 || target < 0 {
		return nil, false
	}

	t := build(values)
	last := len(values) - 1

	var sum int
	switch mode {
	case Exact:
		if target >= t.width || t.at(last, target) == unreachable {
			return nil, false
		}
		sum = target
	case AtMost:
		sum = -1
		for s := min(target, t.width-1); s >= 0; s-- {
			if t.at(last, s) != unreachable {
				sum = s
				break
			}
		}
		if sum < 0 {
			return nil, false
		}
	default:
		return nil, false
	}

	return t.witness(last, sum), true
}

// build fills the provenance table prefix by prefix. Within a cell, follow
// wins over stop, and stop wins over add.
func build(values []int) *table {
	total := 0
	for _, v := range values {
		total += v
	}

	t := &table{
		values: values,
		width:  total + 1,
		cells:  make([]step, len(values)*(total+1)),
	}

	if v := values[0]; v >= 0 && v < t.width {
		t.set(0, v, stop)
	}

	for i := 1; i < len(values); i++ {
		v := values[i]
		for s := 0; s < t.width; s++ {
			switch {
			case t.at(i-1, s) != unreachable:
				t.set(i, s, follow)
			case v == s:
				t.set(i, s, stop)
			case s-v >= 0 && s-v < t.width && t.at(i-1, s-v) != unreachable:
				t.set(i, s, add)
			}
		}
	}

	return t
}

// witness walks provenance back from (i, s) and collects the chosen items.
func (t *table) witness(i, s int) []int {
	var subset []int
	for {
		switch t.at(i, s) {
		case stop:
			return append(subset, t.values[i])
		case follow:
			i--
		case add:
			subset = append(subset, t.values[i])
			s -= t.values[i]
			i--
		default:
			// Unreachable cells are never on a reconstruction path.
			return subset
		}
	}
}
