package model

import (
	"fmt"
	"sort"
)

// HouseholdPool is a multiset of household sizes still waiting for a row.
//
// Sizes remember the order in which they were first added; Expand lists them
// in that order. Counts never go below zero.
type HouseholdPool struct {
	order  []int
	counts map[int]int
}

// NewHouseholdPool builds a pool holding one entry per element of sizes.
func NewHouseholdPool(sizes []int) *HouseholdPool {
	p := &HouseholdPool{counts: make(map[int]int)}
	for _, s := range sizes {
		p.Add(s)
	}
	return p
}

// Add puts one household of the given size into the pool.
func (p *HouseholdPool) Add(size int) {
	if p.counts == nil {
		p.counts = make(map[int]int)
	}
	if _, seen := p.counts[size]; !seen {
		p.order = append(p.order, size)
	}
	p.counts[size]++
}

// TakeAll removes one household per element of sizes. Either every size is
// taken or, on error, none is.
func (p *HouseholdPool) TakeAll(sizes []int) error {
	need := make(map[int]int, len(sizes))
	for _, s := range sizes {
		need[s]++
	}
	for s, n := range need {
		if p.counts[s] < n {
			return fmt.Errorf("pool holds %d households of size %d, need %d", p.counts[s], s, n)
		}
	}
	for _, s := range sizes {
		p.counts[s]--
	}
	return nil
}

// Count returns how many households of the given size remain.
func (p *HouseholdPool) Count(size int) int {
	return p.counts[size]
}

// Len returns the total number of households remaining.
func (p *HouseholdPool) Len() int {
	n := 0
	for _, c := range p.counts {
		n += c
	}
	return n
}

// Empty reports whether no household remains.
func (p *HouseholdPool) Empty() bool {
	return p.Len() == 0
}

// People returns the number of people remaining.
func (p *HouseholdPool) People() int {
	n := 0
	for s, c := range p.counts {
		n += s * c
	}
	return n
}

// Expand lists every remaining household as size+margin, sizes in first-seen
// order, each repeated by its count.
func (p *HouseholdPool) Expand(margin int) []int {
	out := make([]int, 0, p.Len())
	for _, s := range p.order {
		for i := 0; i < p.counts[s]; i++ {
			out = append(out, s+margin)
		}
	}
	return out
}

// Counts returns a copy of the non-zero counts keyed by size.
func (p *HouseholdPool) Counts() map[int]int {
	out := make(map[int]int)
	for s, c := range p.counts {
		if c > 0 {
			out[s] = c
		}
	}
	return out
}

// String renders the pool as "{size:count ...}" with sizes ascending.
func (p *HouseholdPool) String() string {
	counts := p.Counts()
	sizes := make([]int, 0, len(counts))
	for s := range counts {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)

	out := "{"
	for i, s := range sizes {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%d:%d", s, counts[s])
	}
	return out + "}"
}
