package model

import (
	"fmt"
	"strings"
)

// Household is one reservation: a group that sits together and counts as a
// single unit for seating.
type Household struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Size      int    `json:"size" yaml:"size"`
	Email     string `json:"email" yaml:"email"`
}

// Name returns "First Last", trimmed.
func (h Household) Name() string {
	return strings.TrimSpace(h.FirstName + " " + h.LastName)
}

// TotalPeople returns the number of people across households.
func TotalPeople(households []Household) int {
	total := 0
	for i := range households {
		total += households[i].Size
	}
	return total
}

// HouseholdSizes returns the sizes of households in input order.
func HouseholdSizes(households []Household) []int {
	sizes := make([]int, len(households))
	for i := range households {
		sizes[i] = households[i].Size
	}
	return sizes
}

// Pew is one physical seating row.
type Pew struct {
	Section  string `json:"section" yaml:"section"`
	Row      string `json:"row" yaml:"row"`
	Door     string `json:"door,omitempty" yaml:"door,omitempty"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

// Label returns a human-readable location, e.g. "Section A, Row 3".
func (p Pew) Label() string {
	switch {
	case p.Section == "" && p.Row == "":
		return "-"
	case p.Section == "":
		return "Row " + p.Row
	case p.Row == "":
		return "Section " + p.Section
	default:
		return fmt.Sprintf("Section %s, Row %s", p.Section, p.Row)
	}
}

// PewCapacities returns the capacities of pews in input order.
func PewCapacities(pews []Pew) []int {
	caps := make([]int, len(pews))
	for i := range pews {
		caps[i] = pews[i].Capacity
	}
	return caps
}

// TotalCapacity returns the number of seats across pews, ignoring spacing.
func TotalCapacity(pews []Pew) int {
	total := 0
	for i := range pews {
		total += pews[i].Capacity
	}
	return total
}
