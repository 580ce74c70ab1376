package seating

import (
	"github.com/guimove/pewfit/internal/model"
)

// AnalyzeLeftover summarizes spare room across matched rows.
func AnalyzeLeftover(matches []model.Match, capacities []int, margin int) model.LeftoverReport {
	var report model.LeftoverReport
	var seated, seats int

	for i := range matches {
		m := &matches[i]
		left := Leftover(capacities[m.Row], m.Households, margin)

		if left == 0 {
			report.PerfectRows++
		} else {
			report.ImperfectRows++
		}
		report.TotalLeftover += left
		report.MaxLeftover = max(report.MaxLeftover, left)

		seated += m.People()
		seats += capacities[m.Row]
	}

	if seats > 0 {
		report.Utilization = float64(seated) / float64(seats)
	}
	return report
}
