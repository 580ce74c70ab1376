package seating

import (
	"testing"

	"github.com/guimove/pewfit/internal/model"
)

func TestAnalyzeLeftover_AllPerfect(t *testing.T) {
	matches := []model.Match{
		{Row: 0, Households: []int{2, 1, 5}},
		{Row: 1, Households: []int{4}},
	}
	report := AnalyzeLeftover(matches, []int{14, 4}, 3)

	if report.PerfectRows != 2 || report.ImperfectRows != 0 {
		t.Errorf("perfect/imperfect = %d/%d, want 2/0", report.PerfectRows, report.ImperfectRows)
	}
	if report.TotalLeftover != 0 || report.MaxLeftover != 0 {
		t.Errorf("expected no leftover, got total=%d max=%d", report.TotalLeftover, report.MaxLeftover)
	}
	if report.Utilization != 12.0/18.0 {
		t.Errorf("utilization = %v, want %v", report.Utilization, 12.0/18.0)
	}
}

func TestAnalyzeLeftover_Mixed(t *testing.T) {
	matches := []model.Match{
		{Row: 0, Households: []int{6}},
		{Row: 2, Households: []int{3}},
		{Row: 3, Households: []int{1}},
	}
	report := AnalyzeLeftover(matches, []int{6, 100, 8, 4}, 3)

	if report.PerfectRows != 1 || report.ImperfectRows != 2 {
		t.Errorf("perfect/imperfect = %d/%d, want 1/2", report.PerfectRows, report.ImperfectRows)
	}
	if report.TotalLeftover != 8 {
		t.Errorf("total leftover = %d, want 8", report.TotalLeftover)
	}
	if report.MaxLeftover != 5 {
		t.Errorf("max leftover = %d, want 5", report.MaxLeftover)
	}
}

func TestAnalyzeLeftover_NoMatches(t *testing.T) {
	report := AnalyzeLeftover(nil, []int{5}, 1)
	if report != (model.LeftoverReport{}) {
		t.Errorf("expected zero report, got %+v", report)
	}
}
