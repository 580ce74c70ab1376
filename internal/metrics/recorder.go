// Package metrics records seating run outcomes.
package metrics

import (
	"github.com/guimove/pewfit/internal/model"
)

// Run results.
const (
	ResultSuccess   = "success"
	ResultInvalid   = "invalid"
	ResultError     = "error"
	ResultCancelled = "cancelled"
)

// Recorder abstracts where run metrics go.
type Recorder interface {
	// RecordRun records one pipeline run and how long it took.
	RecordRun(result string, seconds float64)

	// RecordPlan records the counts of a finished plan.
	RecordPlan(stats model.PlanStats, leftover model.LeftoverReport)

	// RecordValidationError records one bad input field.
	RecordValidationError(file string)

	// RecordRequest records one HTTP request.
	RecordRequest(route string, code int, seconds float64)
}

// NopRecorder discards everything.
type NopRecorder struct{}

var _ Recorder = (*NopRecorder)(nil)

// NewNop creates a recorder that discards everything.
func NewNop() *NopRecorder {
	return &NopRecorder{}
}

// RecordRun discards the run.
func (n *NopRecorder) RecordRun(_ string, _ float64) {}

// RecordPlan discards the plan.
func (n *NopRecorder) RecordPlan(_ model.PlanStats, _ model.LeftoverReport) {}

// RecordValidationError discards the error.
func (n *NopRecorder) RecordValidationError(_ string) {}

// RecordRequest discards the request.
func (n *NopRecorder) RecordRequest(_ string, _ int, _ float64) {}

// OrNop returns r, or a no-op recorder when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return NewNop()
	}
	return r
}
