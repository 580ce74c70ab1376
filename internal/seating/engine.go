package seating

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/guimove/pewfit/internal/model"
)

// Engine runs one plan per scenario and ranks the outcomes.
type Engine struct {
	Planner     Planner
	Scorer      *Scorer
	Parallelism int
}

// NewEngine creates an engine.
func NewEngine(planner Planner, scorer *Scorer) *Engine {
	return &Engine{
		Planner:     planner,
		Scorer:      scorer,
		Parallelism: runtime.NumCPU(),
	}
}

// Scenario is one margin to evaluate.
type Scenario struct {
	Name   string
	Margin int
}

// GenerateScenarios returns one scenario per distinct non-negative margin,
// in the given order.
func GenerateScenarios(margins []int) []Scenario {
	seen := make(map[int]bool)
	var scenarios []Scenario
	for _, m := range margins {
		if m < 0 || seen[m] {
			continue
		}
		seen[m] = true
		scenarios = append(scenarios, Scenario{Name: fmt.Sprintf("margin-%d", m), Margin: m})
	}
	return scenarios
}

// RunAll plans every scenario against the same households and rows. Each
// scenario gets its own household pool.
func (e *Engine) RunAll(
	ctx context.Context,
	scenarios []Scenario,
	sizes []int,
	capacities []int,
) ([]model.Recommendation, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no seating scenarios provided")
	}

	outcomes := make([]model.Outcome, len(scenarios))
	errs := make([]error, len(scenarios))

	parallelism := e.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	sem := make(chan struct{}, parallelism)
	var wg sync.WaitGroup

	for i, sc := range scenarios {
		wg.Add(1)
		go func(idx int, scenario Scenario) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcome, err := e.runOne(ctx, scenario, sizes, capacities)
			outcomes[idx] = outcome
			errs[idx] = err
		}(i, sc)
	}

	wg.Wait()

	var successful []model.Outcome
	for i, err := range errs {
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		successful = append(successful, outcomes[i])
	}

	if len(successful) == 0 {
		return nil, fmt.Errorf("all seating scenarios failed")
	}

	return e.Scorer.Rank(successful), nil
}

func (e *Engine) runOne(
	ctx context.Context,
	scenario Scenario,
	sizes []int,
	capacities []int,
) (model.Outcome, error) {
	start := time.Now()

	pr, err := e.Planner.Plan(ctx, PlanInput{
		Sizes:      sizes,
		Capacities: capacities,
		Margin:     scenario.Margin,
	})
	if err != nil {
		return model.Outcome{}, fmt.Errorf("planning scenario %q: %w", scenario.Name, err)
	}

	return BuildOutcome(pr, scenario, len(sizes), sum(sizes), time.Since(start)), nil
}

// BuildOutcome computes aggregate counts from a plan result.
func BuildOutcome(pr *PlanResult, scenario Scenario, households, people int, d time.Duration) model.Outcome {
	r := pr.Result
	return model.Outcome{
		Scenario:           scenario.Name,
		Margin:             scenario.Margin,
		Matches:            r.Matches,
		UnmatchedRows:      r.UnusedRows(),
		Residual:           r.Pool.Counts(),
		Households:         households,
		People:             people,
		SeatedHouseholds:   r.SeatedHouseholds(),
		SeatedPeople:       r.SeatedPeople(),
		UnseatedHouseholds: r.Pool.Len(),
		Leftover:           pr.Leftover,
		Swaps:              pr.Optimize.Swaps,
		Backfilled:         pr.Optimize.Backfilled,
		Duration:           d,
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
