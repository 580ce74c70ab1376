package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/guimove/pewfit/internal/config"
	"github.com/guimove/pewfit/internal/logging"
	"github.com/guimove/pewfit/internal/metrics"
	"github.com/guimove/pewfit/internal/model"
	"github.com/guimove/pewfit/internal/report"
	"github.com/guimove/pewfit/internal/roster"
	"github.com/guimove/pewfit/internal/seating"
)

// Orchestrator coordinates the end-to-end seating pipeline.
type Orchestrator struct {
	Source  roster.Source
	Config  config.Config
	Writer  io.Writer
	Logger  logging.Logger
	Metrics metrics.Recorder

	// Meta is passed to the reporter; GeneratedAt is filled in per run.
	Meta report.ReportMeta
}

// New creates an orchestrator with the given dependencies.
func New(source roster.Source, cfg config.Config) *Orchestrator {
	return &Orchestrator{
		Source:  source,
		Config:  cfg,
		Writer:  os.Stdout,
		Logger:  logging.NewNop(),
		Metrics: metrics.NewNop(),
	}
}

// Run executes the full pipeline: load → trim → match → assemble → report.
func (o *Orchestrator) Run(ctx context.Context) (*model.SeatingPlan, error) {
	plan, err := o.Plan(ctx)
	if err != nil {
		return nil, err
	}

	meta := o.Meta
	meta.GeneratedAt = plan.CreatedAt

	reporter := report.NewReporter(o.Config.Output.Format, o.writer())
	if err := reporter.Report(ctx, plan, meta); err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}
	return plan, nil
}

// Plan runs the pipeline without reporting. A cancelled context abandons the
// run between stages and returns no plan.
func (o *Orchestrator) Plan(ctx context.Context) (plan *model.SeatingPlan, err error) {
	start := time.Now()
	log := logging.OrNop(o.Logger)
	rec := metrics.OrNop(o.Metrics)
	defer func() {
		rec.RecordRun(o.classify(err, rec), time.Since(start).Seconds())
	}()

	cfg := o.Config.Seating

	// Step 1: Load households and pews
	r, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	// Step 2: Apply the venue capacity limit
	seatable, cut := r.Households, []model.Household(nil)
	if limit, ok := cfg.CapacityLimit(); ok {
		seatable, cut = roster.TrimToCapacity(r.Households, limit)
		if len(cut) > 0 {
			log.Warn("households over capacity", "limit", limit, "cut", len(cut))
		}
	}

	// Step 3: Match households to rows
	margin := cfg.EffectiveMargin()
	log.Info("seating households",
		"households", len(seatable),
		"pews", len(r.Pews),
		"margin", margin)

	planner := &seating.RowByRow{SkipOptimize: cfg.SkipOptimize, Logger: log}
	pr, err := planner.Plan(ctx, seating.PlanInput{
		Sizes:      model.HouseholdSizes(seatable),
		Capacities: model.PewCapacities(r.Pews),
		Margin:     margin,
	})
	if err != nil {
		return nil, fmt.Errorf("matching rows: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Step 4: Attach household identities and seat numbers
	plan, err = roster.Assemble(roster.AssembleInput{
		Seatable: seatable,
		Cut:      cut,
		Pews:     r.Pews,
		Result:   pr.Result,
		Margin:   margin,
	})
	if err != nil {
		return nil, err
	}

	plan.ID = uuid.NewString()
	plan.CreatedAt = start
	plan.Leftover = pr.Leftover
	plan.Stats.Swaps = pr.Optimize.Swaps
	plan.Stats.Backfilled = pr.Optimize.Backfilled
	plan.Duration = time.Since(start)

	rec.RecordPlan(plan.Stats, plan.Leftover)
	log.Info("seating plan ready",
		"plan_id", plan.ID,
		"seated", plan.Stats.SeatedHouseholds,
		"overflow", plan.Stats.OverflowHouseholds,
		"unassigned", plan.Stats.UnassignedHouseholds,
		"unmatched_rows", plan.Stats.RowsUnmatched,
		"duration", plan.Duration)

	return plan, nil
}

// Compare runs the same roster against every configured margin and reports
// the ranked scenarios.
func (o *Orchestrator) Compare(ctx context.Context) ([]model.Recommendation, error) {
	cfg := o.Config
	log := logging.OrNop(o.Logger)

	r, err := o.load(ctx)
	if err != nil {
		return nil, err
	}

	seatable := r.Households
	if limit, ok := cfg.Seating.CapacityLimit(); ok {
		seatable, _ = roster.TrimToCapacity(r.Households, limit)
	}

	margins := cfg.Compare.Margins
	if len(margins) == 0 {
		margins = []int{cfg.Seating.EffectiveMargin()}
	}
	scenarios := seating.GenerateScenarios(margins)

	log.Info("comparing margins", "scenarios", len(scenarios), "households", len(seatable), "pews", len(r.Pews))

	engine := seating.NewEngine(
		&seating.RowByRow{SkipOptimize: cfg.Seating.SkipOptimize},
		seating.NewScorer(cfg.Seating.EffectiveMargin()),
	)
	if cfg.Compare.Parallelism > 0 {
		engine.Parallelism = cfg.Compare.Parallelism
	}

	recs, err := engine.RunAll(ctx, scenarios, model.HouseholdSizes(seatable), model.PewCapacities(r.Pews))
	if err != nil {
		return nil, fmt.Errorf("running scenarios: %w", err)
	}

	meta := o.Meta
	meta.GeneratedAt = time.Now()
	meta.TopN = cfg.Compare.TopN

	reporter := report.NewReporter(cfg.Output.Format, o.writer())
	if err := reporter.ReportComparison(ctx, recs, meta); err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}

	return recs, nil
}

func (o *Orchestrator) load(ctx context.Context) (*roster.Roster, error) {
	if o.Source == nil {
		return nil, fmt.Errorf("no roster source configured")
	}
	logging.OrNop(o.Logger).Debug("loading roster", "source", o.Source.Kind())

	r, err := o.Source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

func (o *Orchestrator) writer() io.Writer {
	if o.Writer == nil {
		return os.Stdout
	}
	return o.Writer
}

// classify maps a run error to a metrics result, recording each rejected
// input field.
func (o *Orchestrator) classify(err error, rec metrics.Recorder) string {
	if err == nil {
		return metrics.ResultSuccess
	}

	var verrs roster.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, e := range verrs {
			rec.RecordValidationError(e.File)
		}
		return metrics.ResultInvalid
	case errors.Is(err, roster.ErrNoHouseholds), errors.Is(err, roster.ErrNoPews):
		return metrics.ResultInvalid
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.ResultCancelled
	default:
		return metrics.ResultError
	}
}
