package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"

	"github.com/guimove/pewfit/internal/model"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "pewfit"

// PrometheusRecorder implements Recorder backed by Prometheus.
type PrometheusRecorder struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram

	households   *prometheus.CounterVec
	seatedPeople prometheus.Counter
	rows         *prometheus.CounterVec
	swaps        prometheus.Counter
	backfilled   prometheus.Counter
	leftover     prometheus.Histogram
	utilization  prometheus.Gauge

	validationErrors *prometheus.CounterVec

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var _ Recorder = (*PrometheusRecorder)(nil)

// NewPrometheus creates a recorder registering on reg (the default
// registerer when nil) under namespace ("pewfit" when empty). Metrics are
// registered on first use.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &PrometheusRecorder{reg: reg, namespace: namespace}
}

func (p *PrometheusRecorder) ensureRegistered() {
	p.once.Do(func() {
		p.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "total",
			Help:      "Seating runs by result (success, invalid, error, cancelled).",
		}, []string{"result"})
		p.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall time of a seating run in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 10), // 1ms .. ~4s
		})

		p.households = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "households_total",
			Help:      "Households by final status (seated, overflow, unassigned).",
		}, []string{"status"})
		p.seatedPeople = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "seated_people_total",
			Help:      "People given a seat.",
		})
		p.rows = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "rows_total",
			Help:      "Rows by state (used, unmatched).",
		}, []string{"state"})
		p.swaps = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "swaps_total",
			Help:      "Household swaps made by the leftover pass.",
		})
		p.backfilled = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "backfilled_households_total",
			Help:      "Households seated by the backfill pass.",
		})
		p.leftover = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "leftover_seats",
			Help:      "Unused margin-extended seats across matched rows per plan.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		})
		p.utilization = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "plan",
			Name:      "utilization_ratio",
			Help:      "Seated people over seats in matched rows, last plan.",
		})

		p.validationErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "input",
			Name:      "validation_errors_total",
			Help:      "Rejected input fields by file.",
		}, []string{"file"})

		p.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"})
		p.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"})

		p.reg.MustRegister(p.runs)
		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.households)
		p.reg.MustRegister(p.seatedPeople)
		p.reg.MustRegister(p.rows)
		p.reg.MustRegister(p.swaps)
		p.reg.MustRegister(p.backfilled)
		p.reg.MustRegister(p.leftover)
		p.reg.MustRegister(p.utilization)
		p.reg.MustRegister(p.validationErrors)
		p.reg.MustRegister(p.requests)
		p.reg.MustRegister(p.requestDuration)
		p.reg.MustRegister(versioncollector.NewCollector(p.namespace))
	})
}

// RecordRun records one pipeline run.
func (p *PrometheusRecorder) RecordRun(result string, seconds float64) {
	p.ensureRegistered()
	p.runs.WithLabelValues(result).Inc()
	p.runDuration.Observe(seconds)
}

// RecordPlan records the counts of a finished plan.
func (p *PrometheusRecorder) RecordPlan(stats model.PlanStats, leftover model.LeftoverReport) {
	p.ensureRegistered()
	p.households.WithLabelValues(string(model.StatusSeated)).Add(float64(stats.SeatedHouseholds))
	p.households.WithLabelValues(string(model.StatusOverflow)).Add(float64(stats.OverflowHouseholds))
	p.households.WithLabelValues(string(model.StatusUnassigned)).Add(float64(stats.UnassignedHouseholds))
	p.seatedPeople.Add(float64(stats.SeatedPeople))
	p.rows.WithLabelValues("used").Add(float64(stats.RowsUsed))
	p.rows.WithLabelValues("unmatched").Add(float64(stats.RowsUnmatched))
	p.swaps.Add(float64(stats.Swaps))
	p.backfilled.Add(float64(stats.Backfilled))
	p.leftover.Observe(float64(leftover.TotalLeftover))
	p.utilization.Set(leftover.Utilization)
}

// RecordValidationError records one bad input field.
func (p *PrometheusRecorder) RecordValidationError(file string) {
	p.ensureRegistered()
	p.validationErrors.WithLabelValues(file).Inc()
}

// RecordRequest records one HTTP request.
func (p *PrometheusRecorder) RecordRequest(route string, code int, seconds float64) {
	p.ensureRegistered()
	p.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	p.requestDuration.WithLabelValues(route).Observe(seconds)
}
