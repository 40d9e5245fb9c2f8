// Package metrics records Prometheus metrics for solver runs and exports them
// in the node-exporter textfile format, which suits a batch CLI with no HTTP server.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/towercover/solution"
)

// Result label values for towercover_solves_total.
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultInvalid = "invalid"
)

// Collector bundles the solver metrics registered against one registry.
type Collector struct {
	gatherer prometheus.Gatherer

	Solves           *prometheus.CounterVec
	Durations        *prometheus.HistogramVec
	GreedyIterations prometheus.Counter
	LastPenalty      *prometheus.GaugeVec
	LastTowers       *prometheus.GaugeVec
}

// NewCollector registers solver metrics against reg, defaulting to the global
// Prometheus registry when reg is nil. Registering twice against the same registry
// reuses the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	solves, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "towercover_solves_total",
		Help: "Total number of solver runs, labeled by strategy and result.",
	}, []string{"strategy", "result"}), "towercover_solves_total")
	if err != nil {
		return nil, err
	}
	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "towercover_solve_duration_seconds",
		Help:    "Solver wall-clock time in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
	}, []string{"strategy"}), "towercover_solve_duration_seconds")
	if err != nil {
		return nil, err
	}
	iterations, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "towercover_greedy_iterations_total",
		Help: "Total number of towers committed by the greedy solver.",
	}), "towercover_greedy_iterations_total")
	if err != nil {
		return nil, err
	}
	penalty, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "towercover_last_penalty",
		Help: "Penalty of the most recent successful solution, by strategy.",
	}, []string{"strategy"}), "towercover_last_penalty")
	if err != nil {
		return nil, err
	}
	towers, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "towercover_last_towers",
		Help: "Tower count of the most recent successful solution, by strategy.",
	}, []string{"strategy"}), "towercover_last_towers")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		Solves:           solves,
		Durations:        durations,
		GreedyIterations: iterations,
		LastPenalty:      penalty,
		LastTowers:       towers,
	}, nil
}

// Observe records one solver run. A nil error with an invalid solution counts as
// ResultInvalid; gauges are only updated for valid solutions.
func (c *Collector) Observe(strategy string, sol *solution.Solution, err error, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Durations.WithLabelValues(strategy).Observe(elapsed.Seconds())

	switch {
	case err != nil:
		c.Solves.WithLabelValues(strategy, ResultError).Inc()
	case sol == nil || !sol.Valid():
		c.Solves.WithLabelValues(strategy, ResultInvalid).Inc()
	default:
		c.Solves.WithLabelValues(strategy, ResultOK).Inc()
		c.LastPenalty.WithLabelValues(strategy).Set(sol.Penalty())
		c.LastTowers.WithLabelValues(strategy).Set(float64(len(sol.Towers)))
	}
}

// IncIterations counts one committed greedy tower. It is meant to be called from
// the cover.WithOnSelect hook.
func (c *Collector) IncIterations() {
	if c == nil {
		return
	}
	c.GreedyIterations.Inc()
}

// WriteTextfile writes every metric of the collector's registry to path in the
// Prometheus text exposition format. The file is written atomically.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return errors.New("metrics: collector is nil")
	}
	if path == "" {
		return errors.New("metrics: textfile path is empty")
	}

	return prometheus.WriteToTextfile(path, c.gatherer)
}

// register adds col to reg, or returns the already registered collector of the same type.
func register[T prometheus.Collector](reg prometheus.Registerer, col T, name string) (T, error) {
	if err := reg.Register(col); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}

	return col, nil
}
