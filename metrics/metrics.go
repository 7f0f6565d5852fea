// SPDX-License-Identifier: MIT

// Package metrics defines Prometheus metrics for bi-cluster computations.
//
// A nil *Recorder is valid and records nothing, so library code can call it
// unconditionally.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Component kinds used as the "kind" label.
const (
	KindTrivial = "trivial"
	KindHard    = "hard"
)

// Recorder groups the collectors of one registry.
type Recorder struct {
	Components         *prometheus.CounterVec
	Subproblems        *prometheus.CounterVec
	SubproblemDuration *prometheus.HistogramVec
	ContractViolations prometheus.Counter
	Objective          prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
// A nil reg skips registration (useful in tests).
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Components: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biclust_components_total",
				Help: "Connected components seen, by kind",
			},
			[]string{"kind"},
		),
		Subproblems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biclust_subproblems_total",
				Help: "Hard subgraphs solved, by strategy and optimality",
			},
			[]string{"variant", "optimal"},
		),
		SubproblemDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "biclust_subproblem_duration_seconds",
				Help:    "Wall-clock time spent per hard subgraph",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"variant"},
		),
		ContractViolations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "biclust_contract_violations_total",
				Help: "Strategy results rejected as not bi-transitive",
			},
		),
		Objective: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "biclust_objective",
				Help: "Objective value of the last completed computation",
			},
		),
	}
	if reg == nil {
		return r, nil
	}
	for _, c := range []prometheus.Collector{
		r.Components, r.Subproblems, r.SubproblemDuration,
		r.ContractViolations, r.Objective,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveComponents counts trivial and hard components.
func (r *Recorder) ObserveComponents(trivial, hard int) {
	if r == nil {
		return
	}
	r.Components.WithLabelValues(KindTrivial).Add(float64(trivial))
	r.Components.WithLabelValues(KindHard).Add(float64(hard))
}

// ObserveSubproblem records one solved hard subgraph.
func (r *Recorder) ObserveSubproblem(variant string, optimal bool, d time.Duration) {
	if r == nil {
		return
	}
	r.Subproblems.WithLabelValues(variant, strconv.FormatBool(optimal)).Inc()
	r.SubproblemDuration.WithLabelValues(variant).Observe(d.Seconds())
}

// ObserveViolation counts a rejected strategy result.
func (r *Recorder) ObserveViolation() {
	if r == nil {
		return
	}
	r.ContractViolations.Inc()
}

// ObserveObjective sets the objective gauge.
func (r *Recorder) ObserveObjective(v float64) {
	if r == nil {
		return
	}
	r.Objective.Set(v)
}
