// SPDX-License-Identifier: MIT

package bicluster

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/biclust/metrics"
)

// Option configures Compute.
// Invalid values are recorded and surfaced as an error by Compute.
type Option func(*Options)

// Options holds the Compute configuration.
type Options struct {
	// Logger receives progress reports; default zap.NewNop().
	Logger *zap.Logger

	// Workers is the number of hard subgraphs solved concurrently; default 1
	// (strictly sequential).
	Workers int

	// Recorder collects Prometheus metrics; nil disables them.
	Recorder *metrics.Recorder

	// Label describes the instance and is copied into the Solution.
	Label string

	err error
}

// DefaultOptions returns sequential, silent options.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Workers: 1}
}

// WithLogger sets the progress logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers solves up to n hard subgraphs concurrently.
// n ≤ 0 is rejected with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrBadWorkers
			return
		}
		o.Workers = n
	}
}

// WithRecorder enables metrics.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *Options) { o.Recorder = r }
}

// WithLabel attaches an instance label to the solution.
func WithLabel(label string) Option {
	return func(o *Options) { o.Label = label }
}
