// SPDX-License-Identifier: MIT

package exact

import (
	"time"

	"go.uber.org/zap"
)

// DefaultMaxLPRows caps the LP relaxation size (constraints + bounds) when
// Options.MaxLPRows is zero.
const DefaultMaxLPRows = 2000

// Options configures an exact run.
//
// TimeLimit ≤ 0 means no limit. Tune enables the LP root bound.
type Options struct {
	TimeLimit time.Duration
	Tune      bool
	MaxLPRows int
	Logger    *zap.Logger
}

// DefaultOptions returns a 60 second, untuned configuration.
func DefaultOptions() Options {
	return Options{TimeLimit: 60 * time.Second, MaxLPRows: DefaultMaxLPRows}
}
