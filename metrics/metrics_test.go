// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biclust/metrics"
)

func TestRecorder_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveComponents(3, 2)
	r.ObserveSubproblem("exact", true, 10*time.Millisecond)
	r.ObserveSubproblem("exact", false, time.Second)
	r.ObserveViolation()
	r.ObserveObjective(4.5)

	require.Equal(t, 3.0, testutil.ToFloat64(r.Components.WithLabelValues(metrics.KindTrivial)))
	require.Equal(t, 2.0, testutil.ToFloat64(r.Components.WithLabelValues(metrics.KindHard)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Subproblems.WithLabelValues("exact", "true")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.ContractViolations))
	require.Equal(t, 4.5, testutil.ToFloat64(r.Objective))
	require.Equal(t, 1, testutil.CollectAndCount(r.SubproblemDuration))
}

func TestRecorder_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	_, err = metrics.NewRecorder(reg)
	require.Error(t, err)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	require.NotPanics(t, func() {
		r.ObserveComponents(1, 1)
		r.ObserveSubproblem("heuristic", false, time.Millisecond)
		r.ObserveViolation()
		r.ObserveObjective(1)
	})
}
