// SPDX-License-Identifier: MIT

package exact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/biclust/bipartite"
)

func TestSafeBound_RelaxesLPValue(t *testing.T) {
	require.InDelta(t, -lpSlack, safeBound(0), 1e-15)
	require.InDelta(t, 1000-1000*lpSlack, safeBound(1000), 1e-12)
	require.Less(t, safeBound(-5), -5.0)
}

func TestProvenBy(t *testing.T) {
	e := &engine{}
	require.False(t, e.provenBy(0), "no root bound, nothing is proven")

	e.rootLB, e.haveLB = safeBound(10), true
	require.False(t, e.provenBy(10+1e-9), "round-off above the LP value must not prove optimality")
	require.True(t, e.provenBy(9.5))
}

func TestHalt_PollsEveryNode(t *testing.T) {
	w := bipartite.MustWeights([][]float64{{5, 5}, {5, -1}})
	ctx, cancel := context.WithCancel(context.Background())
	e := newEngine(ctx, w, bipartite.BuildAll(w))

	require.False(t, e.halt())
	cancel()
	require.True(t, e.halt(), "cancellation is seen by the very next node")
	require.True(t, e.stopped)
}
