// SPDX-License-Identifier: MIT

// Command biclust partitions a weighted bipartite matrix into bi-clusters.
//
//	biclust solve matrix.csv --algorithm heuristic --bias 0.8 --seed 1 --output out.xml
//	biclust generate --rows 30 --cols 20 --clusters 4 --noise 0.1 --output m.csv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "biclust:", err)
		stop()
		os.Exit(1)
	}
}
