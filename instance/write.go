// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/biclust/bipartite"
)

// Write stores w in format f. Numbers use the shortest exact representation.
func Write(dst io.Writer, w *bipartite.Weights, f Format) error {
	n, m := w.Dims()
	fields := make([]string, m)
	format := func(i int) []string {
		for k, v := range w.RawRow(i) {
			fields[k] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return fields
	}

	if f == CSV {
		cw := csv.NewWriter(dst)
		for i := 0; i < n; i++ {
			if err := cw.Write(format(i)); err != nil {
				return fmt.Errorf("instance: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	}

	bw := bufio.NewWriter(dst)
	for i := 0; i < n; i++ {
		if _, err := bw.WriteString(strings.Join(format(i), " ") + "\n"); err != nil {
			return fmt.Errorf("instance: %w", err)
		}
	}
	return bw.Flush()
}

// Save writes w to path in the format implied by its extension.
func Save(path string, w *bipartite.Weights) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, w, FormatOf(path))
}
