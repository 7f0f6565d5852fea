// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/biclust/bipartite"
)

// ErrBadNumber is returned for matrix entries that do not parse as floats.
var ErrBadNumber = errors.New("instance: malformed number")

// Format selects the matrix file format.
type Format int

const (
	// Text is whitespace-separated numbers, one matrix row per line.
	Text Format = iota
	// CSV is comma-separated numbers, one matrix row per record.
	CSV
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return CSV
	}
	return Text
}

// Load reads the matrix stored at path.
func Load(path string) (*bipartite.Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	defer f.Close()

	w, err := Read(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return w, nil
}

// Read parses a matrix in format f.
//
// Errors: ErrBadNumber, plus bipartite.ErrEmptyMatrix,
// bipartite.ErrRaggedMatrix and bipartite.ErrNonFiniteWeight from validation.
func Read(r io.Reader, f Format) (*bipartite.Weights, error) {
	var (
		rows [][]float64
		err  error
	)
	switch f {
	case CSV:
		rows, err = readCSV(r)
	default:
		rows, err = readText(r)
	}
	if err != nil {
		return nil, err
	}

	return bipartite.NewWeights(rows)
}

func readText(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := parseRow(strings.Fields(text), line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	return rows, nil
}

func readCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged input is reported by bipartite.NewWeights

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("instance: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(rec, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseRow(fields []string, line int) ([]float64, error) {
	row := make([]float64, len(fields))
	for k, s := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrBadNumber, line, k+1, s)
		}
		row[k] = v
	}
	return row, nil
}
