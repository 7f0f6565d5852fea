// SPDX-License-Identifier: MIT

package export

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/biclust/bicluster"
)

// ErrUnknownFormat is returned by Save for unsupported file extensions.
var ErrUnknownFormat = errors.New("export: unknown output format")

// Record is the serialisable form of a bicluster.Solution.
type Record struct {
	XMLName   xml.Name        `xml:"bi_clusters" yaml:"-"`
	Instance  string          `xml:"instance,attr" yaml:"instance"`
	RunID     string          `xml:"run_id,attr,omitempty" yaml:"run_id,omitempty"`
	Objective float64         `xml:"obj_val,attr" yaml:"objective"`
	Optimal   bool            `xml:"is_optimal,attr" yaml:"optimal"`
	Clusters  []ClusterRecord `xml:"bi_cluster" yaml:"bi_clusters"`
}

// ClusterRecord is one bi-cluster.
type ClusterRecord struct {
	ID   int   `xml:"id,attr" yaml:"id"`
	Rows []int `xml:"rows>row" yaml:"rows"`
	Cols []int `xml:"cols>col" yaml:"cols"`
}

// FromSolution flattens sol. Cluster ids follow the solution order.
func FromSolution(sol *bicluster.Solution) Record {
	rec := Record{
		Instance:  sol.Label,
		RunID:     sol.RunID,
		Objective: sol.Cost,
		Optimal:   sol.Optimal,
		Clusters:  make([]ClusterRecord, len(sol.Clusters)),
	}
	for i, c := range sol.Clusters {
		rec.Clusters[i] = ClusterRecord{
			ID:   i,
			Rows: append([]int{}, c.Rows...),
			Cols: append([]int{}, c.Cols...),
		}
	}

	return rec
}

// WriteXML writes rec as an indented XML document.
func WriteXML(w io.Writer, rec Record) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("export: xml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}

// WriteYAML writes rec as YAML.
func WriteYAML(w io.Writer, rec Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("export: yaml: %w", err)
	}

	return enc.Close()
}

// SaveXML writes rec to path as XML.
func SaveXML(path string, rec Record) error { return save(path, rec, WriteXML) }

// SaveYAML writes rec to path as YAML.
func SaveYAML(path string, rec Record) error { return save(path, rec, WriteYAML) }

// Save writes rec to path; ".xml" selects XML, ".yaml" and ".yml" select YAML.
func Save(path string, rec Record) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return SaveXML(path, rec)
	case ".yaml", ".yml":
		return SaveYAML(path, rec)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

func save(path string, rec Record, write func(io.Writer, Record) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f, rec)
}
