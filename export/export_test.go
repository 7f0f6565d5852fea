// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/biclust/bicluster"
	"github.com/katalvlaran/biclust/export"
)

func sample() *bicluster.Solution {
	return &bicluster.Solution{
		Clusters: []bicluster.Cluster{
			{Rows: []int{0, 2}, Cols: []int{1}},
			{Rows: []int{1}, Cols: []int{}},
		},
		Cost:    2.5,
		Optimal: true,
		RunID:   "run-1",
		Label:   "toy 3x2",
	}
}

func TestWriteXML_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXML(&buf, export.FromSolution(sample())))

	out := buf.String()
	require.Contains(t, out, `<bi_clusters instance="toy 3x2" run_id="run-1" obj_val="2.5" is_optimal="true">`)
	require.Contains(t, out, `<bi_cluster id="0">`)
	require.Contains(t, out, `<row>2</row>`)
	require.Contains(t, out, `<col>1</col>`)

	var back export.Record
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back.Clusters, 2)
	require.Equal(t, []int{0, 2}, back.Clusters[0].Rows)
	require.Empty(t, back.Clusters[1].Cols)
	require.True(t, back.Optimal)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, export.FromSolution(sample())))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "toy 3x2", doc["instance"])
	require.Equal(t, 2.5, doc["objective"])
	require.Equal(t, true, doc["optimal"])
	require.Len(t, doc["bi_clusters"], 2)
}

func TestSave_ByExtension(t *testing.T) {
	dir := t.TempDir()
	rec := export.FromSolution(sample())

	xmlPath := filepath.Join(dir, "out.xml")
	require.NoError(t, export.Save(xmlPath, rec))
	data, err := os.ReadFile(xmlPath)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("<?xml")))

	yamlPath := filepath.Join(dir, "out.YML")
	require.NoError(t, export.Save(yamlPath, rec))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "objective: 2.5")

	err = export.Save(filepath.Join(dir, "out.json"), rec)
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestFromSolution_CopiesClusters(t *testing.T) {
	sol := sample()
	rec := export.FromSolution(sol)
	sol.Clusters[0].Rows[0] = 99
	require.Equal(t, 0, rec.Clusters[0].Rows[0])
}
