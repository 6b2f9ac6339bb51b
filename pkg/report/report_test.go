package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/model"
	"github.com/Prince-05/SVM-Optimazation/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(t *testing.T, n int) *search.Summary {
	t.Helper()
	kernels := model.Kernels
	outs := make([]search.Outcome, n)
	for i := range outs {
		trace := make([]float64, 100)
		for j := range trace {
			trace[j] = float64(j%10) / 10
		}
		outs[i] = search.Outcome{
			Partition:    i,
			BestAccuracy: 0.9 + float64(i)/1000,
			Best:         search.Configuration{Kernel: kernels[i%len(kernels)], C: 0.1 + float64(i)/20, Gamma: 0.0123456789},
			Trace:        trace,
		}
	}
	s, err := search.Aggregate(outs)
	require.NoError(t, err)
	return s
}

func TestExportCSV(t *testing.T) {
	s := summary(t, 10)
	path := filepath.Join(t.TempDir(), CSVFile)

	require.NoError(t, ExportCSV(path, s))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 11)
	assert.Equal(t, []string{"Sample", "Best Accuracy", "Optimal Parameters"}, records[0])
	for i, rec := range records[1:] {
		o := s.Outcomes[i]
		assert.Equal(t, "Sample-"+strconv.Itoa(i+1), rec[0])
		acc, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)
		assert.Equal(t, o.BestAccuracy, acc)
		assert.Equal(t, o.Best.String(), rec[2])
		assert.True(t, strings.HasPrefix(rec[2], "("+string(o.Best.Kernel)+", "))
	}
}

func TestExportCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), CSVFile)
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 50)), 0o644))

	require.NoError(t, ExportCSV(path, summary(t, 2)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(raw), "\n"))
	assert.NotContains(t, string(raw), "stale")
}

func TestExportCSVUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", CSVFile)

	err := ExportCSV(path, summary(t, 1))

	var exportErr *errs.ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, path, exportErr.Path)
}

func TestWriteTable(t *testing.T) {
	s := summary(t, 10)
	var buf bytes.Buffer

	require.NoError(t, WriteTable(&buf, s))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], "Sample"))
	assert.Contains(t, lines[0], "Best Accuracy")
	assert.Contains(t, lines[0], "Optimal Parameters")
	assert.Equal(t, strings.Repeat("-", len(lines[1])), lines[1])
	assert.Contains(t, lines[2], "Sample-1 ")
	assert.Contains(t, lines[2], "0.9000")
	assert.Contains(t, lines[11], "Sample-10")
	assert.Contains(t, lines[11], s.Outcomes[9].Best.String())

	// columns are aligned
	col := strings.Index(lines[0], "Best Accuracy")
	for _, l := range lines[2:] {
		assert.Equal(t, col, strings.Index(l, "0.9"), l)
	}
}

func TestWritePartitionLine(t *testing.T) {
	var buf bytes.Buffer
	o := search.Outcome{
		Partition:    2,
		BestAccuracy: 0.977777,
		Best:         search.Configuration{Kernel: model.RBF, C: 0.54321, Gamma: 0.0456},
	}

	require.NoError(t, WritePartitionLine(&buf, o))

	assert.Contains(t, buf.String(), "Sample 3 - Best Accuracy: 0.9778")
	assert.Contains(t, buf.String(), "Optimal Parameters: Kernel=rbf, C=0.5432, Gamma=0.0456")
}

func TestPlotConvergence(t *testing.T) {
	s := summary(t, 3)
	path := filepath.Join(t.TempDir(), PlotFile)

	require.NoError(t, PlotConvergence(s.Best(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 8)
	assert.Equal(t, "\x89PNG", string(raw[:4]))
}

func TestConvergencePlotLabels(t *testing.T) {
	p, err := ConvergencePlot(summary(t, 1).Best())
	require.NoError(t, err)

	assert.Equal(t, "Convergence Graph for the Best SVM Model", p.Title.Text)
	assert.Equal(t, "Iteration", p.X.Label.Text)
	assert.Equal(t, "Accuracy", p.Y.Label.Text)
	assert.True(t, p.Legend.Top)
	assert.True(t, p.Legend.Left)
}

func TestPlotConvergenceUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", PlotFile)

	err := PlotConvergence(summary(t, 1).Best(), path)

	var exportErr *errs.ExportError
	assert.True(t, errors.As(err, &exportErr))
}
