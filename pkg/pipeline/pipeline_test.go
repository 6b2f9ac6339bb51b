package pipeline

import (
	"errors"
	"testing"

	"github.com/Prince-05/SVM-Optimazation/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shift adds the mean of the first column it was fitted on.
type shift struct{ by float64 }

func (s *shift) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("shift: empty X")
	}
	s.by = stats.Mean(stats.Column(X, 0))
	return nil
}

func (s *shift) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v + s.by
		}
	}
	return out
}

func TestPipelineFitsStepsOnPreviousOutput(t *testing.T) {
	first, second := &shift{}, &shift{}
	p := NewPipeline(first, second)

	X, err := p.FitTransform([][]float64{{1}, {3}})
	require.NoError(t, err)

	assert.Equal(t, 2.0, first.by)
	assert.Equal(t, 4.0, second.by)
	assert.Equal(t, [][]float64{{7}, {9}}, X)
}

func TestPipelineStandardizes(t *testing.T) {
	X, err := NewPipeline(stats.NewStandardScaler()).FitTransform([][]float64{{1, 5}, {3, 5}, {5, 5}})
	require.NoError(t, err)

	col := stats.Column(X, 0)
	assert.InDelta(t, 0, stats.Mean(col), 1e-12)
	assert.InDelta(t, 1, stats.Std(col), 1e-12)
	assert.Equal(t, []float64{0, 0, 0}, stats.Column(X, 1))
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	_, err := NewPipeline(&shift{}).FitTransform(nil)
	assert.Error(t, err)
}
