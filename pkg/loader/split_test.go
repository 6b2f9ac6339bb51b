package loader

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexed builds n one-feature rows whose value is the row index.
func indexed(n int) ([][]float64, []int) {
	X := make([][]float64, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		X[i] = []float64{float64(i)}
		y[i] = i % 3
	}
	return X, y
}

func rowIDs(X [][]float64) []int {
	ids := make([]int, len(X))
	for i, row := range X {
		ids[i] = int(row[0])
	}
	return ids
}

func TestSplitPartitionsAreDisjointAndComplete(t *testing.T) {
	X, y := indexed(150)

	parts, err := Split(X, y, 0.3, 10)
	require.NoError(t, err)
	require.Len(t, parts, 10)

	for i, p := range parts {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, int64(i), p.Seed)
		assert.Len(t, p.XTest, 45)
		assert.Len(t, p.XTrain, 105)
		assert.Len(t, p.YTest, len(p.XTest))
		assert.Len(t, p.YTrain, len(p.XTrain))

		seen := map[int]bool{}
		for _, id := range append(rowIDs(p.XTrain), rowIDs(p.XTest)...) {
			assert.False(t, seen[id], "row %d appears twice in partition %d", id, i)
			seen[id] = true
		}
		assert.Len(t, seen, 150)

		for j, row := range p.XTest {
			assert.Equal(t, y[int(row[0])], p.YTest[j])
		}
	}
}

func TestSplitIsDeterministic(t *testing.T) {
	X, y := indexed(150)

	a, err := Split(X, y, 0.3, 10)
	require.NoError(t, err)
	b, err := Split(X, y, 0.3, 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, rowIDs(a[0].XTest), rowIDs(a[1].XTest))
}

func TestTrainTestSplitRounding(t *testing.T) {
	X, y := indexed(7)

	XTrain, XTest, _, _ := TrainTestSplit(X, y, 0.3, rand.New(rand.NewSource(1)))

	assert.Len(t, XTest, 3)
	assert.Len(t, XTrain, 4)
}

func TestSplitConfigurationErrors(t *testing.T) {
	X, y := indexed(10)
	tests := []struct {
		name  string
		X     [][]float64
		y     []int
		ratio float64
		count int
		field string
	}{
		{"ratio zero", X, y, 0, 10, "testRatio"},
		{"ratio one", X, y, 1, 10, "testRatio"},
		{"ratio negative", X, y, -0.3, 10, "testRatio"},
		{"zero partitions", X, y, 0.3, 0, "partitions"},
		{"single sample", X[:1], y[:1], 0.3, 10, "dataset"},
		{"length mismatch", X, y[:5], 0.3, 10, "dataset"},
		{"no training rows", X[:2], y[:2], 0.9, 10, "testRatio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Split(tt.X, tt.y, tt.ratio, tt.count)
			assert.Nil(t, parts)

			var cfgErr *errs.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
