package loader

import (
	"math"
	"math/rand"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
)

// Partition is one reproducible train/held-out split of a dataset. Rows are
// shared with the source matrix and must be treated as read-only.
type Partition struct {
	Index  int
	Seed   int64
	XTrain [][]float64
	XTest  [][]float64
	YTrain []int
	YTest  []int
}

// TestSize returns the held-out sample count for n samples: ceil(n*testRatio).
func TestSize(n int, testRatio float64) int {
	return int(math.Ceil(float64(n) * testRatio))
}

// TrainTestSplit splits X, y into train and held-out sets by ratio using the
// permutation drawn from rng.
func TrainTestSplit(X [][]float64, y []int, testRatio float64, rng *rand.Rand) (XTrain, XTest [][]float64, YTrain, YTest []int) {
	n := len(X)
	indices := rng.Perm(n)
	nTest := TestSize(n, testRatio)
	for i := 0; i < n; i++ {
		if i < nTest {
			XTest = append(XTest, X[indices[i]])
			YTest = append(YTest, y[indices[i]])
		} else {
			XTrain = append(XTrain, X[indices[i]])
			YTrain = append(YTrain, y[indices[i]])
		}
	}
	return
}

// Split produces count partitions of X, y. Partition i is drawn from a source
// seeded with i, so identical inputs always give identical partitions.
func Split(X [][]float64, y []int, testRatio float64, count int) ([]Partition, error) {
	if !(testRatio > 0 && testRatio < 1) {
		return nil, errs.Configf("testRatio", "must be in (0, 1), got %v", testRatio)
	}
	if count <= 0 {
		return nil, errs.Configf("partitions", "must be positive, got %d", count)
	}
	if len(X) < 2 {
		return nil, errs.Configf("dataset", "need at least 2 samples, got %d", len(X))
	}
	if len(X) != len(y) {
		return nil, errs.Configf("dataset", "%d feature rows but %d labels", len(X), len(y))
	}
	if TestSize(len(X), testRatio) >= len(X) {
		return nil, errs.Configf("testRatio", "%v leaves no training samples out of %d", testRatio, len(X))
	}

	parts := make([]Partition, count)
	for i := 0; i < count; i++ {
		seed := int64(i)
		XTrain, XTest, YTrain, YTest := TrainTestSplit(X, y, testRatio, rand.New(rand.NewSource(seed)))
		parts[i] = Partition{
			Index:  i,
			Seed:   seed,
			XTrain: XTrain,
			XTest:  XTest,
			YTrain: YTrain,
			YTest:  YTest,
		}
	}
	return parts, nil
}
