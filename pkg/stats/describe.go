package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ColumnSummary holds descriptive statistics of one feature column.
type ColumnSummary struct {
	Count int
	Mean  float64
	Std   float64 // sample (n-1) standard deviation
	Min   float64
	Q1    float64
	Q2    float64
	Q3    float64
	Max   float64
}

// Describe summarizes every column of X. Rows are assumed to share the
// dimensionality of the first row.
func Describe(X [][]float64) []ColumnSummary {
	if len(X) == 0 {
		return nil
	}
	cols := len(X[0])
	out := make([]ColumnSummary, cols)
	for j := 0; j < cols; j++ {
		col := Column(X, j)
		min, max := MinMax(col)
		out[j] = ColumnSummary{
			Count: len(col),
			Mean:  Mean(col),
			Std:   sampleStd(col),
			Min:   min,
			Q1:    Percentile(col, 25),
			Q2:    Median(col),
			Q3:    Percentile(col, 75),
			Max:   max,
		}
	}
	return out
}

// sampleStd is the n-1 standard deviation; a single value has none.
func sampleStd(x []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.StdDev(x, nil)
}
