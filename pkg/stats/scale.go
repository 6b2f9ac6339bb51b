package stats

import (
	"errors"
	"math"
)

// StandardScaler rescales each column to zero mean and unit variance using
// statistics learned by Fit.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit learns per-column mean and population standard deviation. Constant
// columns get a scale of 1 so Transform leaves them centred at zero.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return errors.New("scaler: empty X")
	}
	cols := len(X[0])
	for _, row := range X {
		if len(row) != cols {
			return errors.New("scaler: ragged rows")
		}
	}

	s.Mean = make([]float64, cols)
	s.Std = make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := Column(X, j)
		s.Mean[j] = Mean(col)
		s.Std[j] = math.Sqrt(Variance(col))
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

// Transform returns a scaled copy of X. An unfitted scaler returns X as is.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit {
		return X
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Std[j]
		}
		out[i] = scaled
	}
	return out
}

func (s *StandardScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X), nil
}
