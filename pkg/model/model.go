package model

// Classifier is a supervised learner over integer class codes.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
}

// Transformer is for preprocessing steps (fit on data, then transform).
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) [][]float64
}
