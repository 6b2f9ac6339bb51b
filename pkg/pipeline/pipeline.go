package pipeline

import "github.com/Prince-05/SVM-Optimazation/pkg/model"

// Pipeline chains preprocessing steps. Each step is fitted on the output of
// the previous one.
type Pipeline struct {
	steps []model.Transformer
}

func NewPipeline(steps ...model.Transformer) *Pipeline {
	return &Pipeline{steps: steps}
}

// Fit fits every step in order and stops at the first failure.
func (p *Pipeline) Fit(X [][]float64) error {
	for _, step := range p.steps {
		if err := step.Fit(X); err != nil {
			return err
		}
		X = step.Transform(X)
	}
	return nil
}

func (p *Pipeline) Transform(X [][]float64) [][]float64 {
	for _, step := range p.steps {
		X = step.Transform(X)
	}
	return X
}

// FitTransform fits the pipeline on X and returns X transformed.
func (p *Pipeline) FitTransform(X [][]float64) ([][]float64, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X), nil
}
