package search

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/loader"
	"github.com/Prince-05/SVM-Optimazation/pkg/model"
)

// Evaluator fits a classifier on a partition's training subset with the given
// configuration and returns its accuracy on the held-out subset.
type Evaluator interface {
	Evaluate(p loader.Partition, cfg Configuration) (float64, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(p loader.Partition, cfg Configuration) (float64, error)

func (f EvaluatorFunc) Evaluate(p loader.Partition, cfg Configuration) (float64, error) {
	return f(p, cfg)
}

// SVMEvaluator scores configurations with model.SVC.
type SVMEvaluator struct {
	// Seed is passed to every fit as the classifier's random state.
	Seed int64
}

// Evaluate fits, predicts and scores one configuration.
func (e SVMEvaluator) Evaluate(p loader.Partition, cfg Configuration) (float64, error) {
	svc := model.NewSVC(
		model.WithKernel(cfg.Kernel),
		model.WithC(cfg.C),
		model.WithGamma(cfg.Gamma),
		model.WithRandomState(e.Seed),
	)
	if err := svc.Fit(p.XTrain, p.YTrain); err != nil {
		return 0, err
	}
	slog.Debug("svc fitted",
		"partition", p.Index+1,
		"kernel", cfg.Kernel,
		"support_vectors", svc.NumSupportVectors())
	return model.Accuracy(p.YTest, svc.Predict(p.XTest))
}

// DefaultConfig returns the search settings of the reference run: 100 trials
// over the four kernels, C in [0.1, 1.0] and gamma in [0.01, 0.1].
func DefaultConfig() Config {
	return Config{
		Trials:    DefaultTrials,
		Kernels:   append([]model.Kernel(nil), model.Kernels...),
		C:         ParameterRange[float64]{Min: 0.1, Max: 1.0},
		Gamma:     ParameterRange[float64]{Min: 0.01, Max: 0.1},
		Seed:      0,
		ModelSeed: DefaultModelSeed,
	}
}

// Validate checks the search settings, returning a ConfigurationError.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return errs.Configf("trials", "must be positive, got %d", c.Trials)
	}
	if len(c.Kernels) == 0 {
		return errs.Configf("kernels", "at least one kernel is required")
	}
	for _, k := range c.Kernels {
		if _, err := model.ParseKernel(string(k)); err != nil {
			return errs.Configf("kernels", "%v", err)
		}
	}
	if err := c.C.Validate("C"); err != nil {
		return err
	}
	return c.Gamma.Validate("gamma")
}

// Searcher runs pure random search over partitions. It owns one random stream:
// configurations are drawn from it in partition order, then trial order, so a
// partition's draws depend only on how many trials preceded it.
//
// A Searcher is not safe for concurrent use.
type Searcher struct {
	config    Config
	evaluator Evaluator
	rng       *rand.Rand
}

// NewSearcher validates config and seeds the configuration stream with
// config.Seed.
func NewSearcher(config Config, evaluator Evaluator) (*Searcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if evaluator == nil {
		return nil, errs.Configf("evaluator", "must not be nil")
	}
	return &Searcher{
		config:    config,
		evaluator: evaluator,
		rng:       rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// Sample draws the next configuration: kernel, then C, then gamma.
func (s *Searcher) Sample() Configuration {
	return Configuration{
		Kernel: s.config.Kernels[s.rng.Intn(len(s.config.Kernels))],
		C:      s.config.C.Sample(s.rng),
		Gamma:  s.config.Gamma.Sample(s.rng),
	}
}

// Search runs config.Trials independent trials on p. Trial 0 seeds the best
// configuration and later trials replace it only with a strictly greater
// accuracy. The first failing trial aborts with a *errs.FitError.
func (s *Searcher) Search(p loader.Partition) (Outcome, error) {
	out := Outcome{
		Partition: p.Index,
		Trace:     make([]float64, 0, s.config.Trials),
	}

	for trial := 0; trial < s.config.Trials; trial++ {
		cfg := s.Sample()

		acc, err := s.evaluator.Evaluate(p, cfg)
		if err == nil && !(acc >= 0 && acc <= 1) {
			err = fmt.Errorf("accuracy %v outside [0, 1]", acc)
		}
		if err != nil {
			return Outcome{}, &errs.FitError{Partition: p.Index, Trial: trial, Config: cfg.String(), Err: err}
		}

		out.Trace = append(out.Trace, acc)
		if trial == 0 || acc > out.BestAccuracy {
			out.BestAccuracy = acc
			out.Best = cfg
		}
		s.sendProgress(p.Index, trial, cfg, acc, out)
	}
	return out, nil
}

// SearchAll searches every partition in order and stops at the first error.
func (s *Searcher) SearchAll(parts []loader.Partition) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(parts))
	for _, p := range parts {
		o, err := s.Search(p)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func (s *Searcher) sendProgress(partition, trial int, cfg Configuration, acc float64, out Outcome) {
	if s.config.ProgressChan == nil {
		return
	}
	update := ProgressUpdate{
		Partition:    partition,
		Trial:        trial + 1,
		TotalTrials:  s.config.Trials,
		Config:       cfg,
		Accuracy:     acc,
		BestAccuracy: out.BestAccuracy,
		BestConfig:   out.Best,
	}
	select {
	case s.config.ProgressChan <- update:
	default:
	}
}
