package search

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/Prince-05/SVM-Optimazation/pkg/errs"
	"github.com/Prince-05/SVM-Optimazation/pkg/model"
	"golang.org/x/exp/constraints"
)

// DefaultTrials is the number of random trials run per partition.
const DefaultTrials = 100

// DefaultModelSeed is the auxiliary seed handed to every classifier fit.
const DefaultModelSeed = 42

// ParameterRange is the sampling domain of one hyperparameter. Floats are
// drawn from [Min, Max), integers from [Min, Max].
type ParameterRange[T constraints.Integer | constraints.Float] struct {
	Min T
	Max T
}

// Validate reports a ConfigurationError when the range is empty.
func (r ParameterRange[T]) Validate(name string) error {
	if r.Min > r.Max {
		return errs.Configf(name, "min %v is greater than max %v", r.Min, r.Max)
	}
	return nil
}

// Sample draws a value uniformly from the range.
func (r ParameterRange[T]) Sample(rng *rand.Rand) T {
	switch any(r.Min).(type) {
	case float32, float64:
		min, max := float64(r.Min), float64(r.Max)
		return T(min + rng.Float64()*(max-min))
	default:
		min, max := int64(r.Min), int64(r.Max)
		return T(min + rng.Int63n(max-min+1))
	}
}

// Contains reports whether v lies inside the closed range.
func (r ParameterRange[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Configuration is one sampled hyperparameter tuple.
//
// Gamma is sampled for every trial, but the linear kernel ignores it:
// consumers must not assume Gamma affects outcomes when Kernel is linear.
type Configuration struct {
	Kernel model.Kernel
	C      float64
	Gamma  float64
}

// String renders the tuple as "(kernel, C, gamma)".
func (c Configuration) String() string {
	return fmt.Sprintf("(%s, %s, %s)", c.Kernel,
		strconv.FormatFloat(c.C, 'f', -1, 64),
		strconv.FormatFloat(c.Gamma, 'f', -1, 64))
}

// ProgressUpdate is the state of a partition's search after one trial.
type ProgressUpdate struct {
	Partition    int // 0-indexed
	Trial        int // 1-indexed
	TotalTrials  int
	Config       Configuration
	Accuracy     float64
	BestAccuracy float64
	BestConfig   Configuration
}

// Config holds all settings of the random search.
type Config struct {
	// Trials is the number of independent trials per partition.
	Trials int

	// Kernels is the discrete kernel domain, sampled uniformly.
	Kernels []model.Kernel

	// C is the regularization strength domain.
	C ParameterRange[float64]

	// Gamma is the kernel coefficient domain.
	Gamma ParameterRange[float64]

	// Seed seeds the single stream every configuration is drawn from.
	Seed int64

	// ModelSeed is the auxiliary seed for the classifier's own randomness.
	ModelSeed int64

	// ProgressChan receives an update after every trial. Sends never block;
	// updates are dropped when the channel is full. If nil, no updates are sent.
	ProgressChan chan<- ProgressUpdate
}

// Outcome is the result of searching one partition. Trace holds every trial's
// accuracy in trial order.
type Outcome struct {
	Partition    int
	BestAccuracy float64
	Best         Configuration
	Trace        []float64
}

// Label names the partition the way reports do: "Sample-1" for partition 0.
func (o Outcome) Label() string {
	return fmt.Sprintf("Sample-%d", o.Partition+1)
}
