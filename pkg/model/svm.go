package model

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/Prince-05/SVM-Optimazation/pkg/optim"
)

// SVC is a C-support vector classifier. Multi-class problems are decomposed
// one-vs-one; each pair of classes gets its own binary machine and
// prediction takes the majority vote.
type SVC struct {
	// Hyperparameters / options
	Kernel    Kernel
	C         float64 // regularization strength, > 0
	Gamma     float64 // kernel coefficient for poly/rbf/sigmoid; 0 => 1/nFeatures. Unused by linear.
	Degree    int     // poly only
	Coef0     float64 // poly and sigmoid
	Tolerance float64 // stopping tolerance of the solver
	MaxIter   int     // solver iteration cap per machine; 0 => solver default
	// RandomState is accepted for parity with the other estimators.
	// Fitting is deterministic, so it does not influence the model.
	RandomState int64

	// internals
	classes  []int
	nFeat    int
	kern     kernelFunc
	machines []binaryMachine
}

// binaryMachine separates classes[pos] (+1) from classes[neg] (−1).
type binaryMachine struct {
	pos, neg int
	sv       [][]float64
	coef     []float64 // αᵢyᵢ per support vector
	rho      float64
}

// SVCOption functional config
type SVCOption func(*SVC)

func WithKernel(k Kernel) SVCOption       { return func(s *SVC) { s.Kernel = k } }
func WithC(c float64) SVCOption           { return func(s *SVC) { s.C = c } }
func WithGamma(g float64) SVCOption       { return func(s *SVC) { s.Gamma = g } }
func WithDegree(d int) SVCOption          { return func(s *SVC) { s.Degree = d } }
func WithCoef0(c float64) SVCOption       { return func(s *SVC) { s.Coef0 = c } }
func WithTolerance(tol float64) SVCOption { return func(s *SVC) { s.Tolerance = tol } }
func WithMaxIter(n int) SVCOption         { return func(s *SVC) { s.MaxIter = n } }
func WithRandomState(seed int64) SVCOption {
	return func(s *SVC) { s.RandomState = seed }
}

// NewSVC returns a classifier with scikit-learn's defaults.
func NewSVC(opts ...SVCOption) *SVC {
	s := &SVC{
		Kernel:    RBF,
		C:         1.0,
		Gamma:     0,
		Degree:    3,
		Coef0:     0,
		Tolerance: 1e-3,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Classes returns the sorted class codes seen by Fit.
func (s *SVC) Classes() []int { return s.classes }

// NumSupportVectors returns the support vector count summed over machines.
func (s *SVC) NumSupportVectors() int {
	n := 0
	for _, m := range s.machines {
		n += len(m.sv)
	}
	return n
}

func (s *SVC) validate(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("svc: empty X")
	}
	if len(X) != len(y) {
		return errors.New("svc: X and y length mismatch")
	}
	d := len(X[0])
	if d == 0 {
		return errors.New("svc: zero features")
	}
	for i, row := range X {
		if len(row) != d {
			return fmt.Errorf("svc: row %d has %d features, want %d", i, len(row), d)
		}
	}
	if !s.Kernel.Valid() {
		return fmt.Errorf("svc: unknown kernel %q", s.Kernel)
	}
	if !(s.C > 0) || math.IsInf(s.C, 1) {
		return fmt.Errorf("svc: C must be positive and finite, got %v", s.C)
	}
	if s.Kernel != Linear && (s.Gamma < 0 || math.IsNaN(s.Gamma) || math.IsInf(s.Gamma, 1)) {
		return fmt.Errorf("svc: gamma must be non-negative and finite, got %v", s.Gamma)
	}
	if s.Kernel == Poly && s.Degree < 1 {
		return fmt.Errorf("svc: degree must be at least 1, got %d", s.Degree)
	}
	return nil
}

// Fit trains one binary machine per pair of classes.
func (s *SVC) Fit(X [][]float64, y []int) error {
	if err := s.validate(X, y); err != nil {
		return err
	}
	s.nFeat = len(X[0])
	gamma := s.Gamma
	if gamma == 0 {
		gamma = 1 / float64(s.nFeat)
	}
	s.kern = kernelFunc{kind: s.Kernel, gamma: gamma, coef0: s.Coef0, degree: s.Degree}

	s.classes = uniqueInts(y)
	slices.Sort(s.classes)
	s.machines = s.machines[:0]

	byClass := make(map[int][]int, len(s.classes))
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}

	solver := optim.NewSMO(s.C, s.Tolerance, s.MaxIter)
	for a := 0; a < len(s.classes); a++ {
		for b := a + 1; b < len(s.classes); b++ {
			m, err := s.fitPair(X, byClass[s.classes[a]], byClass[s.classes[b]], solver)
			if err != nil {
				return fmt.Errorf("svc: classes %d vs %d: %w", s.classes[a], s.classes[b], err)
			}
			m.pos, m.neg = a, b
			s.machines = append(s.machines, m)
		}
	}
	return nil
}

func (s *SVC) fitPair(X [][]float64, posIdx, negIdx []int, solver *optim.SMO) (binaryMachine, error) {
	n := len(posIdx) + len(negIdx)
	sub := make([][]float64, 0, n)
	labels := make([]float64, 0, n)
	for _, i := range posIdx {
		sub = append(sub, X[i])
		labels = append(labels, 1)
	}
	for _, i := range negIdx {
		sub = append(sub, X[i])
		labels = append(labels, -1)
	}

	sol, err := solver.Solve(s.kern.gram(sub), labels)
	if err != nil {
		return binaryMachine{}, err
	}

	m := binaryMachine{rho: sol.Rho}
	for i, a := range sol.Alpha {
		if a > 0 {
			m.sv = append(m.sv, sub[i])
			m.coef = append(m.coef, a*labels[i])
		}
	}
	return m, nil
}

func (m binaryMachine) decision(k kernelFunc, x []float64) float64 {
	f := -m.rho
	for i, sv := range m.sv {
		f += m.coef[i] * k.eval(sv, x)
	}
	return f
}

// Predict returns the voted class of every row. Vote ties go to the lowest
// class code. An unfitted model returns nil.
func (s *SVC) Predict(X [][]float64) []int {
	if len(s.classes) == 0 {
		return nil
	}
	out := make([]int, len(X))
	votes := make([]int, len(s.classes))
	for r, x := range X {
		clear(votes)
		for _, m := range s.machines {
			if m.decision(s.kern, x) > 0 {
				votes[m.pos]++
			} else {
				votes[m.neg]++
			}
		}
		best := 0
		for c := 1; c < len(votes); c++ {
			if votes[c] > votes[best] {
				best = c
			}
		}
		out[r] = s.classes[best]
	}
	return out
}

func uniqueInts(y []int) []int {
	seen := make(map[int]struct{}, len(y))
	out := make([]int, 0)
	for _, v := range y {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
