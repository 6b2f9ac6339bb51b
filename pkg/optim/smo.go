package optim

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrNotConverged is returned when the iteration cap is hit before the
// optimality gap falls below the tolerance.
var ErrNotConverged = errors.New("smo: maximum iterations reached before convergence")

// tau replaces non-positive curvature, which non-PSD kernels (sigmoid) produce.
const tau = 1e-12

// SMO solves the C-SVC dual problem
//
//	min ½ αᵀQα − eᵀα   s.t.  yᵀα = 0,  0 ≤ αᵢ ≤ C
//
// with Qᵢⱼ = yᵢyⱼKᵢⱼ, using sequential minimal optimization with
// second-order working set selection.
type SMO struct {
	C         float64
	Tolerance float64
	MaxIter   int // 0 => max(10_000_000, 100*n)
}

// Solution holds the dual variables and the bias of a solved problem.
// The decision value of x is Σ αᵢyᵢK(xᵢ, x) − Rho.
type Solution struct {
	Alpha []float64
	Rho   float64
	Iter  int
}

func NewSMO(c, tol float64, maxIter int) *SMO {
	return &SMO{C: c, Tolerance: tol, MaxIter: maxIter}
}

// Solve runs SMO on the n×n kernel matrix K with labels y in {-1, +1}.
func (s *SMO) Solve(K mat.Matrix, y []float64) (*Solution, error) {
	n := len(y)
	if r, c := K.Dims(); r != n || c != n {
		return nil, fmt.Errorf("smo: kernel is %dx%d, want %dx%d", r, c, n, n)
	}
	if !(s.C > 0) || math.IsInf(s.C, 1) {
		return nil, fmt.Errorf("smo: C must be positive and finite, got %v", s.C)
	}
	for i, v := range y {
		if v != 1 && v != -1 {
			return nil, fmt.Errorf("smo: label %d is %v, want ±1", i, v)
		}
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = 1e-3
	}
	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = max(10_000_000, 100*n)
	}

	alpha := make([]float64, n)
	grad := make([]float64, n)
	for i := range grad {
		grad[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		i, j := s.workingSet(K, y, alpha, grad, tol)
		if j < 0 {
			return &Solution{Alpha: alpha, Rho: s.rho(y, alpha, grad), Iter: iter}, nil
		}
		s.step(K, y, alpha, grad, i, j)
	}
	return nil, ErrNotConverged
}

// workingSet picks the maximal violating i and the j giving the largest
// second-order decrease. j < 0 means the tolerance is met.
func (s *SMO) workingSet(K mat.Matrix, y, alpha, grad []float64, tol float64) (int, int) {
	gmax, gmax2 := math.Inf(-1), math.Inf(-1)
	i := -1
	for t := range y {
		if y[t] > 0 {
			if alpha[t] < s.C && -grad[t] >= gmax {
				gmax, i = -grad[t], t
			}
		} else if alpha[t] > 0 && grad[t] >= gmax {
			gmax, i = grad[t], t
		}
	}
	if i < 0 {
		return -1, -1
	}

	j := -1
	objMin := math.Inf(1)
	kii := K.At(i, i)
	for t := range y {
		var diff float64
		if y[t] > 0 {
			if !(alpha[t] > 0) {
				continue
			}
			gmax2 = math.Max(gmax2, grad[t])
			diff = gmax + grad[t]
		} else {
			if !(alpha[t] < s.C) {
				continue
			}
			gmax2 = math.Max(gmax2, -grad[t])
			diff = gmax - grad[t]
		}
		if diff <= 0 {
			continue
		}
		quad := kii + K.At(t, t) - 2*K.At(i, t)
		if quad <= 0 {
			quad = tau
		}
		if obj := -(diff * diff) / quad; obj <= objMin {
			j, objMin = t, obj
		}
	}
	if gmax+gmax2 < tol {
		return -1, -1
	}
	return i, j
}

// step optimizes the pair (i, j) analytically, clips to the box and updates
// the gradient.
func (s *SMO) step(K mat.Matrix, y, alpha, grad []float64, i, j int) {
	C := s.C
	oldI, oldJ := alpha[i], alpha[j]
	quad := K.At(i, i) + K.At(j, j) - 2*K.At(i, j)
	if quad <= 0 {
		quad = tau
	}

	if y[i] != y[j] {
		delta := (-grad[i] - grad[j]) / quad
		diff := alpha[i] - alpha[j]
		alpha[i] += delta
		alpha[j] += delta
		if diff > 0 {
			if alpha[j] < 0 {
				alpha[j], alpha[i] = 0, diff
			}
			if alpha[i] > C {
				alpha[i], alpha[j] = C, C-diff
			}
		} else {
			if alpha[i] < 0 {
				alpha[i], alpha[j] = 0, -diff
			}
			if alpha[j] > C {
				alpha[j], alpha[i] = C, C+diff
			}
		}
	} else {
		delta := (grad[i] - grad[j]) / quad
		sum := alpha[i] + alpha[j]
		alpha[i] -= delta
		alpha[j] += delta
		if sum > C {
			if alpha[i] > C {
				alpha[i], alpha[j] = C, sum-C
			}
			if alpha[j] > C {
				alpha[j], alpha[i] = C, sum-C
			}
		} else {
			if alpha[j] < 0 {
				alpha[j], alpha[i] = 0, sum
			}
			if alpha[i] < 0 {
				alpha[i], alpha[j] = 0, sum
			}
		}
	}

	dI, dJ := alpha[i]-oldI, alpha[j]-oldJ
	for k := range grad {
		grad[k] += y[k]*y[i]*K.At(k, i)*dI + y[k]*y[j]*K.At(k, j)*dJ
	}
}

// rho averages yᵢ∇ᵢ over free variables, or takes the midpoint of the
// feasible interval when none is free.
func (s *SMO) rho(y, alpha, grad []float64) float64 {
	ub, lb := math.Inf(1), math.Inf(-1)
	nFree, sumFree := 0, 0.0
	for t := range y {
		yG := y[t] * grad[t]
		switch {
		case alpha[t] >= s.C:
			if y[t] < 0 {
				ub = math.Min(ub, yG)
			} else {
				lb = math.Max(lb, yG)
			}
		case alpha[t] <= 0:
			if y[t] > 0 {
				ub = math.Min(ub, yG)
			} else {
				lb = math.Max(lb, yG)
			}
		default:
			nFree++
			sumFree += yG
		}
	}
	switch {
	case nFree > 0:
		return sumFree / float64(nFree)
	case math.IsInf(ub, 1):
		return lb
	case math.IsInf(lb, -1):
		return ub
	}
	return (ub + lb) / 2
}
