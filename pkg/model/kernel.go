package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Kernel names a support vector kernel function.
type Kernel string

const (
	Linear  Kernel = "linear"
	Poly    Kernel = "poly"
	RBF     Kernel = "rbf"
	Sigmoid Kernel = "sigmoid"
)

// Kernels lists every supported kernel in canonical order.
var Kernels = []Kernel{Linear, Poly, RBF, Sigmoid}

// ParseKernel validates a kernel name.
func ParseKernel(s string) (Kernel, error) {
	k := Kernel(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown kernel %q", s)
	}
	return k, nil
}

func (k Kernel) Valid() bool {
	switch k {
	case Linear, Poly, RBF, Sigmoid:
		return true
	}
	return false
}

// kernelFunc binds a kernel to its coefficients.
//
//	linear   ⟨a,b⟩
//	poly     (γ⟨a,b⟩ + coef0)^degree
//	rbf      exp(−γ‖a−b‖²)
//	sigmoid  tanh(γ⟨a,b⟩ + coef0)
type kernelFunc struct {
	kind   Kernel
	gamma  float64
	coef0  float64
	degree int
}

func (k kernelFunc) eval(a, b []float64) float64 {
	switch k.kind {
	case Poly:
		return math.Pow(k.gamma*floats.Dot(a, b)+k.coef0, float64(k.degree))
	case RBF:
		d := floats.Distance(a, b, 2)
		return math.Exp(-k.gamma * d * d)
	case Sigmoid:
		return math.Tanh(k.gamma*floats.Dot(a, b) + k.coef0)
	default:
		return floats.Dot(a, b)
	}
}

// gram computes the symmetric kernel matrix of X.
func (k kernelFunc) gram(X [][]float64) *mat.SymDense {
	n := len(X)
	K := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			K.SetSym(i, j, k.eval(X[i], X[j]))
		}
	}
	return K
}
