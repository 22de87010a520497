package activation

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrUnsupported indicates an activation name outside the fixed named set.
// Callers that need anything else must supply a custom Func instead.
var ErrUnsupported = errors.New("activation: unsupported activation name")

// Name selects one of the built-in activation functions.
type Name string

// The fixed named set. Resolve accepts exactly these values.
const (
	// Sigmoid is the logistic function 1/(1+e^-x).
	Sigmoid Name = "sigmoid"

	// Sine is sin(x).
	Sine Name = "sine"

	// HardLim is the unit step at zero: 1 if x >= 0, else 0.
	HardLim Name = "hardlim"

	// TriBas is the triangular basis max(0, 1-|x|).
	TriBas Name = "tribas"

	// RadBas is the radial (Gaussian) basis e^(-x²).
	RadBas Name = "radbas"
)

// Func is a pure elementwise transform. Implementations must be stateless;
// the solver applies them to every entry of a pre-activation matrix.
type Func func(x float64) float64

// Resolve returns the Func registered under name.
// Unknown names return ErrUnsupported; there is no fallback.
//
// Complexity: O(1).
func Resolve(name Name) (Func, error) {
	switch name {
	case Sigmoid:
		return sigmoid, nil
	case Sine:
		return math.Sin, nil
	case HardLim:
		return hardLim, nil
	case TriBas:
		return triBas, nil
	case RadBas:
		return radBas, nil
	default:
		return nil, ErrUnsupported
	}
}

// Apply writes f(src) elementwise into dst. dst is resized to src's shape.
//
// Complexity: O(rows·cols).
func (f Func) Apply(dst *mat.Dense, src mat.Matrix) {
	dst.Apply(func(_, _ int, v float64) float64 { return f(v) }, src)
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

func hardLim(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}

func triBas(x float64) float64 {
	if a := math.Abs(x); a < 1 {
		return 1 - a
	}
	return 0
}

func radBas(x float64) float64 { return math.Exp(-x * x) }
