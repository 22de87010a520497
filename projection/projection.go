package projection

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Projection is the fixed random input→hidden map of an ELM: a weight
// matrix with entries drawn i.i.d. from U[-1,1) and a bias row with entries
// drawn i.i.d. from U[0,1). Both are generated exactly once at construction
// and never change afterwards.
type Projection struct {
	weights     *mat.Dense // inputDim × hiddenWidth, U[-1,1)
	bias        *mat.Dense // 1 × hiddenWidth, U[0,1)
	inputDim    int
	hiddenWidth int
}

// New draws a fresh projection from rng. If rng is nil, a deterministic
// zero-seeded stream is used; callers that care about the seed policy
// (they should) pass FromSeed(seed).
//
// Returns ErrInvalidDimension when inputDim or hiddenWidth is not positive.
//
// Determinism: a given rng state fully determines the result; weights are
// drawn before bias, row-major.
//
// Complexity: O(inputDim·hiddenWidth) time and space.
func New(inputDim, hiddenWidth int, rng *rand.Rand) (*Projection, error) {
	if inputDim <= 0 || hiddenWidth <= 0 {
		return nil, ErrInvalidDimension
	}
	if rng == nil {
		rng = FromSeed(0)
	}

	w := make([]float64, inputDim*hiddenWidth)
	fillUniform(w, -1, 1, rng)
	b := make([]float64, hiddenWidth)
	fillUniform(b, 0, 1, rng)

	return &Projection{
		weights:     mat.NewDense(inputDim, hiddenWidth, w),
		bias:        mat.NewDense(1, hiddenWidth, b),
		inputDim:    inputDim,
		hiddenWidth: hiddenWidth,
	}, nil
}

// InputDim returns the expected input column count.
func (p *Projection) InputDim() int { return p.inputDim }

// HiddenWidth returns the hidden layer width.
func (p *Projection) HiddenWidth() int { return p.hiddenWidth }

// Weights returns a copy of the weight matrix. The projection itself stays
// immutable; mutating the copy has no effect on the model.
func (p *Projection) Weights() *mat.Dense { return mat.DenseCopyOf(p.weights) }

// Bias returns a copy of the bias row.
func (p *Projection) Bias() *mat.Dense { return mat.DenseCopyOf(p.bias) }

// Transform computes the pre-activation matrix X·W + bias, broadcasting the
// bias row over every sample. The result is N×hiddenWidth for an N-row X.
//
// Returns ErrDimensionMismatch when X's column count differs from InputDim.
//
// Complexity: O(N·inputDim·hiddenWidth).
func (p *Projection) Transform(x mat.Matrix) (*mat.Dense, error) {
	_, c := x.Dims()
	if c != p.inputDim {
		return nil, ErrDimensionMismatch
	}

	var pre mat.Dense
	pre.Mul(x, p.weights)
	pre.Apply(func(_, j int, v float64) float64 { return v + p.bias.At(0, j) }, &pre)

	return &pre, nil
}
