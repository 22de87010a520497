package elm

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/captain-KYD/ELMToolbox/activation"
	"github.com/captain-KYD/ELMToolbox/projection"
)

// New constructs an untrained model with a freshly generated random
// projection. inputDim is required; everything else defaults per
// options.go (hidden width 1000, λ=1000, sigmoid activation, seed drawn
// from the process-wide default source).
//
// Errors:
//   - ErrMissingConfig: inputDim == 0 (the required parameter is absent).
//   - ErrInvalidDimension: inputDim < 0 or a non-positive hidden width.
//   - ErrInvalidRegularization: λ ≤ 0.
//   - activation.ErrUnsupported: named activation outside the fixed set.
//
// Determinism: with WithSeed (or WithRand), two constructions with the same
// seed and dimensions produce bit-identical projections.
//
// Complexity: O(inputDim·hiddenWidth) time and space.
func New(inputDim int, opts ...Option) (*Model, error) {
	if inputDim == 0 {
		return nil, ErrMissingConfig
	}
	if inputDim < 0 {
		return nil, ErrInvalidDimension
	}

	o := gatherOptions(opts...)
	if o.hiddenWidth <= 0 {
		return nil, ErrInvalidDimension
	}
	if o.regularization <= 0 {
		return nil, ErrInvalidRegularization
	}

	act := o.actFunc
	if act == nil {
		var err error
		if act, err = activation.Resolve(o.actName); err != nil {
			return nil, err
		}
	}

	var (
		rng  *rand.Rand
		seed = o.seed
	)
	switch {
	case o.rng != nil:
		rng = o.rng
	case o.seedSet:
		rng = projection.FromSeed(o.seed)
	default:
		// Default policy: one seed from the process-wide source, so the
		// model itself remains reproducible once constructed.
		seed = rand.Int63()
		rng = projection.FromSeed(seed)
	}

	proj, err := projection.New(inputDim, o.hiddenWidth, rng)
	if err != nil {
		return nil, err
	}

	return &Model{
		inputDim:       inputDim,
		hiddenWidth:    o.hiddenWidth,
		regularization: o.regularization,
		seed:           seed,
		proj:           proj,
		act:            act,
		phase:          Uninitialized,
	}, nil
}

// HiddenOutput computes the hidden representation
// H = activation(X·W + bias) without touching any trained state. It is the
// layer output consumed by stacked compositions and is valid on an
// untrained model.
//
// Returns ErrNilMatrix for a nil X and ErrDimensionMismatch when X's
// column count differs from InputDim.
//
// Complexity: O(N·inputDim·hiddenWidth).
func (m *Model) HiddenOutput(x mat.Matrix) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	if _, c := x.Dims(); c != m.inputDim {
		return nil, ErrDimensionMismatch
	}

	pre, err := m.proj.Transform(x)
	if err != nil {
		return nil, err
	}

	var h mat.Dense
	m.act.Apply(&h, pre)

	return &h, nil
}
