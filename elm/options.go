// Package elm: functional configuration for model construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) applying last-writer-wins resolution.
//
// Design goals:
//   - Deterministic behavior: the seed policy is explicit; no time-based sources.
//   - Safe by construction: invalid values surface as sentinel errors from New,
//     never as panics (every listed condition is a caller-facing contract).
package elm

import (
	"math/rand"

	"github.com/captain-KYD/ELMToolbox/activation"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultHiddenWidth is the hidden layer width L used when
	// WithHiddenWidth is not supplied.
	DefaultHiddenWidth = 1000

	// DefaultRegularization is the ridge coefficient λ used when
	// WithRegularization is not supplied.
	DefaultRegularization = 1000.0

	// DefaultActivation is the activation applied to pre-activations when
	// neither WithActivation nor WithActivationFunc is supplied.
	DefaultActivation = activation.Sigmoid
)

// Option mutates internal options. Applied in order; last-writer-wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported by design; public entry points accept ...Option.
type options struct {
	hiddenWidth    int
	regularization float64
	actName        activation.Name
	actFunc        activation.Func // takes precedence over actName when set
	seed           int64
	seedSet        bool
	rng            *rand.Rand // takes precedence over seed when set
}

// WithHiddenWidth sets the hidden layer width L. Values ≤ 0 are rejected by
// New with ErrInvalidDimension.
func WithHiddenWidth(l int) Option {
	return func(o *options) { o.hiddenWidth = l }
}

// WithRegularization sets the ridge coefficient λ. Values ≤ 0 are rejected
// by New with ErrInvalidRegularization.
func WithRegularization(lambda float64) Option {
	return func(o *options) { o.regularization = lambda }
}

// WithActivation selects a built-in activation by name. Unknown names are
// rejected by New with activation.ErrUnsupported.
func WithActivation(name activation.Name) Option {
	return func(o *options) {
		o.actName = name
		o.actFunc = nil
	}
}

// WithActivationFunc supplies an arbitrary elementwise activation. It takes
// precedence over any named selection.
func WithActivationFunc(f activation.Func) Option {
	return func(o *options) { o.actFunc = f }
}

// WithSeed fixes the seed of the random projection. Identical seeds (with
// identical dimensions) produce bit-identical projections; seed 0 is
// honored verbatim.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
		o.rng = nil
	}
}

// WithRand supplies a pre-built random source for projection generation.
// Takes precedence over WithSeed. The source is consumed only during
// construction and not retained.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults. The default seed policy — no WithSeed and no WithRand — draws
// one seed from the process-wide default source, so distinct models get
// distinct projections while each constructed model stays internally
// deterministic.
func gatherOptions(user ...Option) options {
	o := options{
		hiddenWidth:    DefaultHiddenWidth,
		regularization: DefaultRegularization,
		actName:        DefaultActivation,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
