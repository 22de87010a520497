// Package stacked: domain types and functional configuration.
package stacked

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/captain-KYD/ELMToolbox/activation"
	"github.com/captain-KYD/ELMToolbox/elm"
	"github.com/captain-KYD/ELMToolbox/projection"
)

// hiddenLayer is one intermediate stage: a fixed random projection and
// activation, plus the PCA reduction learned for it during Fit.
type hiddenLayer struct {
	proj *projection.Projection
	act  activation.Func

	// Learned at Fit, frozen afterwards.
	mean   []float64  // column means of the hidden output used for centering
	reduce *mat.Dense // hiddenWidth × reducedDim component matrix
}

// Network is a chain of hidden layers feeding a final elm.Model. Fit and
// Predict are NOT safe for concurrent use on the same instance; the final
// model inherits elm's concurrency contract.
type Network struct {
	inputDim int
	reduced  int
	layers   []*hiddenLayer
	out      *elm.Model
	fitted   bool
}

// InputDim returns the expected input column count.
func (n *Network) InputDim() int { return n.inputDim }

// ReducedDim returns the width every intermediate hidden output is
// projected down to.
func (n *Network) ReducedDim() int { return n.reduced }

// Depth returns the total number of layers, the final model included.
func (n *Network) Depth() int { return len(n.layers) + 1 }

// IsFitted reports whether Fit has succeeded.
func (n *Network) IsFitted() bool { return n.fitted }

// Output returns the final elm.Model. Exposed so callers can stream
// further batches into the output layer (its sequential solver keeps
// working after Fit) or inspect its phase.
func (n *Network) Output() *elm.Model { return n.out }

// ReductionMatrix returns a copy of the PCA matrix learned for the given
// intermediate layer, or nil before Fit.
func (n *Network) ReductionMatrix(layer int) *mat.Dense {
	if layer < 0 || layer >= len(n.layers) || n.layers[layer].reduce == nil {
		return nil
	}
	return mat.DenseCopyOf(n.layers[layer].reduce)
}

// Option mutates construction options.
type Option func(*options)

type options struct {
	regularization float64
	actName        activation.Name
	actFunc        activation.Func
	seed           int64
	seedSet        bool
}

// WithRegularization sets the final layer's ridge coefficient λ
// (default elm.DefaultRegularization).
func WithRegularization(lambda float64) Option {
	return func(o *options) { o.regularization = lambda }
}

// WithActivation selects the built-in activation used by every layer.
func WithActivation(name activation.Name) Option {
	return func(o *options) {
		o.actName = name
		o.actFunc = nil
	}
}

// WithActivationFunc supplies a custom activation for every layer; takes
// precedence over WithActivation.
func WithActivationFunc(f activation.Func) Option {
	return func(o *options) { o.actFunc = f }
}

// WithSeed fixes the network seed. Per-layer projection seeds are derived
// from it, so one seed reproduces the whole stack.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		regularization: elm.DefaultRegularization,
		actName:        elm.DefaultActivation,
	}
	for _, set := range user {
		set(&o)
	}
	if !o.seedSet {
		o.seed = rand.Int63()
	}

	return o
}
