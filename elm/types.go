// Package elm: domain types — the training phase machine and the model state.
package elm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/captain-KYD/ELMToolbox/activation"
	"github.com/captain-KYD/ELMToolbox/projection"
)

// Phase identifies where the sequential solver is in its lifecycle. The
// phase is tracked explicitly rather than re-derived from matrix sizes, so
// boundary batches cannot misclassify the regime. Transitions are strictly
// monotonic: Uninitialized → Growing → Saturated, and Saturated is
// absorbing — the model never reverts, regardless of future batch sizes.
type Phase int

const (
	// Uninitialized: no Train call has been absorbed yet; P and Beta are
	// undefined and Predict returns ErrNotTrained.
	Uninitialized Phase = iota

	// Growing: fewer samples than the hidden width have been absorbed; P is
	// k×k for cumulative sample count k and all hidden rows/targets seen so
	// far are buffered.
	Growing

	// Saturated: at least hiddenWidth samples have been absorbed; P is
	// exactly hiddenWidth×hiddenWidth, buffers are released, and every
	// further batch is folded in by recursive least squares.
	Saturated
)

// String returns the phase name for diagnostics and tests.
func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "Uninitialized"
	case Growing:
		return "Growing"
	case Saturated:
		return "Saturated"
	default:
		return "Unknown"
	}
}

// Model is a single ELM instance. The projection and activation are fixed
// at construction; Train mutates (P, Beta, buffers) in place.
//
// Invariants (enforced by the train regimes, checked in tests):
//   - the projection never changes after construction;
//   - P's dimension never exceeds the hidden width;
//   - Beta's row count equals the buffered sample count while Growing and
//     the hidden width once Saturated;
//   - buffers are non-empty exactly while Growing.
//
// A Model is NOT safe for concurrent mutation; see the package doc.
type Model struct {
	inputDim       int
	hiddenWidth    int
	regularization float64
	seed           int64

	proj *projection.Projection
	act  activation.Func

	phase   Phase
	outDim  int // 0 until the first Train call fixes it
	samples int // cumulative absorbed sample count

	p    *mat.Dense // sufficient statistic; k×k while Growing, L×L Saturated
	beta *mat.Dense // output weights; rows follow p's dimension
	bufH *mat.Dense // buffered hidden rows, Growing phase only
	bufY *mat.Dense // buffered targets, Growing phase only
}

// InputDim returns the fixed input dimensionality n.
func (m *Model) InputDim() int { return m.inputDim }

// HiddenWidth returns the fixed hidden layer width L.
func (m *Model) HiddenWidth() int { return m.hiddenWidth }

// Regularization returns the ridge coefficient λ.
func (m *Model) Regularization() float64 { return m.regularization }

// Seed returns the seed the projection was generated from.
func (m *Model) Seed() int64 { return m.seed }

// Phase returns the solver's current lifecycle phase.
func (m *Model) Phase() Phase { return m.phase }

// IsTrained reports whether at least one Train call has succeeded.
func (m *Model) IsTrained() bool { return m.phase != Uninitialized }

// SampleCount returns the cumulative number of samples absorbed so far.
func (m *Model) SampleCount() int { return m.samples }

// OutputDim returns the target dimensionality m fixed by the first Train
// call, or 0 before any training.
func (m *Model) OutputDim() int { return m.outDim }

// Projection returns the model's fixed random projection.
func (m *Model) Projection() *projection.Projection { return m.proj }

// OutputWeights returns a copy of the current hidden→output weights, or
// nil before any Train call. Mutating the copy has no effect on the model.
func (m *Model) OutputWeights() *mat.Dense {
	if m.beta == nil {
		return nil
	}
	return mat.DenseCopyOf(m.beta)
}
