package stacked

import "errors"

var (
	// ErrNoLayers indicates construction with an empty layer width list.
	ErrNoLayers = errors.New("stacked: at least one layer width is required")

	// ErrInvalidDimension indicates a non-positive input dimension or layer
	// width.
	ErrInvalidDimension = errors.New("stacked: dimensions must be > 0")

	// ErrInvalidReduction indicates a reduced dimension that is not
	// positive or exceeds a layer's hidden width.
	ErrInvalidReduction = errors.New("stacked: reduced dimension must be > 0 and ≤ every hidden width")

	// ErrDimensionMismatch indicates input whose column count differs from
	// the network's input dimension, or targets whose row count differs
	// from the input's.
	ErrDimensionMismatch = errors.New("stacked: dimension mismatch")

	// ErrTooFewSamples indicates a Fit batch with fewer rows than the
	// reduced dimension, leaving the PCA under-determined.
	ErrTooFewSamples = errors.New("stacked: fewer samples than reduced dimension")

	// ErrPCAFailed indicates the principal-component factorization of a
	// hidden representation did not converge.
	ErrPCAFailed = errors.New("stacked: principal component factorization failed")

	// ErrNotFitted indicates Predict or a propagated HiddenOutput before a
	// successful Fit.
	ErrNotFitted = errors.New("stacked: network has not been fitted")

	// ErrLayerIndex indicates a HiddenOutput layer index outside the chain.
	ErrLayerIndex = errors.New("stacked: layer index out of range")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("stacked: nil matrix")
)
