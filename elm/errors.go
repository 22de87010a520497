// Package elm: sentinel error set.
// All public operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered conditions; numerical
// near-singularity is absorbed by the pseudo-inverse, never raised.
package elm

import "errors"

var (
	// ErrMissingConfig is returned when the required input dimension is
	// absent (zero) at construction.
	ErrMissingConfig = errors.New("elm: input dimension is required")

	// ErrInvalidDimension is returned when a size parameter (input
	// dimension, hidden width) is negative or otherwise not a positive
	// integer.
	ErrInvalidDimension = errors.New("elm: dimensions must be > 0")

	// ErrInvalidRegularization is returned when the ridge coefficient is
	// not strictly positive.
	ErrInvalidRegularization = errors.New("elm: regularization must be > 0")

	// ErrDimensionMismatch indicates inconsistent shapes at train or
	// predict time: X column count differs from the input dimension, Y row
	// count differs from X's, or Y column count changes between calls.
	ErrDimensionMismatch = errors.New("elm: dimension mismatch")

	// ErrNotTrained is returned by Predict (and Score) before any
	// successful Train call.
	ErrNotTrained = errors.New("elm: model has not been trained")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("elm: nil matrix")

	// ErrSVDFailed indicates the SVD factorization inside a pseudo-inverse
	// did not converge. This is not the ill-conditioning case (which the
	// pseudo-inverse absorbs) but a hard numerical failure; it is expected
	// to be unreachable on finite inputs.
	ErrSVDFailed = errors.New("elm: svd failed to converge")
)
