package projection

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive inputDim or hiddenWidth.
	ErrInvalidDimension = errors.New("projection: dimensions must be > 0")

	// ErrDimensionMismatch indicates Transform input whose column count
	// differs from the projection's inputDim.
	ErrDimensionMismatch = errors.New("projection: input width does not match projection")
)
