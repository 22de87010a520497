// Package projection generates and applies the fixed random input→hidden
// map of an Extreme Learning Machine.
//
// What:
//
//   - Projection — an immutable (weights, bias) pair generated once from a
//     seeded random source: weights ~ U[-1,1] (inputDim×hiddenWidth),
//     bias ~ U[0,1] (1×hiddenWidth).
//   - Transform computes X·W + bias (row-broadcast), the pre-activation
//     matrix handed to an activation function.
//   - FromSeed / DeriveSeed centralize deterministic RNG construction so the
//     same seed reproduces bit-identical projections across runs.
//
// Why:
//
//   - The statistical identity of the random feature space must be frozen
//     for a model's lifetime; everything downstream (the sequential solver's
//     sufficient statistic) is defined relative to this one projection.
//
// Determinism:
//
//   - Same (inputDim, hiddenWidth, seed) ⇒ bit-identical weights and bias.
//   - No time-based sources anywhere; callers own the seed policy.
//
// Concurrency:
//
//   - A constructed Projection is immutable and safe for concurrent reads.
//   - math/rand.Rand is NOT goroutine-safe; do not share the source used
//     for construction across goroutines.
//
// Errors:
//
//   - ErrInvalidDimension: inputDim or hiddenWidth is not positive.
//   - ErrDimensionMismatch: Transform input column count differs from
//     inputDim.
package projection
