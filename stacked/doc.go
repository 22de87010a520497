// Package stacked chains multiple ELM-style layers into a deeper network:
// every intermediate layer owns a fixed random projection plus activation
// and a learned PCA reduction applied to its hidden output; the final layer
// is a full elm.Model trained on the last reduced representation.
//
// What:
//
//   - Network — an ordered chain of hidden layers and one output model.
//   - Fit learns, front to back: propagate the data to each layer, compute
//     its hidden output H, learn a principal-component reduction of H down
//     to the configured width, project, and hand the result to the next
//     layer; the final elm.Model absorbs the last representation.
//   - Predict replays the same propagation with the learned reductions.
//   - HiddenOutput exposes a single layer's raw hidden representation, the
//     per-layer hook of the composition contract.
//
// Why:
//
//   - A single random feature space saturates on hard targets; stacking
//     re-expands each reduced code through a fresh random projection,
//     which in practice behaves like unsupervised feature learning at a
//     fraction of backpropagation's cost.
//
// Determinism:
//
//   - One seed drives the whole network; per-layer projection seeds are
//     derived with projection.DeriveSeed, so the full stack is reproducible.
//
// Errors:
//
//   - ErrNoLayers, ErrInvalidDimension, ErrInvalidReduction — construction.
//   - ErrDimensionMismatch, ErrTooFewSamples, ErrPCAFailed — Fit.
//   - ErrNotFitted, ErrLayerIndex — Predict / HiddenOutput.
//
// The sequential-training property belongs to the final elm.Model; the
// intermediate reductions are batch-learned in Fit and then frozen.
package stacked
