// Package elm implements the Extreme Learning Machine: a single-hidden-layer
// network whose input→hidden projection is fixed at construction and whose
// hidden→output weights are solved by regularized least squares — updated
// sequentially, batch by batch, without ever re-solving from scratch.
//
// 🚀 What is the sequential solver?
//
//	The model keeps a compact sufficient statistic P (a regularized
//	inverse-correlation matrix) alongside the output weights Beta. Every
//	Train call folds one batch into (P, Beta) through one of four regimes,
//	chosen by an explicit phase machine:
//
//	  Uninitialized ──N<L──▶ Growing ──cumulative≥L──▶ Saturated
//	        └──────────N≥L──────────────────────────────▲
//
//	  A. Cold start, under-determined (first batch, N < L):
//	     solve ridge in dual form — P = pinv(H·Hᵀ + I/λ) is only N×N,
//	     Beta = Hᵀ·P·Y; buffer H and Y for later growth.
//	  B. Cold start, over-determined (first batch, N ≥ L):
//	     solve in primal form — P = pinv(I/λ + Hᵀ·H) (L×L),
//	     Beta = P·Hᵀ·Y; saturated immediately.
//	  C. Growth (0 < buffered < L): either the batch tips the cumulative
//	     count over L (concatenate buffers + batch, recompute as B, drop
//	     buffers) or P grows blockwise via the Woodbury identity: invert
//	     only the N×N Schur complement and assemble the enlarged P from
//	     four blocks — never a matrix larger than the cumulative count.
//	  D. Saturated (P is L×L, absorbing state): classical recursive least
//	     squares — P ← P − P·Hᵀ·pinv(I + H·P·Hᵀ)·H·P, then
//	     Beta ← Beta + P·Hᵀ·(Y − H·Beta). Cost per call is independent of
//	     total history length.
//
// ✨ Numerical policy:
//
//   - Every inversion is an SVD pseudo-inverse (see pinv.go). Rank-deficient
//     or ill-conditioned batches degrade gracefully instead of raising; do
//     not substitute a strict inverse here.
//
// ⚙️ Usage:
//
//	m, err := elm.New(4,
//	  elm.WithHiddenWidth(100),
//	  elm.WithRegularization(1000),
//	  elm.WithActivation(activation.Sigmoid),
//	  elm.WithSeed(42),
//	)
//	// stream batches in arrival order
//	_ = m.Train(x1, y1)
//	_ = m.Train(x2, y2)
//	pred, _ := m.Predict(xNew)
//
// Concurrency:
//
//   - Train mutates (P, Beta, buffers) in place and is history-dependent:
//     batches must be applied strictly in arrival order, serialized by the
//     caller. Predict is read-only and may run concurrently with itself,
//     but not with a concurrent Train on the same instance.
//
// Errors:
//
//   - ErrMissingConfig, ErrInvalidDimension, ErrInvalidRegularization —
//     construction.
//   - activation.ErrUnsupported — construction with an unknown name.
//   - ErrDimensionMismatch — Train/Predict shape inconsistencies.
//   - ErrNotTrained — Predict before any successful Train.
//
// See example_test.go for complete scenarios.
package elm
