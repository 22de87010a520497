// Package elmtoolbox is an in-memory toolbox for Extreme Learning Machines —
// single-hidden-layer networks with a fixed random projection and an
// online/sequential regularized least-squares output solver.
//
// 🚀 What is ELMToolbox?
//
//	A deterministic, streaming-friendly library that brings together:
//		• Random projections: fixed, seed-reproducible input→hidden maps
//		• Activations: sigmoid, sine, hard-limit, triangular & radial bases
//		• Sequential solver: ridge regression updated batch-by-batch without
//		  ever re-solving from scratch (Woodbury block growth + recursive
//		  least squares once saturated)
//		• Stacked networks: chained ELM layers with PCA reduction in between
//
// ✨ Why choose ELMToolbox?
//
//   - Streaming-first – absorb unbounded batch sequences at cost independent
//     of total history length once saturated
//   - Reproducible research – same seed ⇒ bit-identical projections
//   - Rank-tolerant – every inversion is an SVD pseudo-inverse; ill-conditioned
//     batches degrade gracefully instead of failing
//   - Pure Go – gonum for the linear algebra, nothing else
//
// Everything is organized under four subpackages:
//
//	activation/ — named elementwise non-linearities + custom functions
//	projection/ — fixed random input→hidden weights and bias
//	elm/        — the model: construction, Train (sequential solver), Predict
//	stacked/    — multi-layer composition with PCA reduction between layers
//
// Quick sketch of the data flow:
//
//	X ──▶ projection ──▶ activation ──▶ H ──▶ sequential solver ──▶ Beta
//	                                    └──▶ H·Beta = predictions
//
// Dive into elm/doc.go for the solver's regime machine and the exact
// update formulas.
//
//	go get github.com/captain-KYD/ELMToolbox/elm
package elmtoolbox
