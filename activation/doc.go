// Package activation provides the elementwise non-linearities applied to a
// hidden layer's pre-activation matrix, selectable by name or supplied as an
// arbitrary function.
//
// What:
//
//   - Func — a pure elementwise transform float64 → float64.
//   - A fixed named set: Sigmoid, Sine, HardLim, TriBas, RadBas.
//   - Resolve maps a Name onto its Func; unknown names yield ErrUnsupported.
//   - Func.Apply writes f(src) elementwise into a dense destination.
//
// Why:
//
//   - The random-projection feature map is only useful after a non-linear
//     squash; the classical ELM literature fixes this small set of closed
//     forms, and real pipelines occasionally need a custom one.
//
// Errors:
//
//   - ErrUnsupported: the requested name is outside the fixed set.
//
// All functions are stateless and safe for concurrent use.
package activation
