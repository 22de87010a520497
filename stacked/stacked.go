package stacked

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/captain-KYD/ELMToolbox/activation"
	"github.com/captain-KYD/ELMToolbox/elm"
	"github.com/captain-KYD/ELMToolbox/projection"
)

// New builds a stacked network. widths lists every layer's hidden width,
// front to back; the last entry belongs to the final elm.Model and every
// earlier entry spawns an intermediate layer whose hidden output is
// PCA-reduced to reducedDim before feeding the next stage. A single-entry
// widths list degenerates to a plain ELM behind the Network interface
// (reducedDim is then ignored).
//
// Errors:
//   - ErrNoLayers: widths is empty.
//   - ErrInvalidDimension: inputDim or any width is not positive.
//   - ErrInvalidReduction: intermediate layers exist and reducedDim is not
//     positive or exceeds some intermediate width.
//   - elm construction errors (λ, activation) pass through unchanged.
//
// Determinism: layer i's projection seed is projection.DeriveSeed(seed, i).
//
// Complexity: O(Σ inputs·widths) time and space for the projections.
func New(inputDim int, widths []int, reducedDim int, opts ...Option) (*Network, error) {
	if len(widths) == 0 {
		return nil, ErrNoLayers
	}
	if inputDim <= 0 {
		return nil, ErrInvalidDimension
	}
	for _, w := range widths {
		if w <= 0 {
			return nil, ErrInvalidDimension
		}
	}
	intermediate := widths[:len(widths)-1]
	if len(intermediate) > 0 {
		if reducedDim <= 0 {
			return nil, ErrInvalidReduction
		}
		for _, w := range intermediate {
			if reducedDim > w {
				return nil, ErrInvalidReduction
			}
		}
	}

	o := gatherOptions(opts...)
	act := o.actFunc
	if act == nil {
		var err error
		if act, err = activation.Resolve(o.actName); err != nil {
			return nil, err
		}
	}

	n := &Network{inputDim: inputDim, reduced: reducedDim}
	in := inputDim
	for i, w := range intermediate {
		seed := projection.DeriveSeed(o.seed, uint64(i))
		proj, err := projection.New(in, w, projection.FromSeed(seed))
		if err != nil {
			return nil, err
		}
		n.layers = append(n.layers, &hiddenLayer{proj: proj, act: act})
		in = reducedDim
	}

	out, err := elm.New(in,
		elm.WithHiddenWidth(widths[len(widths)-1]),
		elm.WithRegularization(o.regularization),
		elm.WithActivationFunc(act),
		elm.WithSeed(projection.DeriveSeed(o.seed, uint64(len(intermediate)))),
	)
	if err != nil {
		return nil, err
	}
	n.out = out

	return n, nil
}

// Fit learns the network front to back on one batch: each intermediate
// layer's PCA reduction is learned from its hidden output and frozen, and
// the final elm.Model absorbs the last reduced representation. Further
// batches may afterwards be streamed through Update, with the reductions
// held fixed.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch: shape validation.
//   - ErrTooFewSamples: fewer rows than reducedDim (PCA under-determined).
//   - ErrPCAFailed: factorization non-convergence.
//
// Complexity: dominated by the per-layer SVDs, O(Σ N·width·min(N,width)).
func (n *Network) Fit(x, y mat.Matrix) error {
	if x == nil || y == nil {
		return ErrNilMatrix
	}
	xr, xc := x.Dims()
	if xc != n.inputDim {
		return ErrDimensionMismatch
	}
	if yr, _ := y.Dims(); yr != xr {
		return ErrDimensionMismatch
	}
	if len(n.layers) > 0 && xr < n.reduced {
		return ErrTooFewSamples
	}

	cur := x
	for _, ly := range n.layers {
		h, err := hiddenOf(ly, cur)
		if err != nil {
			return err
		}

		var pc stat.PC
		if ok := pc.PrincipalComponents(h, nil); !ok {
			return ErrPCAFailed
		}
		var vec mat.Dense
		pc.VectorsTo(&vec)
		vr, vc := vec.Dims()
		if vc < n.reduced {
			return ErrTooFewSamples
		}

		ly.mean = columnMeans(h)
		ly.reduce = mat.DenseCopyOf(vec.Slice(0, vr, 0, n.reduced))
		cur = reduceOf(ly, h)
	}

	if err := n.out.Train(cur, y); err != nil {
		return err
	}
	n.fitted = true

	return nil
}

// Update streams one more batch into the final model's sequential solver,
// propagating x through the frozen reductions first. The intermediate
// layers are not re-learned; only the output layer moves. Returns
// ErrNotFitted before a successful Fit.
func (n *Network) Update(x, y mat.Matrix) error {
	if !n.fitted {
		return ErrNotFitted
	}
	if x == nil || y == nil {
		return ErrNilMatrix
	}
	xr, _ := x.Dims()
	if yr, _ := y.Dims(); yr != xr {
		return ErrDimensionMismatch
	}

	cur, err := n.propagate(x, len(n.layers))
	if err != nil {
		return err
	}

	return n.out.Train(cur, y)
}

// Predict replays the learned propagation and returns the final layer's
// predictions. Returns ErrNotFitted before a successful Fit.
func (n *Network) Predict(x mat.Matrix) (*mat.Dense, error) {
	if !n.fitted {
		return nil, ErrNotFitted
	}
	cur, err := n.propagate(x, len(n.layers))
	if err != nil {
		return nil, err
	}

	return n.out.Predict(cur)
}

// HiddenOutput returns the raw (pre-reduction) hidden representation of
// the given layer for x. Index len(layers) addresses the final model's
// hidden layer. Layers beyond the first require a fitted network, since
// propagation runs through the learned reductions of the preceding stages.
func (n *Network) HiddenOutput(layer int, x mat.Matrix) (*mat.Dense, error) {
	if layer < 0 || layer >= n.Depth() {
		return nil, ErrLayerIndex
	}
	if layer > 0 && !n.fitted {
		return nil, ErrNotFitted
	}

	cur, err := n.propagate(x, layer)
	if err != nil {
		return nil, err
	}
	if layer == len(n.layers) {
		return n.out.HiddenOutput(cur)
	}

	return hiddenOf(n.layers[layer], cur)
}

// propagate pushes x through the first `depth` intermediate layers using
// their frozen reductions.
func (n *Network) propagate(x mat.Matrix, depth int) (mat.Matrix, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	if _, c := x.Dims(); c != n.inputDim {
		return nil, ErrDimensionMismatch
	}

	cur := x
	for i := 0; i < depth && i < len(n.layers); i++ {
		h, err := hiddenOf(n.layers[i], cur)
		if err != nil {
			return nil, err
		}
		cur = reduceOf(n.layers[i], h)
	}

	return cur, nil
}

// hiddenOf computes one layer's hidden representation.
func hiddenOf(ly *hiddenLayer, x mat.Matrix) (*mat.Dense, error) {
	pre, err := ly.proj.Transform(x)
	if err != nil {
		return nil, ErrDimensionMismatch
	}
	var h mat.Dense
	ly.act.Apply(&h, pre)

	return &h, nil
}

// reduceOf applies a layer's learned centering + PCA projection to its
// hidden output.
func reduceOf(ly *hiddenLayer, h *mat.Dense) *mat.Dense {
	var centered mat.Dense
	centered.Apply(func(_, j int, v float64) float64 { return v - ly.mean[j] }, h)

	var out mat.Dense
	out.Mul(&centered, ly.reduce)

	return &out
}

// columnMeans returns the per-column mean of a.
func columnMeans(a *mat.Dense) []float64 {
	r, c := a.Dims()
	means := make([]float64, c)
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += a.At(i, j)
		}
		means[j] = sum / float64(r)
	}

	return means
}
