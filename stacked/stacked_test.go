package stacked_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/captain-KYD/ELMToolbox/activation"
	"github.com/captain-KYD/ELMToolbox/elm"
	"github.com/captain-KYD/ELMToolbox/projection"
	"github.com/captain-KYD/ELMToolbox/stacked"
)

// dataset builds a deterministic regression set with n rows, d inputs and
// one target column.
func dataset(seed int64, n, d int) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, d, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < d; j++ {
			v := rng.NormFloat64()
			x.Set(i, j, v)
			s += v * float64(j+1)
		}
		y.Set(i, 0, math.Sin(s)+0.01*rng.NormFloat64())
	}
	return x, y
}

// TestNew_Validation covers the construction error surface.
func TestNew_Validation(t *testing.T) {
	_, err := stacked.New(4, nil, 3)
	assert.ErrorIs(t, err, stacked.ErrNoLayers)

	_, err = stacked.New(0, []int{8}, 3)
	assert.ErrorIs(t, err, stacked.ErrInvalidDimension)

	_, err = stacked.New(4, []int{8, 0, 8}, 3)
	assert.ErrorIs(t, err, stacked.ErrInvalidDimension)

	_, err = stacked.New(4, []int{8, 8}, 0)
	assert.ErrorIs(t, err, stacked.ErrInvalidReduction)

	_, err = stacked.New(4, []int{4, 16}, 6)
	assert.ErrorIs(t, err, stacked.ErrInvalidReduction, "reduction wider than an intermediate layer")

	_, err = stacked.New(4, []int{8, 8}, 4, stacked.WithActivation("gelu"))
	assert.ErrorIs(t, err, activation.ErrUnsupported)
}

// TestSingleLayer_MatchesPlainELM: a one-entry width list must behave
// exactly like a plain elm.Model built with the derived seed.
func TestSingleLayer_MatchesPlainELM(t *testing.T) {
	x, y := dataset(1, 12, 3)

	net, err := stacked.New(3, []int{8}, 0, stacked.WithSeed(7), stacked.WithRegularization(100))
	require.NoError(t, err)
	require.NoError(t, net.Fit(x, y))

	sigmoid, err := activation.Resolve(activation.Sigmoid)
	require.NoError(t, err)
	plain, err := elm.New(3,
		elm.WithHiddenWidth(8),
		elm.WithRegularization(100),
		elm.WithActivationFunc(sigmoid),
		elm.WithSeed(projection.DeriveSeed(7, 0)),
	)
	require.NoError(t, err)
	require.NoError(t, plain.Train(x, y))

	probe := mat.NewDense(2, 3, []float64{0.1, 0.2, 0.3, -1, 0, 1})
	got, err := net.Predict(probe)
	require.NoError(t, err)
	want, err := plain.Predict(probe)
	require.NoError(t, err)

	assert.True(t, mat.Equal(want, got), "degenerate stack must equal a plain ELM")
	assert.Equal(t, 1, net.Depth())
}

// TestFit_DeepNetwork exercises two intermediate layers plus the output
// model end to end.
func TestFit_DeepNetwork(t *testing.T) {
	x, y := dataset(2, 30, 4)

	net, err := stacked.New(4, []int{16, 12, 10}, 6, stacked.WithSeed(11))
	require.NoError(t, err)
	require.False(t, net.IsFitted())
	assert.Equal(t, 3, net.Depth())

	require.NoError(t, net.Fit(x, y))
	assert.True(t, net.IsFitted())

	// PCA matrices: hiddenWidth × reducedDim per intermediate layer.
	r0, c0 := net.ReductionMatrix(0).Dims()
	assert.Equal(t, 16, r0)
	assert.Equal(t, 6, c0)
	r1, c1 := net.ReductionMatrix(1).Dims()
	assert.Equal(t, 12, r1)
	assert.Equal(t, 6, c1)
	assert.Nil(t, net.ReductionMatrix(2), "the final layer has no reduction")

	// The output model saw 30 ≥ 10 samples in one batch ⇒ saturated.
	assert.Equal(t, elm.Saturated, net.Output().Phase())

	pred, err := net.Predict(x)
	require.NoError(t, err)
	pr, pc := pred.Dims()
	assert.Equal(t, 30, pr)
	assert.Equal(t, 1, pc)
	for i := 0; i < pr; i++ {
		v := pred.At(i, 0)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "row %d must be finite", i)
	}
}

// TestFit_Determinism: one seed reproduces the whole stack.
func TestFit_Determinism(t *testing.T) {
	x, y := dataset(3, 25, 4)
	probe := mat.NewDense(1, 4, []float64{0.5, -0.5, 1, 0})

	build := func() *mat.Dense {
		net, err := stacked.New(4, []int{12, 10}, 5, stacked.WithSeed(99))
		require.NoError(t, err)
		require.NoError(t, net.Fit(x, y))
		pred, err := net.Predict(probe)
		require.NoError(t, err)
		return pred
	}

	assert.True(t, mat.Equal(build(), build()), "same seed + data ⇒ identical predictions")
}

// TestUpdate_StreamsIntoOutputLayer: after Fit, Update keeps the
// reductions frozen and moves only the final solver.
func TestUpdate_StreamsIntoOutputLayer(t *testing.T) {
	x, y := dataset(4, 30, 4)
	more, moreY := dataset(5, 6, 4)

	net, err := stacked.New(4, []int{16, 10}, 6, stacked.WithSeed(17))
	require.NoError(t, err)
	require.NoError(t, net.Fit(x, y))

	before := net.ReductionMatrix(0)
	betaBefore := net.Output().OutputWeights()

	require.NoError(t, net.Update(more, moreY))

	assert.True(t, mat.Equal(before, net.ReductionMatrix(0)), "reductions stay frozen")
	assert.False(t, mat.Equal(betaBefore, net.Output().OutputWeights()), "output weights must move")
	assert.Equal(t, 36, net.Output().SampleCount())
}

// TestLifecycle_Errors covers the not-fitted and shape error surfaces.
func TestLifecycle_Errors(t *testing.T) {
	net, err := stacked.New(4, []int{12, 8}, 5, stacked.WithSeed(1))
	require.NoError(t, err)

	_, err = net.Predict(mat.NewDense(1, 4, nil))
	assert.ErrorIs(t, err, stacked.ErrNotFitted)

	err = net.Update(mat.NewDense(1, 4, nil), mat.NewDense(1, 1, nil))
	assert.ErrorIs(t, err, stacked.ErrNotFitted)

	err = net.Fit(mat.NewDense(8, 3, nil), mat.NewDense(8, 1, nil))
	assert.ErrorIs(t, err, stacked.ErrDimensionMismatch, "wrong input width")

	err = net.Fit(mat.NewDense(8, 4, nil), mat.NewDense(7, 1, nil))
	assert.ErrorIs(t, err, stacked.ErrDimensionMismatch, "target rows disagree")

	err = net.Fit(mat.NewDense(3, 4, nil), mat.NewDense(3, 1, nil))
	assert.ErrorIs(t, err, stacked.ErrTooFewSamples, "3 rows cannot support a 5-wide PCA")

	err = net.Fit(nil, nil)
	assert.ErrorIs(t, err, stacked.ErrNilMatrix)
}

// TestHiddenOutput_PerLayerShapes checks the composition hook across the
// chain.
func TestHiddenOutput_PerLayerShapes(t *testing.T) {
	x, y := dataset(6, 20, 4)

	net, err := stacked.New(4, []int{16, 12, 10}, 6, stacked.WithSeed(23))
	require.NoError(t, err)

	// Layer 0 needs no fitted reductions.
	h0, err := net.HiddenOutput(0, x)
	require.NoError(t, err)
	r, c := h0.Dims()
	assert.Equal(t, 20, r)
	assert.Equal(t, 16, c)

	// Deeper layers propagate through learned reductions.
	_, err = net.HiddenOutput(1, x)
	assert.ErrorIs(t, err, stacked.ErrNotFitted)

	require.NoError(t, net.Fit(x, y))

	h1, err := net.HiddenOutput(1, x)
	require.NoError(t, err)
	_, c = h1.Dims()
	assert.Equal(t, 12, c)

	hFinal, err := net.HiddenOutput(2, x)
	require.NoError(t, err)
	_, c = hFinal.Dims()
	assert.Equal(t, 10, c)

	_, err = net.HiddenOutput(3, x)
	assert.ErrorIs(t, err, stacked.ErrLayerIndex)
	_, err = net.HiddenOutput(-1, x)
	assert.ErrorIs(t, err, stacked.ErrLayerIndex)
}
