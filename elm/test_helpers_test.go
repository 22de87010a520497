package elm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/captain-KYD/ELMToolbox/elm"
)

// randBatch generates a deterministic (X, Y) pair with n rows, d input
// columns and m target columns. Targets are a smooth function of the
// inputs plus noise so ridge solutions are well-behaved.
func randBatch(rng *rand.Rand, n, d, m int) (*mat.Dense, *mat.Dense) {
	x := mat.NewDense(n, d, nil)
	y := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < d; j++ {
			v := rng.NormFloat64()
			x.Set(i, j, v)
			s += v
		}
		for j := 0; j < m; j++ {
			y.Set(i, j, s*float64(j+1)+0.01*rng.NormFloat64())
		}
	}
	return x, y
}

// rows extracts the half-open row range [from, to) of a as a new matrix.
func rows(a *mat.Dense, from, to int) *mat.Dense {
	_, c := a.Dims()
	return mat.DenseCopyOf(a.Slice(from, to, 0, c))
}

// newTestModel builds a small deterministic model shared by the
// equivalence tests: 3 inputs, hidden width 6, λ=100, seed 99.
func newTestModel(t *testing.T) *elm.Model {
	t.Helper()
	m, err := elm.New(3,
		elm.WithHiddenWidth(6),
		elm.WithRegularization(100),
		elm.WithSeed(99),
	)
	require.NoError(t, err)
	return m
}

// trainSplits feeds x/y to a fresh test model as sequential batches with
// the given row counts and returns the model.
func trainSplits(t *testing.T, x, y *mat.Dense, splits ...int) *elm.Model {
	t.Helper()
	m := newTestModel(t)
	at := 0
	for _, n := range splits {
		require.NoError(t, m.Train(rows(x, at, at+n), rows(y, at, at+n)))
		at += n
	}
	total, _ := x.Dims()
	require.Equal(t, total, at, "splits must cover the dataset")
	return m
}
