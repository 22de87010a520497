package activation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/captain-KYD/ELMToolbox/activation"
)

// TestResolve_KnownNames verifies every member of the fixed set resolves.
func TestResolve_KnownNames(t *testing.T) {
	for _, name := range []activation.Name{
		activation.Sigmoid,
		activation.Sine,
		activation.HardLim,
		activation.TriBas,
		activation.RadBas,
	} {
		f, err := activation.Resolve(name)
		assert.NoError(t, err, "name %q must resolve", name)
		assert.NotNil(t, f, "name %q must yield a function", name)
	}
}

// TestResolve_Unknown ensures an out-of-set name yields ErrUnsupported.
func TestResolve_Unknown(t *testing.T) {
	_, err := activation.Resolve("relu")
	assert.ErrorIs(t, err, activation.ErrUnsupported, "unknown name must error")
}

// TestSigmoid_Values checks the logistic function at its anchor points.
func TestSigmoid_Values(t *testing.T) {
	f, err := activation.Resolve(activation.Sigmoid)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, f(0), 1e-12, "sigmoid(0) = 1/2")
	assert.InDelta(t, 1/(1+math.Exp(-2)), f(2), 1e-12)
	assert.InDelta(t, 1/(1+math.Exp(3)), f(-3), 1e-12)
}

// TestHardLim_Step checks the step boundary is inclusive at zero.
func TestHardLim_Step(t *testing.T) {
	f, err := activation.Resolve(activation.HardLim)
	require.NoError(t, err)

	assert.Equal(t, 1.0, f(0), "step is 1 at exactly zero")
	assert.Equal(t, 1.0, f(0.3))
	assert.Equal(t, 0.0, f(-0.3))
}

// TestTriBas_Support checks the triangular basis vanishes outside (-1, 1).
func TestTriBas_Support(t *testing.T) {
	f, err := activation.Resolve(activation.TriBas)
	require.NoError(t, err)

	assert.Equal(t, 1.0, f(0))
	assert.InDelta(t, 0.5, f(0.5), 1e-12)
	assert.InDelta(t, 0.5, f(-0.5), 1e-12)
	assert.Equal(t, 0.0, f(1))
	assert.Equal(t, 0.0, f(-2))
}

// TestRadBas_Values checks the Gaussian basis peak and symmetry.
func TestRadBas_Values(t *testing.T) {
	f, err := activation.Resolve(activation.RadBas)
	require.NoError(t, err)

	assert.Equal(t, 1.0, f(0))
	assert.InDelta(t, math.Exp(-4), f(2), 1e-12)
	assert.InDelta(t, f(1.5), f(-1.5), 1e-12, "radial basis is even")
}

// TestFunc_Apply ensures Apply transforms every entry and resizes dst.
func TestFunc_Apply(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{-1, 0, 1, 2, -2, 0.5})
	double := activation.Func(func(x float64) float64 { return 2 * x })

	var dst mat.Dense
	double.Apply(&dst, src)

	r, c := dst.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, -2.0, dst.At(0, 0))
	assert.Equal(t, 1.0, dst.At(1, 2))
}
