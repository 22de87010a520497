// Package elm: rank-tolerant inversion.
//
// Every inversion in the sequential solver goes through pseudoInverse. A
// strict inverse (LU with a singularity error) would turn ill-conditioned
// batches into hard failures; the solver's contract is to absorb them, so
// singular values below the tolerance are zeroed rather than rejected.
package elm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// pseudoInverse returns the Moore–Penrose pseudo-inverse of a via thin SVD.
// Singular values at or below max(r,c)·eps·σ_max are treated as zero (the
// LAPACK/gonum rank convention); the exact threshold is deliberately left
// at the library default rather than exposed as a knob.
//
// The only error is ErrSVDFailed on factorization non-convergence, which is
// not reachable on finite inputs in practice.
//
// Complexity: O(min(r,c)·r·c) time, O(r·c) space.
func pseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	larger := r
	if c > r {
		larger = c
	}
	// s is non-increasing; s[0] is σ_max.
	tol := float64(larger) * machineEpsilon * s[0]

	inv := make([]float64, len(s))
	for i, sv := range s {
		if sv > tol {
			inv[i] = 1 / sv
		}
	}

	// pinv(A) = V · diag(1/σ) · Uᵀ
	var vd mat.Dense
	vd.Mul(&v, mat.NewDiagDense(len(s), inv))
	out := mat.NewDense(c, r, nil)
	out.Mul(&vd, u.T())

	return out, nil
}

// machineEpsilon is the float64 unit roundoff, 2^-52.
var machineEpsilon = math.Nextafter(1, 2) - 1

// addScaledEye adds v to every diagonal entry of the square matrix a,
// i.e. a ← a + v·I, in place.
func addScaledEye(a *mat.Dense, v float64) {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+v)
	}
}
