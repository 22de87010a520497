package elm

import "gonum.org/v1/gonum/mat"

// Train folds one batch into the model: computes the hidden representation
// H = activation(X·W + bias) and updates the sufficient statistic P and the
// output weights Beta under the regime selected by the current phase.
//
// Regime selection (see the package doc for the formulas):
//
//	Uninitialized, N < L  → cold start in dual form, begin buffering (A)
//	Uninitialized, N ≥ L  → cold start in primal form, saturate (B)
//	Growing, k+N ≥ L      → concatenate buffers + batch, primal, saturate (C, tip)
//	Growing, k+N < L      → Woodbury block growth of P (C)
//	Saturated             → recursive least squares (D)
//
// Batches must be applied strictly in arrival order; the statistic is
// history-dependent and non-commutative once buffering or recursive
// updates are in effect. Calls are intentionally cumulative: training twice
// on the same batch absorbs it twice.
//
// Errors (the model is left unchanged on any error):
//   - ErrNilMatrix: x or y is nil.
//   - ErrDimensionMismatch: x's column count ≠ InputDim, y's row count ≠
//     x's, or y's column count differs from the first call's.
//
// Complexity: O(L²·N + L·N² + N³) per call while Saturated (N = batch
// rows); growth-phase calls never invert anything larger than N×N.
func (m *Model) Train(x, y mat.Matrix) error {
	n, err := m.validateTrainPair(x, y)
	if err != nil {
		return err
	}

	h, err := m.HiddenOutput(x)
	if err != nil {
		return err
	}
	yd := mat.DenseCopyOf(y)

	switch m.phase {
	case Uninitialized:
		if n < m.hiddenWidth {
			err = m.coldStartDual(h, yd)
		} else {
			err = m.coldStartPrimal(h, yd)
		}
	case Growing:
		k, _ := m.p.Dims()
		if k+n >= m.hiddenWidth {
			var hAll, yAll mat.Dense
			hAll.Stack(m.bufH, h)
			yAll.Stack(m.bufY, yd)
			if err = m.coldStartPrimal(&hAll, &yAll); err == nil {
				m.bufH, m.bufY = nil, nil
			}
		} else {
			err = m.growBlockwise(h, yd)
		}
	default: // Saturated
		err = m.recursiveUpdate(h, yd)
	}
	if err != nil {
		return err
	}

	if _, c := yd.Dims(); m.outDim == 0 {
		m.outDim = c
	}
	m.samples += n

	return nil
}

// validateTrainPair checks the batch shapes without touching model state.
func (m *Model) validateTrainPair(x, y mat.Matrix) (int, error) {
	if x == nil || y == nil {
		return 0, ErrNilMatrix
	}
	xr, xc := x.Dims()
	if xc != m.inputDim {
		return 0, ErrDimensionMismatch
	}
	yr, yc := y.Dims()
	if yr != xr {
		return 0, ErrDimensionMismatch
	}
	if m.outDim != 0 && yc != m.outDim {
		return 0, ErrDimensionMismatch
	}

	return xr, nil
}

// coldStartDual solves the first under-determined batch in dual form:
//
//	P    = pinv(H·Hᵀ + I/λ)        (N×N — cheaper than L×L while N < L)
//	Beta = Hᵀ·P·Y                  (closed-form ridge, dual)
//
// H and Y are retained verbatim as the growth buffers. Transitions the
// phase to Growing.
func (m *Model) coldStartDual(h, y *mat.Dense) error {
	n, _ := h.Dims()

	g := mat.NewDense(n, n, nil)
	g.Mul(h, h.T())
	addScaledEye(g, 1/m.regularization)

	p, err := pseudoInverse(g)
	if err != nil {
		return err
	}

	var py mat.Dense
	py.Mul(p, y)
	var beta mat.Dense
	beta.Mul(h.T(), &py)

	m.p = p
	m.beta = &beta
	m.bufH = h
	m.bufY = y
	m.phase = Growing

	return nil
}

// coldStartPrimal solves an over-determined block in primal form:
//
//	P    = pinv(I/λ + Hᵀ·H)        (L×L)
//	Beta = P·Hᵀ·Y
//
// Used both for a large first batch and for the concatenated block that
// tips a growing model over the hidden width. Transitions the phase to
// Saturated (absorbing).
func (m *Model) coldStartPrimal(h, y *mat.Dense) error {
	l := m.hiddenWidth

	g := mat.NewDense(l, l, nil)
	g.Mul(h.T(), h)
	addScaledEye(g, 1/m.regularization)

	p, err := pseudoInverse(g)
	if err != nil {
		return err
	}

	var hty mat.Dense
	hty.Mul(h.T(), y)
	var beta mat.Dense
	beta.Mul(p, &hty)

	m.p = p
	m.beta = &beta
	m.phase = Saturated

	return nil
}

// growBlockwise enlarges the k×k statistic to (k+N)×(k+N) via the Woodbury
// identity instead of re-inverting from scratch. With Hp the buffered
// hidden rows and Pp the current statistic:
//
//	S    = (H·Hᵀ + I/λ) − H·Hpᵀ·Pp·Hp·Hᵀ    (N×N Schur complement)
//	invS = pinv(S)
//	P    = ⎡ Pp + Pp·Hp·Hᵀ·invS·H·Hpᵀ·Pp    −Pp·Hp·Hᵀ·invS ⎤
//	       ⎣ −invS·H·Hpᵀ·Pp                  invS           ⎦
//
// then Beta is recomputed from the enlarged buffers:
// Beta = Hbufᵀ·P·Ybuf. Only the N×N Schur complement is ever inverted.
func (m *Model) growBlockwise(h, y *mat.Dense) error {
	k, _ := m.p.Dims()
	n, _ := h.Dims()

	// cross = H·Hpᵀ (N×k): correlation of the new block against the buffer.
	var cross mat.Dense
	cross.Mul(h, m.bufH.T())

	// cp = H·Hpᵀ·Pp (N×k), pc = Pp·Hp·Hᵀ (k×N).
	var cp mat.Dense
	cp.Mul(&cross, m.p)
	var pc mat.Dense
	pc.Mul(m.p, cross.T())

	// Schur complement S = H·Hᵀ + I/λ − cp·(H·Hpᵀ)ᵀ.
	s := mat.NewDense(n, n, nil)
	s.Mul(h, h.T())
	addScaledEye(s, 1/m.regularization)
	var corr mat.Dense
	corr.Mul(&cp, cross.T())
	s.Sub(s, &corr)

	invS, err := pseudoInverse(s)
	if err != nil {
		return err
	}

	// Off-diagonal blocks.
	var topRight mat.Dense // −pc·invS (k×N)
	topRight.Mul(&pc, invS)
	topRight.Scale(-1, &topRight)
	var bottomLeft mat.Dense // −invS·cp (N×k)
	bottomLeft.Mul(invS, &cp)
	bottomLeft.Scale(-1, &bottomLeft)

	// topLeft = Pp + pc·invS·cp = Pp − topRight·cp (k×k).
	var topLeft mat.Dense
	topLeft.Mul(&topRight, &cp)
	topLeft.Sub(m.p, &topLeft)

	// Assemble the enlarged statistic.
	dim := k + n
	grown := mat.NewDense(dim, dim, nil)
	grown.Slice(0, k, 0, k).(*mat.Dense).Copy(&topLeft)
	grown.Slice(0, k, k, dim).(*mat.Dense).Copy(&topRight)
	grown.Slice(k, dim, 0, k).(*mat.Dense).Copy(&bottomLeft)
	grown.Slice(k, dim, k, dim).(*mat.Dense).Copy(invS)

	var hBuf, yBuf mat.Dense
	hBuf.Stack(m.bufH, h)
	yBuf.Stack(m.bufY, y)

	// Beta = Hbufᵀ·P·Ybuf over the full buffered history.
	var pBuf mat.Dense
	pBuf.Mul(grown, &yBuf)
	var beta mat.Dense
	beta.Mul(hBuf.T(), &pBuf)

	m.p = grown
	m.beta = &beta
	m.bufH = &hBuf
	m.bufY = &yBuf

	return nil
}

// recursiveUpdate is the steady-state Sherman–Morrison–Woodbury fold-in:
//
//	P    ← P − P·Hᵀ·pinv(I + H·P·Hᵀ)·H·P
//	Beta ← Beta + P·Hᵀ·(Y − H·Beta)      (with the updated P)
//
// No full-matrix reinversion; the cost per call is independent of total
// history length.
func (m *Model) recursiveUpdate(h, y *mat.Dense) error {
	n, _ := h.Dims()

	// ph = P·Hᵀ (L×N).
	var ph mat.Dense
	ph.Mul(m.p, h.T())

	// gain = pinv(I + H·P·Hᵀ) (N×N).
	inner := mat.NewDense(n, n, nil)
	inner.Mul(h, &ph)
	addScaledEye(inner, 1)
	gain, err := pseudoInverse(inner)
	if err != nil {
		return err
	}

	// P ← P − ph·gain·H·P.
	var gh mat.Dense
	gh.Mul(gain, h)
	var ghp mat.Dense
	ghp.Mul(&gh, m.p)
	var corr mat.Dense
	corr.Mul(&ph, &ghp)
	m.p.Sub(m.p, &corr)

	// Beta ← Beta + P·Hᵀ·(Y − H·Beta), P already updated.
	var resid mat.Dense
	resid.Mul(h, m.beta)
	resid.Sub(y, &resid)
	var pht mat.Dense
	pht.Mul(m.p, h.T())
	var delta mat.Dense
	delta.Mul(&pht, &resid)
	m.beta.Add(m.beta, &delta)

	return nil
}
