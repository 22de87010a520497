package elm

import "gonum.org/v1/gonum/mat"

// Predict returns H·Beta for the hidden representation H of x, using
// whatever output weights the model currently holds. It is a pure function
// of the current state and never mutates it; see the package doc for the
// concurrency contract.
//
// Errors:
//   - ErrNotTrained: no Train call has succeeded yet.
//   - ErrNilMatrix, ErrDimensionMismatch: as for Train's X argument.
//
// Complexity: O(N·inputDim·hiddenWidth + N·hiddenWidth·outDim).
func (m *Model) Predict(x mat.Matrix) (*mat.Dense, error) {
	if m.phase == Uninitialized {
		return nil, ErrNotTrained
	}

	h, err := m.HiddenOutput(x)
	if err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Mul(h, m.beta)

	return &out, nil
}

// Score returns the mean squared error of the model's predictions on x
// against the targets y. Convenience for experiments and tests; shares
// Predict's error conditions plus ErrDimensionMismatch when y's shape does
// not match the prediction.
func (m *Model) Score(x, y mat.Matrix) (float64, error) {
	if y == nil {
		return 0, ErrNilMatrix
	}

	pred, err := m.Predict(x)
	if err != nil {
		return 0, err
	}

	pr, pc := pred.Dims()
	yr, yc := y.Dims()
	if pr != yr || pc != yc {
		return 0, ErrDimensionMismatch
	}

	var sum float64
	for i := 0; i < pr; i++ {
		for j := 0; j < pc; j++ {
			d := pred.At(i, j) - y.At(i, j)
			sum += d * d
		}
	}

	return sum / float64(pr*pc), nil
}
