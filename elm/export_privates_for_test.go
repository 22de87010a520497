package elm

// Test-only visibility into the solver's internal state, so external tests
// can assert the statistic/buffer invariants without widening the API.

// StatDims returns the dimensions of the sufficient statistic P, or (0,0)
// before the first Train call.
func (m *Model) StatDims() (int, int) {
	if m.p == nil {
		return 0, 0
	}
	return m.p.Dims()
}

// BufferedRows returns the number of buffered hidden/target rows, zero
// outside the growth phase.
func (m *Model) BufferedRows() int {
	if m.bufH == nil {
		return 0
	}
	r, _ := m.bufH.Dims()
	return r
}
