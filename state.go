package gr4j

// res simple non-linear reservoir
type res struct {
	sto, cap float64
}

// overflow adds p to storage and returns the excess spilled above capacity
// (positive) or the unmet shortfall below empty (negative).
func (r *res) overflow(p float64) float64 {
	r.sto += p
	if r.sto < 0. {
		d := r.sto
		r.sto = 0.
		return d
	} else if r.sto > r.cap {
		d := r.sto - r.cap
		r.sto = r.cap
		return d
	}
	return 0.
}

// ModelState carries the production and routing stores plus the in-flight
// convolution buffers between consecutive days of one run. Every run owns
// its own state; nothing here is shared.
type ModelState struct {
	prod, rout res
	buf1, buf2 []float64
	uh         *UnitHydrographs
}

// newState initializes stores to the conventional 30%/50% fill.
func newState(p ParameterSet, uh *UnitHydrographs) *ModelState {
	return &ModelState{
		prod: res{sto: .3 * p.X1, cap: p.X1},
		rout: res{sto: .5 * p.X3, cap: p.X3},
		buf1: make([]float64, len(uh.Ord1)),
		buf2: make([]float64, len(uh.Ord2)),
		uh:   uh,
	}
}

// ProductionStore returns the current production store level [mm].
func (s *ModelState) ProductionStore() float64 { return s.prod.sto }

// RoutingStore returns the current routing store level [mm].
func (s *ModelState) RoutingStore() float64 { return s.rout.sto }

// route pushes today's effective-rainfall shares into the convolution
// buffers and returns the two routed volumes; buffers shift one day.
func (s *ModelState) route(pr9, pr1 float64) (q9, q1 float64) {
	shift(s.buf1, pr9)
	shift(s.buf2, pr1)
	for i, o := range s.uh.Ord1 {
		q9 += o * s.buf1[i]
	}
	for i, o := range s.uh.Ord2 {
		q1 += o * s.buf2[i]
	}
	return
}

func shift(b []float64, v float64) {
	copy(b[1:], b[:len(b)-1])
	b[0] = v
}
