package gr4j

import (
	"fmt"
	"math"
)

// UnitHydrographs holds the two routing kernels derived from X4. Ord1
// (time base X4) routes the fast 90% share, Ord2 (time base 2·X4) the slow
// 10% share. Each ordinate sequence sums to 1.
type UnitHydrographs struct {
	Ord1, Ord2 []float64
}

// NewUnitHydrographs derives both ordinate sequences from the time base.
// Deterministic; cheap enough to re-derive per run.
func NewUnitHydrographs(x4 float64) (*UnitHydrographs, error) {
	if math.IsNaN(x4) || math.IsInf(x4, 0) || x4 <= 0. {
		return nil, fmt.Errorf("%w: unit hydrograph time base X4 = %f, must be > 0", ErrInvalidParameter, x4)
	}

	n1, n2 := int(math.Ceil(x4)), int(math.Ceil(2.*x4))
	u := UnitHydrographs{
		Ord1: make([]float64, n1),
		Ord2: make([]float64, n2),
	}
	for i := 0; i < n1; i++ {
		u.Ord1[i] = sh1(float64(i+1), x4) - sh1(float64(i), x4)
	}
	for i := 0; i < n2; i++ {
		u.Ord2[i] = sh2(float64(i+1), x4) - sh2(float64(i), x4)
	}
	return &u, nil
}

// sh1 is the cumulative S-curve for the fast hydrograph.
func sh1(t, x4 float64) float64 {
	if t <= 0. {
		return 0.
	}
	if t >= x4 {
		return 1.
	}
	return math.Pow(t/x4, 2.5)
}

// sh2 is the cumulative S-curve for the slow hydrograph.
func sh2(t, x4 float64) float64 {
	switch {
	case t <= 0.:
		return 0.
	case t <= x4:
		return .5 * math.Pow(t/x4, 2.5)
	case t < 2.*x4:
		return 1. - .5*math.Pow(2.-t/x4, 2.5)
	default:
		return 1.
	}
}
