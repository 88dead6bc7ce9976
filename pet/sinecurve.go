package pet

import (
	"fmt"
	"math"

	"github.com/maseology/goHydro/solirrad"
)

const (
	annualEp = 1000. / 366. // average annual potential evaporation [mm/d]
	minEp    = 0.           // baseline evaporation rate [mm/d]
	offset   = 10           // days shifting the Ep minimum to the winter solstice
)

// SineCurve is a temperature-free estimator for forcing sets without
// usable temperature records: a seasonal sine curve scaled by the
// clear-sky solar index at the basin latitude.
type SineCurve struct {
	si solirrad.SolIrad
}

// NewSineCurve builds the estimator for a (flat) basin at the given
// latitude [°].
func NewSineCurve(latitudeDeg float64) *SineCurve {
	return &SineCurve{si: solirrad.New(latitudeDeg, 0., 0.)}
}

// PotentialDaily returns potential evapotranspiration [mm/d] for the
// calendar day; the temperature argument is accepted for interface parity
// and only validated.
func (s *SineCurve) PotentialDaily(tm float64, doy int) (float64, error) {
	if math.IsNaN(tm) || math.IsInf(tm, 0) {
		return 0., fmt.Errorf("%w: temperature %f", ErrInvalidInput, tm)
	}
	if doy < 1 || doy > 366 {
		return 0., fmt.Errorf("%w: day of year %d", ErrInvalidInput, doy)
	}
	ep := (annualEp-minEp)*(1.+math.Sin(2.*math.Pi*float64(doy-offset)/366.-math.Pi/2.)) + minEp
	return ep * s.si.PSIdaily(doy) / s.si.PSIdaily(172), nil // normalized to midsummer clear-sky index
}

// Estimator converts mean daily temperature and calendar day to potential
// evapotranspiration [mm/d].
type Estimator interface {
	PotentialDaily(tm float64, doy int) (float64, error)
}

// HargreavesEstimator adapts Hargreaves to the Estimator interface.
type HargreavesEstimator struct{}

func (HargreavesEstimator) PotentialDaily(tm float64, doy int) (float64, error) {
	return Hargreaves(tm, doy)
}
