// Package forcing holds the daily meteorological series driving a
// simulation: precipitation, temperature and derived potential
// evapotranspiration, fully in memory before any run begins.
package forcing

import (
	"fmt"
	"math"
	"time"

	"github.com/basinsim/gr4j/pet"
)

// Forcing is an ordered daily series; insertion order is chronological
// order and no gaps are permitted within a simulation window.
type Forcing struct {
	T         []time.Time // date [day ID]
	P, Tm, Ep []float64   // precipitation [mm/d], mean temperature [°C], potential evapotranspiration [mm/d]
}

// Len returns the number of days.
func (frc *Forcing) Len() int { return len(frc.T) }

// Check verifies the series is non-empty, strictly daily with no gaps, and
// carries only finite values with non-negative precipitation and Ep. Gaps
// are a precondition violation, never interpolated.
func (frc *Forcing) Check() error {
	n := frc.Len()
	if n == 0 {
		return fmt.Errorf("%w: empty forcing series", ErrInvalidInput)
	}
	if len(frc.P) != n || len(frc.Ep) != n {
		return fmt.Errorf("%w: forcing columns of unequal length", ErrInvalidInput)
	}
	for j := 0; j < n; j++ {
		if j > 0 {
			d := frc.T[j-1].AddDate(0, 0, 1)
			if frc.T[j].Year() != d.Year() || frc.T[j].YearDay() != d.YearDay() {
				return fmt.Errorf("%w: gap or disorder at %s -> %s", ErrInvalidInput,
					frc.T[j-1].Format("2006-01-02"), frc.T[j].Format("2006-01-02"))
			}
		}
		if math.IsNaN(frc.P[j]) || math.IsInf(frc.P[j], 0) || frc.P[j] < 0. {
			return fmt.Errorf("%w: precipitation %f on %s", ErrInvalidInput, frc.P[j], frc.T[j].Format("2006-01-02"))
		}
		if math.IsNaN(frc.Ep[j]) || math.IsInf(frc.Ep[j], 0) || frc.Ep[j] < 0. {
			return fmt.Errorf("%w: potential evapotranspiration %f on %s", ErrInvalidInput, frc.Ep[j], frc.T[j].Format("2006-01-02"))
		}
	}
	return nil
}

// DeriveEp fills the Ep column from the temperature column using est.
func (frc *Forcing) DeriveEp(est pet.Estimator) error {
	if len(frc.Tm) != frc.Len() {
		return fmt.Errorf("%w: no temperature column to derive Ep from", ErrInvalidInput)
	}
	frc.Ep = make([]float64, frc.Len())
	for j, t := range frc.T {
		ep, err := est.PotentialDaily(frc.Tm[j], t.YearDay())
		if err != nil {
			return fmt.Errorf("forcing.DeriveEp on %s: %w", t.Format("2006-01-02"), err)
		}
		frc.Ep[j] = ep
	}
	return nil
}

// SplitIndex returns the first index on or after the split date; callers
// use it to carve disjoint calibration and validation windows.
func (frc *Forcing) SplitIndex(at time.Time) int {
	for j, t := range frc.T {
		if !t.Before(at) {
			return j
		}
	}
	return frc.Len()
}

// Subset copies days [i0,i1) into an independent series.
func (frc *Forcing) Subset(i0, i1 int) *Forcing {
	s := &Forcing{
		T:  append([]time.Time{}, frc.T[i0:i1]...),
		P:  append([]float64{}, frc.P[i0:i1]...),
		Ep: append([]float64{}, frc.Ep[i0:i1]...),
	}
	if len(frc.Tm) == frc.Len() {
		s.Tm = append([]float64{}, frc.Tm[i0:i1]...)
	}
	return s
}
