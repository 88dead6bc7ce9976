package gr4j

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"
)

// ParameterSet holds the four GR4J parameters. Values are treated as
// immutable once constructed; a set is the unit of optimization.
//
//	X1: production store capacity [mm]
//	X2: groundwater exchange coefficient [mm/d], signed
//	X3: routing store capacity [mm]
//	X4: unit hydrograph time base [d]
type ParameterSet struct{ X1, X2, X3, X4 float64 }

// Default returns the conventional starting parameterization.
func Default() ParameterSet {
	return ParameterSet{X1: 350., X2: 0., X3: 90., X4: 1.7}
}

// Check verifies the parameters lie within their physical domain.
func (p ParameterSet) Check() error {
	for _, v := range []float64{p.X1, p.X2, p.X3, p.X4} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in %v", ErrInvalidParameter, p)
		}
	}
	if p.X1 <= 0. {
		return fmt.Errorf("%w: production store capacity X1 = %f, must be > 0", ErrInvalidParameter, p.X1)
	}
	if p.X3 <= 0. {
		return fmt.Errorf("%w: routing store capacity X3 = %f, must be > 0", ErrInvalidParameter, p.X3)
	}
	if p.X4 <= 0. {
		return fmt.Errorf("%w: unit hydrograph time base X4 = %f, must be > 0", ErrInvalidParameter, p.X4)
	}
	return nil
}

func (p ParameterSet) String() string {
	return fmt.Sprintf("X1: %.2f  X2: %.2f  X3: %.2f  X4: %.2f", p.X1, p.X2, p.X3, p.X4)
}

// SaveGob persists the parameter set.
func (p ParameterSet) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" ParameterSet.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf(" ParameterSet.SaveGob %v", err)
	}
	return nil
}

// LoadGobParameterSet reads a parameter set saved with SaveGob.
func LoadGobParameterSet(fp string) (ParameterSet, error) {
	var p ParameterSet
	f, err := os.Open(fp)
	if err != nil {
		return p, err
	}
	defer f.Close()
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return p, err
	}
	return p, nil
}

// Interval is a closed parameter range.
type Interval struct{ Low, High float64 }

func (i Interval) valid() bool {
	return !math.IsNaN(i.Low) && !math.IsNaN(i.High) && i.Low < i.High
}

// Bounds is the per-parameter search box used in calibration.
type Bounds struct{ X1, X2, X3, X4 Interval }

// DefaultBounds returns the standard GR4J search box.
func DefaultBounds() Bounds {
	return Bounds{
		X1: Interval{100., 1200.},
		X2: Interval{-5., 3.},
		X3: Interval{20., 300.},
		X4: Interval{1.1, 2.9},
	}
}

// Check verifies interval validity and that every set drawn from the box
// passes ParameterSet.Check.
func (b Bounds) Check() error {
	for _, iv := range []struct {
		nam string
		i   Interval
	}{{"X1", b.X1}, {"X2", b.X2}, {"X3", b.X3}, {"X4", b.X4}} {
		if !iv.i.valid() {
			return fmt.Errorf("%w: bounds %s = [%f, %f], need low < high", ErrInvalidConfiguration, iv.nam, iv.i.Low, iv.i.High)
		}
	}
	if b.X1.Low <= 0. || b.X3.Low <= 0. || b.X4.Low <= 0. {
		return fmt.Errorf("%w: capacity/time-base bounds must be strictly positive", ErrInvalidConfiguration)
	}
	return nil
}

// Lo returns the lower corner of the box in X1..X4 order.
func (b Bounds) Lo() [4]float64 { return [4]float64{b.X1.Low, b.X2.Low, b.X3.Low, b.X4.Low} }

// Hi returns the upper corner of the box in X1..X4 order.
func (b Bounds) Hi() [4]float64 { return [4]float64{b.X1.High, b.X2.High, b.X3.High, b.X4.High} }

// FromVector builds a parameter set from an X1..X4 ordered slice, clipped
// to the box.
func (b Bounds) FromVector(v []float64) ParameterSet {
	lo, hi := b.Lo(), b.Hi()
	c := func(i int) float64 {
		if v[i] < lo[i] {
			return lo[i]
		}
		if v[i] > hi[i] {
			return hi[i]
		}
		return v[i]
	}
	return ParameterSet{X1: c(0), X2: c(1), X3: c(2), X4: c(3)}
}
