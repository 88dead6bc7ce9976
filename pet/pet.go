// Package pet estimates daily potential evapotranspiration from minimal
// meteorological input.
package pet

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput indicates a non-finite temperature or an out-of-range
// calendar day.
var ErrInvalidInput = errors.New("pet: invalid input")

// Hargreaves returns potential evapotranspiration [mm/d] from mean daily
// temperature [°C] using the simplified temperature-only Hargreaves form,
// where sqrt|T+5| stands proxy for the seasonal radiation term. Pure; never
// negative. doy is the calendar day of year [1,366].
func Hargreaves(tm float64, doy int) (float64, error) {
	if math.IsNaN(tm) || math.IsInf(tm, 0) {
		return 0., fmt.Errorf("%w: temperature %f", ErrInvalidInput, tm)
	}
	if doy < 1 || doy > 366 {
		return 0., fmt.Errorf("%w: day of year %d", ErrInvalidInput, doy)
	}
	ep := .0023 * (tm + 17.8) * math.Sqrt(math.Abs(tm+5.)) * 2.5
	if ep < 0. {
		return 0., nil
	}
	return ep, nil
}
