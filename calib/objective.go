// Package calib tunes GR4J parameters against observed streamflow with
// population-based global optimization, and validates frozen parameter
// sets over disjoint periods.
package calib

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/basinsim/gr4j"
	"github.com/basinsim/gr4j/forcing"
	"github.com/basinsim/gr4j/metrics"
)

// penaltyObj keeps the objective finite wherever the optimizer wanders.
const penaltyObj = 1.e6

// Result is the outcome of one calibration run.
type Result struct {
	Par   gr4j.ParameterSet
	NSE   float64   // achieved over the calibration window
	Trace []float64 // best objective (-NSE) per generation, leading with the initial population
}

// checkData enforces the shared calibration/validation preconditions once,
// up front, so the hot objective never has to raise.
func checkData(frc *forcing.Forcing, obs []float64) error {
	if err := frc.Check(); err != nil {
		return err
	}
	if len(obs) != frc.Len() {
		return fmt.Errorf("%w: observed %d, forcing %d", gr4j.ErrLengthMismatch, len(obs), frc.Len())
	}
	nv := 0
	for _, v := range obs {
		if !math.IsNaN(v) {
			nv++
		}
	}
	if nv < 2 {
		return fmt.Errorf("%w: %d valid observations", gr4j.ErrInsufficientData, nv)
	}
	return nil
}

// objective builds the minimized fitness: -NSE of a fresh simulation run,
// with numerical degeneracy substituted by a finite penalty so the search
// space stays fully explorable. Substitutions are logged, never raised.
func objective(frc *forcing.Forcing, obs []float64) func(gr4j.ParameterSet) float64 {
	return func(p gr4j.ParameterSet) float64 {
		sim, err := gr4j.Simulate(p, frc)
		if err != nil {
			logrus.Warnf("calib: simulation rejected %s: %v; penalized", p, err)
			return penaltyObj
		}
		nse, err := metrics.NSE(obs, sim)
		if err != nil || math.IsNaN(nse) || math.IsInf(nse, 0) {
			logrus.Warnf("calib: undefined efficiency for %s; penalized", p)
			return penaltyObj
		}
		return -nse
	}
}
