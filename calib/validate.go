package calib

import (
	"github.com/basinsim/gr4j"
	"github.com/basinsim/gr4j/forcing"
	"github.com/basinsim/gr4j/metrics"
)

// Validate re-runs the model once over a disjoint period with the
// parameters treated as frozen input and reports the fit. Parameters are
// never adjusted here; independence from the calibration window is the
// point of the exercise.
func Validate(par gr4j.ParameterSet, frc *forcing.Forcing, obs []float64) (*metrics.Report, error) {
	if err := checkData(frc, obs); err != nil {
		return nil, err
	}
	sim, err := gr4j.Simulate(par, frc)
	if err != nil {
		return nil, err
	}
	return metrics.NewReport(obs, sim)
}
