package calib

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basinsim/gr4j"
	"github.com/basinsim/gr4j/forcing"
	"github.com/basinsim/gr4j/metrics"
	"github.com/basinsim/gr4j/pet"
)

func testSeries(t *testing.T, nyears int) (*forcing.Forcing, []float64) {
	t.Helper()
	frc, obs := forcing.Synthetic(time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), nyears, 42)
	require.NoError(t, frc.DeriveEp(pet.HargreavesEstimator{}))
	return frc, obs
}

func TestCalibrateRejectsSmallPopulation(t *testing.T) {
	frc, obs := testSeries(t, 1)
	_, err := Calibrate(frc, obs, gr4j.DefaultBounds(), 3, 10, 42)
	assert.True(t, errors.Is(err, gr4j.ErrInvalidConfiguration), "err = %v", err)
}

func TestCalibrateRejectsMismatchedObservations(t *testing.T) {
	frc, obs := testSeries(t, 1)
	_, err := Calibrate(frc, obs[:frc.Len()-5], gr4j.DefaultBounds(), 10, 5, 42)
	assert.True(t, errors.Is(err, gr4j.ErrLengthMismatch), "err = %v", err)
}

func TestCalibrateRejectsInvalidBounds(t *testing.T) {
	frc, obs := testSeries(t, 1)
	b := gr4j.DefaultBounds()
	b.X3 = gr4j.Interval{Low: 300., High: 20.}
	_, err := Calibrate(frc, obs, b, 10, 5, 42)
	assert.True(t, errors.Is(err, gr4j.ErrInvalidConfiguration), "err = %v", err)
}

func TestCalibrateReproducible(t *testing.T) {
	frc, obs := testSeries(t, 2)
	a, err := Calibrate(frc, obs, gr4j.DefaultBounds(), 10, 8, 42)
	require.NoError(t, err)
	b, err := Calibrate(frc, obs, gr4j.DefaultBounds(), 10, 8, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Par, b.Par)
	assert.Equal(t, a.NSE, b.NSE)
	assert.Equal(t, a.Trace, b.Trace)
}

func TestCalibrateTraceMonotone(t *testing.T) {
	frc, obs := testSeries(t, 2)
	res, err := Calibrate(frc, obs, gr4j.DefaultBounds(), 8, 12, 7)
	require.NoError(t, err)
	require.Len(t, res.Trace, 13, "initial best plus one per generation")
	for g := 1; g < len(res.Trace); g++ {
		assert.LessOrEqual(t, res.Trace[g], res.Trace[g-1], "best objective regressed at generation %d", g)
	}
	assert.Equal(t, -res.NSE, res.Trace[len(res.Trace)-1])
}

func TestCalibrateBeatsDefaultParameters(t *testing.T) {
	if testing.Short() {
		t.Skip("full-budget search")
	}
	frc, obs := testSeries(t, 10)
	isplit := frc.SplitIndex(time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC))
	cfrc, cobs := frc.Subset(0, isplit), obs[:isplit]

	sim0, err := gr4j.Simulate(gr4j.Default(), cfrc)
	require.NoError(t, err)
	nse0, err := metrics.NSE(cobs, sim0)
	require.NoError(t, err)

	res, err := Calibrate(cfrc, cobs, gr4j.DefaultBounds(), 10, 50, 42)
	require.NoError(t, err)
	assert.Greater(t, res.NSE, nse0, "calibration should improve on the default parameterization")
	assert.Greater(t, res.NSE, -1., "calibrated efficiency within 50 generations")

	// frozen-parameter validation over the disjoint window
	rep, err := Validate(res.Par, frc.Subset(isplit, frc.Len()), obs[isplit:])
	require.NoError(t, err)
	assert.False(t, rep.NSE > 1., "efficiency cannot exceed 1")
}

func TestValidateDoesNotTouchParameters(t *testing.T) {
	frc, obs := testSeries(t, 1)
	par := gr4j.ParameterSet{X1: 420., X2: -.5, X3: 75., X4: 1.9}
	before := par
	rep, err := Validate(par, frc, obs)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, before, par)
	assert.False(t, rep.NSE > 1.)
}

func TestValidatePreconditions(t *testing.T) {
	frc, obs := testSeries(t, 1)
	_, err := Validate(gr4j.Default(), frc, obs[:5])
	assert.True(t, errors.Is(err, gr4j.ErrLengthMismatch), "err = %v", err)

	_, err = Validate(gr4j.ParameterSet{X1: -1., X3: 90., X4: 1.7}, frc, obs)
	assert.True(t, errors.Is(err, gr4j.ErrInvalidParameter), "err = %v", err)
}
