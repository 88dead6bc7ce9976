package calib

import (
	"math/rand"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"

	"github.com/basinsim/gr4j"
	"github.com/basinsim/gr4j/forcing"
)

// CalibrateSCE is an alternative front-end driving shuffled complex
// evolution over the unit hypercube. Same objective and preconditions as
// Calibrate; no per-generation trace is available from the optimizer.
func CalibrateSCE(frc *forcing.Forcing, obs []float64, b gr4j.Bounds, ncmplx int, seed int64) (*Result, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	if err := checkData(frc, obs); err != nil {
		return nil, err
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	obj := objective(frc, obs)
	lo, hi := b.Lo(), b.Hi()

	fromUnit := func(u []float64) gr4j.ParameterSet {
		v := make([]float64, ndim)
		for k := 0; k < ndim; k++ {
			v[k] = mmaths.LinearTransform(lo[k], hi[k], u[k])
		}
		return b.FromVector(v)
	}

	gen := func(u []float64) float64 {
		return obj(fromUnit(u))
	}
	uFinal, _ := glbopt.SCE(ncmplx, ndim, rng, gen, true)

	par := fromUnit(uFinal)
	return &Result{
		Par: par,
		NSE: -obj(par),
	}, nil
}
