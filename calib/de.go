package calib

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"

	"github.com/basinsim/gr4j"
	"github.com/basinsim/gr4j/forcing"
)

// DE/rand/1/bin control settings
const (
	deF  = .8 // differential weight
	deCR = .9 // crossover probability
)

const ndim = 4 // X1..X4

// Calibrate searches the bounds box for the parameter set maximizing NSE
// over the calibration window, by differential evolution. The random
// sequence is owned by the call: a fixed seed reproduces the search
// bit-for-bit. Fitness evaluations within a generation run concurrently;
// each trial owns its own model state.
func Calibrate(frc *forcing.Forcing, obs []float64, b gr4j.Bounds, popSize, maxIter int, seed int64) (*Result, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	if popSize < 4 {
		return nil, fmt.Errorf("%w: population size %d, mutation needs at least 3 distinct members plus the target", gr4j.ErrInvalidConfiguration, popSize)
	}
	if maxIter < 1 {
		return nil, fmt.Errorf("%w: max iterations %d", gr4j.ErrInvalidConfiguration, maxIter)
	}
	if err := checkData(frc, obs); err != nil {
		return nil, err
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	obj := objective(frc, obs)
	lo, hi := b.Lo(), b.Hi()

	// initial population across the box
	pop := make([][]float64, popSize)
	for i := range pop {
		pop[i] = make([]float64, ndim)
		for k := 0; k < ndim; k++ {
			pop[i][k] = mmaths.LinearTransform(lo[k], hi[k], rng.Float64())
		}
	}
	ofs := evalConcurrent(obj, b, pop)

	ib := argmin(ofs)
	trace := make([]float64, 0, maxIter+1)
	trace = append(trace, ofs[ib])

	trials := make([][]float64, popSize)
	for g := 0; g < maxIter; g++ {
		// trial construction is sequential so the random sequence is
		// independent of evaluation order
		for i := range pop {
			r1, r2, r3 := distinct3(rng, popSize, i)
			jr := rng.Intn(ndim)
			t := make([]float64, ndim)
			for k := 0; k < ndim; k++ {
				if rng.Float64() < deCR || k == jr {
					t[k] = pop[r1][k] + deF*(pop[r2][k]-pop[r3][k])
					if t[k] < lo[k] {
						t[k] = lo[k]
					} else if t[k] > hi[k] {
						t[k] = hi[k]
					}
				} else {
					t[k] = pop[i][k]
				}
			}
			trials[i] = t
		}

		tofs := evalConcurrent(obj, b, trials)
		for i := range pop {
			if tofs[i] < ofs[i] { // strict improvement
				pop[i], ofs[i] = trials[i], tofs[i]
			}
		}
		ib = argmin(ofs)
		trace = append(trace, ofs[ib])
	}

	return &Result{
		Par:   b.FromVector(pop[ib]),
		NSE:   -ofs[ib],
		Trace: trace,
	}, nil
}

// evalConcurrent fans the fitness evaluations out across goroutines; the
// only synchronization point is collecting every objective before
// selection.
func evalConcurrent(obj func(gr4j.ParameterSet) float64, b gr4j.Bounds, vs [][]float64) []float64 {
	ofs := make([]float64, len(vs))
	var wg sync.WaitGroup
	wg.Add(len(vs))
	for i, v := range vs {
		go func(i int, p gr4j.ParameterSet) {
			defer wg.Done()
			ofs[i] = obj(p)
		}(i, b.FromVector(v))
	}
	wg.Wait()
	return ofs
}

// distinct3 draws three population indices distinct from each other and
// from the target i.
func distinct3(rng *rand.Rand, n, i int) (r1, r2, r3 int) {
	for {
		r1 = rng.Intn(n)
		if r1 != i {
			break
		}
	}
	for {
		r2 = rng.Intn(n)
		if r2 != i && r2 != r1 {
			break
		}
	}
	for {
		r3 = rng.Intn(n)
		if r3 != i && r3 != r1 && r3 != r2 {
			break
		}
	}
	return
}

func argmin(v []float64) int {
	ib := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[ib] {
			ib = i
		}
	}
	return ib
}
