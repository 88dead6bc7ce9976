package gr4j

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/basinsim/gr4j/forcing"
	"github.com/basinsim/gr4j/pet"
)

func testForcing(t *testing.T, nyears int) *forcing.Forcing {
	t.Helper()
	frc, _ := forcing.Synthetic(time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), nyears, 1234)
	if err := frc.DeriveEp(pet.HargreavesEstimator{}); err != nil {
		t.Fatal(err)
	}
	return frc
}

func TestStepOnceStoreBounds(t *testing.T) {
	sets := []ParameterSet{
		Default(),
		{X1: 100., X2: -5., X3: 20., X4: 1.1},
		{X1: 1200., X2: 3., X3: 300., X4: 2.9},
		{X1: 350., X2: 0., X3: 90., X4: 2.25},
	}
	days := []struct{ p, ep float64 }{
		{0., 0.}, {0., 8.}, {45., 0.}, {12.3, 3.1}, {200., 0.5},
	}
	for _, par := range sets {
		for _, d := range days {
			q, s, r, err := StepOnce(par, d.p, d.ep)
			if err != nil {
				t.Fatalf("%v p=%f ep=%f: %v", par, d.p, d.ep, err)
			}
			if s < 0. || s > par.X1 {
				t.Errorf("%v: production store %f outside [0, %f]", par, s, par.X1)
			}
			if r < 0. || r > par.X3 {
				t.Errorf("%v: routing store %f outside [0, %f]", par, r, par.X3)
			}
			if q < 0. {
				t.Errorf("%v: negative streamflow %f", par, q)
			}
		}
	}
}

func TestStepOnceRejectsBadInput(t *testing.T) {
	if _, _, _, err := StepOnce(Default(), math.NaN(), 1.); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN precipitation: err = %v, want ErrInvalidInput", err)
	}
	if _, _, _, err := StepOnce(Default(), -1., 1.); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative precipitation: err = %v, want ErrInvalidInput", err)
	}
	if _, _, _, err := StepOnce(ParameterSet{X1: -1., X3: 90., X4: 1.7}, 1., 1.); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative capacity: err = %v, want ErrInvalidParameter", err)
	}
}

func TestSimulateIdempotent(t *testing.T) {
	frc := testForcing(t, 3)
	p := Default()
	a, err := Simulate(p, frc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(p, frc)
	if err != nil {
		t.Fatal(err)
	}
	for j := range a {
		if a[j] != b[j] {
			t.Fatalf("day %d: repeated simulation differs: %v != %v", j, a[j], b[j])
		}
	}
}

func TestSimulateExtremeBoundsStaysFinite(t *testing.T) {
	frc := testForcing(t, 10)
	for _, p := range []ParameterSet{
		{X1: 1200., X2: 3., X3: 300., X4: 2.9},
		{X1: 100., X2: -5., X3: 20., X4: 1.1},
	} {
		sim, err := Simulate(p, frc)
		if err != nil {
			t.Fatalf("%v: %v", p, err)
		}
		if len(sim) != frc.Len() {
			t.Fatalf("%v: result length %d, forcing %d", p, len(sim), frc.Len())
		}
		for j, q := range sim {
			if math.IsNaN(q) || math.IsInf(q, 0) || q < 0. {
				t.Fatalf("%v day %d: streamflow %f", p, j, q)
			}
		}
	}
}

func TestSimulatePreconditions(t *testing.T) {
	if _, err := Simulate(Default(), &forcing.Forcing{}); err == nil {
		t.Error("empty forcing accepted")
	}

	frc := testForcing(t, 1)
	frc.P[40] = -2. // corrupt one record
	if _, err := Simulate(Default(), frc); err == nil {
		t.Error("negative precipitation accepted")
	}

	frc = testForcing(t, 1)
	frc.T[40] = frc.T[40].AddDate(0, 0, 3) // introduce a gap
	if _, err := Simulate(Default(), frc); err == nil {
		t.Error("gapped series accepted")
	}
}

// a dry year still routes water out of the initial store levels
func TestSimulateRecession(t *testing.T) {
	n := 365
	frc := &forcing.Forcing{
		T:  make([]time.Time, n),
		P:  make([]float64, n),
		Ep: make([]float64, n),
	}
	dt := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
	for j := 0; j < n; j++ {
		frc.T[j] = dt
		frc.Ep[j] = 2.
		dt = dt.AddDate(0, 0, 1)
	}
	sim, err := Simulate(Default(), frc)
	if err != nil {
		t.Fatal(err)
	}
	if sim[0] <= 0. {
		t.Error("no outflow from half-full routing store")
	}
	if sim[n-1] >= sim[0] {
		t.Errorf("flow did not recede: day 0 %f, day %d %f", sim[0], n-1, sim[n-1])
	}
}
