package pet

import (
	"errors"
	"math"
	"testing"
)

func TestHargreavesKnownValue(t *testing.T) {
	// 0.0023 * (20+17.8) * sqrt(25) * 2.5
	ep, err := Hargreaves(20., 180)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ep-1.08675) > 1e-9 {
		t.Errorf("Hargreaves(20) = %f, want 1.08675", ep)
	}
}

func TestHargreavesNeverNegative(t *testing.T) {
	for tm := -40.; tm <= 45.; tm += .5 {
		ep, err := Hargreaves(tm, 32)
		if err != nil {
			t.Fatalf("T = %f: %v", tm, err)
		}
		if ep < 0. || math.IsNaN(ep) {
			t.Errorf("T = %f: Ep = %f", tm, ep)
		}
	}
}

func TestHargreavesRejectsBadInput(t *testing.T) {
	if _, err := Hargreaves(math.NaN(), 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN temperature: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Hargreaves(math.Inf(-1), 10); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("infinite temperature: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Hargreaves(12., 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("day of year 0: err = %v, want ErrInvalidInput", err)
	}
	if _, err := Hargreaves(12., 367); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("day of year 367: err = %v, want ErrInvalidInput", err)
	}
}

func TestSineCurveSeasonality(t *testing.T) {
	est := NewSineCurve(43.3)
	win, err := est.PotentialDaily(0., 10)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := est.PotentialDaily(0., 192)
	if err != nil {
		t.Fatal(err)
	}
	if win < 0. || sum < 0. {
		t.Fatalf("negative Ep: winter %f, summer %f", win, sum)
	}
	if sum <= win {
		t.Errorf("no seasonal signal: winter %f, summer %f", win, sum)
	}
}
