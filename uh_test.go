package gr4j

import (
	"errors"
	"math"
	"testing"
)

func TestUnitHydrographOrdinatesSumToOne(t *testing.T) {
	for _, x4 := range []float64{1.1, 1.7, 2.25, 2.9, 0.6, 5.3, 13.8} {
		uh, err := NewUnitHydrographs(x4)
		if err != nil {
			t.Fatalf("X4 = %f: %v", x4, err)
		}
		s1, s2 := 0., 0.
		for _, o := range uh.Ord1 {
			if o < 0. {
				t.Errorf("X4 = %f: negative UH1 ordinate %f", x4, o)
			}
			s1 += o
		}
		for _, o := range uh.Ord2 {
			if o < 0. {
				t.Errorf("X4 = %f: negative UH2 ordinate %f", x4, o)
			}
			s2 += o
		}
		if math.Abs(s1-1.) > 1e-6 {
			t.Errorf("X4 = %f: UH1 ordinates sum to %f", x4, s1)
		}
		if math.Abs(s2-1.) > 1e-6 {
			t.Errorf("X4 = %f: UH2 ordinates sum to %f", x4, s2)
		}
	}
}

func TestUnitHydrographSupportLengths(t *testing.T) {
	uh, err := NewUnitHydrographs(1.7)
	if err != nil {
		t.Fatal(err)
	}
	if len(uh.Ord1) != 2 || len(uh.Ord2) != 4 {
		t.Errorf("X4 = 1.7: support lengths %d, %d; want 2, 4", len(uh.Ord1), len(uh.Ord2))
	}
}

func TestUnitHydrographRejectsNonPositiveTimeBase(t *testing.T) {
	for _, x4 := range []float64{0., -1.7, math.NaN(), math.Inf(1)} {
		if _, err := NewUnitHydrographs(x4); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("X4 = %f: err = %v, want ErrInvalidParameter", x4, err)
		}
	}
}

func TestUnitHydrographDeterministic(t *testing.T) {
	a, _ := NewUnitHydrographs(2.3)
	b, _ := NewUnitHydrographs(2.3)
	for i := range a.Ord1 {
		if a.Ord1[i] != b.Ord1[i] {
			t.Fatalf("UH1 ordinate %d differs across derivations", i)
		}
	}
	for i := range a.Ord2 {
		if a.Ord2[i] != b.Ord2[i] {
			t.Fatalf("UH2 ordinate %d differs across derivations", i)
		}
	}
}
