package fn

import (
	"math"
	"testing"
)

func TestSigmoid(t *testing.T) {
	s := Sigmoid{}
	if got := s.Apply(0, 0, 0); got != 0.5 {
		t.Errorf("sigmoid(0) = %f, want 0.5", got)
	}
	if got := s.Apply(0, 0, 100); got < 0.999 {
		t.Errorf("sigmoid(100) = %f, want ~1", got)
	}
	for _, z := range []float64{-2, -0.5, 0, 0.5, 2} {
		a := s.Apply(0, 0, z)
		want := a * (1 - a)
		if math.Abs(s.Grad(0, 0, z)-want) > 1e-12 {
			t.Errorf("sigmoid grad at %f = %f, want %f", z, s.Grad(0, 0, z), want)
		}
	}
}

func TestActivationGradMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	// points away from the ReLU kink at zero
	points := []float64{-1.7, -0.3, 0.4, 1.9}
	for name, act := range ActivationLookup {
		for _, z := range points {
			numeric := (act.Apply(0, 0, z+h) - act.Apply(0, 0, z-h)) / (2 * h)
			if math.Abs(numeric-act.Grad(0, 0, z)) > 1e-5 {
				t.Errorf("%s grad at %f = %f, finite difference %f", name, z, act.Grad(0, 0, z), numeric)
			}
		}
	}
}

func TestActivationLookupNames(t *testing.T) {
	for name, act := range ActivationLookup {
		if act.String() != name {
			t.Errorf("lookup key %q maps to activation %q", name, act.String())
		}
	}
}
