package solvers

import (
	"errors"
	"math"
	"testing"
)

func TestNewAdaptiveRK4Validation(t *testing.T) {
	tests := []struct {
		name     string
		dt0, tol float64
		expected error
	}{
		{"zero step", 0, 1e-6, ErrNonPositiveStep},
		{"negative step", -0.1, 1e-6, ErrNonPositiveStep},
		{"zero tolerance", 0.01, 0, ErrNonPositiveTolerance},
		{"negative tolerance", 0.01, -1e-6, ErrNonPositiveTolerance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAdaptiveRK4(tt.dt0, tt.tol, 1e-8, 1.0)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestAdaptiveRK4Harmonic(t *testing.T) {
	s, err := NewAdaptiveRK4(0.1, 1e-8, 1e-8, 0.5)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	path := s.Solve(harmonic, State{1, 0}, 0, 1)

	final := path.Samples[len(path.Samples)-1]
	if final.Param < 1 {
		t.Errorf("final param = %v, expected to cross the range end", final.Param)
	}
	if math.Abs(final.State[0]-math.Cos(final.Param)) > 1e-5 {
		t.Errorf("y[0] = %v, expected cos(%v) = %v",
			final.State[0], final.Param, math.Cos(final.Param))
	}
}

func TestAdaptiveRK4TighterToleranceTakesMoreSteps(t *testing.T) {
	loose, err := NewAdaptiveRK4(0.1, 1e-6, 1e-8, 0.5)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}
	tight, err := NewAdaptiveRK4(0.1, 1e-10, 1e-8, 0.5)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	loosePath := loose.Solve(harmonic, State{1, 0}, 0, 4)
	tightPath := tight.Solve(harmonic, State{1, 0}, 0, 4)

	if len(tightPath.Samples) <= len(loosePath.Samples) {
		t.Errorf("tight tolerance took %d samples, loose took %d; expected more",
			len(tightPath.Samples), len(loosePath.Samples))
	}
}

func TestAdaptiveRK4StepNeverExceedsMax(t *testing.T) {
	const maxDt = 0.2
	s, err := NewAdaptiveRK4(0.05, 1e-3, 1e-8, maxDt)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	// A trivially smooth system grows the step until the cap binds.
	path := s.Solve(func(t float64, y State) State {
		return State{1}
	}, State{0}, 0, 5)

	for i := 1; i < len(path.Samples); i++ {
		step := path.Samples[i].Param - path.Samples[i-1].Param
		if step > maxDt+1e-12 {
			t.Fatalf("step %d has size %v, exceeding the cap %v", i, step, maxDt)
		}
	}
}

func TestAdaptiveRK4NonPositiveRange(t *testing.T) {
	s, err := NewAdaptiveRK4(0.1, 1e-6, 1e-8, 0.5)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	for _, tMax := range []float64{0, -1} {
		path := s.Solve(harmonic, State{1, 0}, 0, tMax)
		if len(path.Samples) != 1 {
			t.Errorf("tMax=%v: got %d samples, expected only the initial state", tMax, len(path.Samples))
		}
	}
}

func TestAdaptiveRK4AcceptedStepsMeetTolerance(t *testing.T) {
	// Every accepted step, re-checked with the same step-doubling
	// estimate, must sit below the configured tolerance; tightening the
	// tolerance must not change that.
	for _, tol := range []float64{1e-6, 1e-7} {
		s, err := NewAdaptiveRK4(0.1, tol, 1e-8, 0.5)
		if err != nil {
			t.Fatalf("constructor failed: %v", err)
		}

		path := s.Solve(harmonic, State{1, 0}, 0, 2)
		for i := 1; i < len(path.Samples); i++ {
			prev := path.Samples[i-1]
			h := path.Samples[i].Param - prev.Param
			yFull, yHalf := s.doubledStep(harmonic, prev.Param, prev.State, h)
			if errNorm := yFull.Sub(yHalf).Norm(); errNorm >= tol {
				t.Errorf("tol=%v step %d: error estimate %v not below tolerance", tol, i, errNorm)
			}
		}
	}
}

func TestAdaptiveRK4ParamsIncrease(t *testing.T) {
	s, err := NewAdaptiveRK4(0.1, 1e-7, 1e-8, 0.5)
	if err != nil {
		t.Fatalf("constructor failed: %v", err)
	}

	path := s.Solve(harmonic, State{1, 0}, 0, 2)
	for i := 1; i < len(path.Samples); i++ {
		if path.Samples[i].Param <= path.Samples[i-1].Param {
			t.Fatalf("params not increasing at index %d", i)
		}
	}
}
