package solvers

import "math"

const (
	growFactor   = 1.5
	shrinkFactor = 0.5
)

// AdaptiveRK4 integrates with step-doubling error control: each
// iteration compares one full step against two half steps from the
// same point. Accepted steps grow the step size; rejected steps shrink
// it and retry without advancing.
type AdaptiveRK4 struct {
	dt0   float64
	tol   float64
	minDt float64
	maxDt float64
}

func NewAdaptiveRK4(dt0, tol, minDt, maxDt float64) (*AdaptiveRK4, error) {
	if dt0 <= 0 {
		return nil, ErrNonPositiveStep
	}
	if tol <= 0 {
		return nil, ErrNonPositiveTolerance
	}
	return &AdaptiveRK4{dt0: dt0, tol: tol, minDt: minDt, maxDt: maxDt}, nil
}

func (s *AdaptiveRK4) Solve(rhs Func, y0 State, t0, tMax float64) Path {
	path := Path{
		Samples:    make([]Sample, 0, 1024),
		ParamRange: tMax - t0,
	}

	y := y0.Clone()
	t := t0
	h := s.dt0

	path.Samples = append(path.Samples, Sample{Param: t, State: y.Clone()})

	for t < tMax {
		yFull, yHalf := s.doubledStep(rhs, t, y, h)
		errNorm := yFull.Sub(yHalf).Norm()

		if errNorm < s.tol {
			y = yFull
			t += h
			path.Samples = append(path.Samples, Sample{Param: t, State: y.Clone()})
			h = math.Min(h*growFactor, s.maxDt)
		} else {
			h = math.Max(h*shrinkFactor, s.minDt)
		}
	}

	return path
}

// doubledStep computes one full step of size h and two chained half
// steps from the same starting point. Their difference estimates the
// local truncation error.
func (s *AdaptiveRK4) doubledStep(rhs Func, t float64, y State, h float64) (yFull, yHalf State) {
	yFull = rk4Step(rhs, t, y, h)
	yMid := rk4Step(rhs, t, y, h*0.5)
	yHalf = rk4Step(rhs, t+h*0.5, yMid, h*0.5)
	return yFull, yHalf
}
