package solvers

import "math"

// Strategy advances an ODE state across a parameter range, producing
// the full sampled path.
type Strategy interface {
	Solve(rhs Func, y0 State, t0, tMax float64) Path
}

// rk4Step advances y by one classical 4th-order Runge-Kutta step of
// size h. Both strategies are built on this primitive.
func rk4Step(rhs Func, t float64, y State, h float64) State {
	k1 := rhs(t, y)
	k2 := rhs(t+h*0.5, y.Add(k1.Scale(h*0.5)))
	k3 := rhs(t+h*0.5, y.Add(k2.Scale(h*0.5)))
	k4 := rhs(t+h, y.Add(k3.Scale(h)))

	result := make(State, len(y))
	h6 := h / 6.0
	for i := range y {
		result[i] = y[i] + h6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return result
}

// FixedRK4 integrates with a constant step size. The final sub-step is
// clamped so the path never overshoots the parameter range.
type FixedRK4 struct {
	dt float64
}

func NewFixedRK4(dt float64) (*FixedRK4, error) {
	if dt <= 0 {
		return nil, ErrNonPositiveStep
	}
	return &FixedRK4{dt: dt}, nil
}

func (s *FixedRK4) Solve(rhs Func, y0 State, t0, tMax float64) Path {
	capacity := int((tMax-t0)/s.dt) + 2
	if capacity < 1 {
		// A non-positive range produces only the initial sample.
		capacity = 1
	}
	path := Path{
		Samples:    make([]Sample, 0, capacity),
		ParamRange: tMax - t0,
	}

	y := y0.Clone()
	t := t0
	path.Samples = append(path.Samples, Sample{Param: t, State: y.Clone()})

	for t < tMax {
		h := math.Min(s.dt, tMax-t)
		y = rk4Step(rhs, t, y, h)
		t += h
		path.Samples = append(path.Samples, Sample{Param: t, State: y.Clone()})
	}

	return path
}
