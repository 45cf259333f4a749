package solvers

import "sort"

// Sample is one (parameter, state) pair produced by an integration run.
type Sample struct {
	Param float64
	State State
}

// Path is the ordered, append-only sequence of samples from one
// integration run, plus the parameter range used to generate it.
// Paths are value objects: not mutated after being returned.
type Path struct {
	Samples    []Sample
	ParamRange float64
}

// Interpolate returns the state at an arbitrary parameter value by
// linear interpolation between the two bracketing samples. Parameters
// before the first sample return the first sample's state; parameters
// past the last sample return the last sample's state. A path with no
// samples returns ErrEmptyTrajectory.
func (p Path) Interpolate(param float64) (State, error) {
	if len(p.Samples) == 0 {
		return nil, ErrEmptyTrajectory
	}
	if len(p.Samples) == 1 || param <= p.Samples[0].Param {
		return p.Samples[0].State.Clone(), nil
	}

	last := p.Samples[len(p.Samples)-1]
	if param >= last.Param {
		return last.State.Clone(), nil
	}

	// First sample with Param > param; its predecessor starts the
	// bracketing segment.
	idx := sort.Search(len(p.Samples), func(i int) bool {
		return p.Samples[i].Param > param
	})

	lo := p.Samples[idx-1]
	hi := p.Samples[idx]

	span := hi.Param - lo.Param
	if span == 0 {
		return lo.State.Clone(), nil
	}

	alpha := (param - lo.Param) / span
	result := make(State, len(lo.State))
	for i := range result {
		result[i] = (1-alpha)*lo.State[i] + alpha*hi.State[i]
	}
	return result, nil
}
