package engine

import "math/rand"

// SliceSource replays a fixed sequence of observations.
type SliceSource struct {
	observations []Observation
	pos          int
}

func NewSliceSource(observations []Observation) *SliceSource {
	return &SliceSource{observations: observations}
}

func (s *SliceSource) Next() (Observation, bool) {
	if s.pos >= len(s.observations) {
		return Observation{}, false
	}
	obs := s.observations[s.pos]
	s.pos++
	return obs, true
}

// SyntheticSource generates a deterministic seeded stream of density
// and flow observations for self-contained runs. It never exhausts.
type SyntheticSource struct {
	rng       *rand.Rand
	amplitude float64
	flowScale float64
}

func NewSyntheticSource(seed int64, amplitude, flowScale float64) *SyntheticSource {
	return &SyntheticSource{
		rng:       rand.New(rand.NewSource(seed)),
		amplitude: amplitude,
		flowScale: flowScale,
	}
}

func (s *SyntheticSource) Next() (Observation, bool) {
	var obs Observation
	for i := 0; i < 4; i++ {
		obs.Density[i] = s.amplitude * s.rng.Float64()
		for j := 0; j < 4; j++ {
			obs.Flow[i][j] = s.flowScale * s.rng.NormFloat64()
		}
	}
	return obs, true
}
