package geometry

import "math"

// Event is one detected curvature blow-up: a location on the manifold
// and the characteristic radius of the collapsed region.
type Event struct {
	Location [4]float64 `json:"location"`
	Radius   float64    `json:"radius"`
}

// Detector thresholds the Ricci scalar magnitude and derives the
// characteristic radius of detected singularities.
type Detector struct {
	cons Constants
}

func NewDetector(cons Constants) *Detector {
	return &Detector{cons: cons}
}

// Detect computes the manifold's Ricci scalar, triggering the lazy
// derivation chain if needed, and returns one event when its magnitude
// exceeds the threshold. The threshold itself is on the no-event side:
// |R| must be strictly greater to fire.
func (d *Detector) Detect(m *Manifold) ([]Event, error) {
	scalar, err := m.RicciScalar()
	if err != nil {
		return nil, err
	}

	if math.Abs(scalar) <= d.cons.SingularityThreshold {
		return nil, nil
	}

	// Equivalent mass from the inverse-square-law relation, then the
	// Schwarzschild-like radius of that mass.
	c2 := d.cons.CLight * d.cons.CLight
	massEq := math.Abs(scalar) * c2 / (2 * d.cons.GNewton)
	radius := 2 * d.cons.GNewton * massEq / c2

	return []Event{{Radius: radius}}, nil
}
