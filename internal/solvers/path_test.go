package solvers

import (
	"errors"
	"math"
	"testing"
)

func testPath() Path {
	return Path{
		Samples: []Sample{
			{Param: 0, State: State{0, 10}},
			{Param: 1, State: State{2, 20}},
			{Param: 3, State: State{6, 40}},
		},
		ParamRange: 3,
	}
}

func TestInterpolateEmptyPath(t *testing.T) {
	_, err := Path{}.Interpolate(0.5)
	if !errors.Is(err, ErrEmptyTrajectory) {
		t.Errorf("expected ErrEmptyTrajectory, got %v", err)
	}
}

func TestInterpolate(t *testing.T) {
	p := testPath()

	tests := []struct {
		name     string
		param    float64
		expected State
	}{
		{"exact first", 0, State{0, 10}},
		{"exact interior", 1, State{2, 20}},
		{"midpoint", 0.5, State{1, 15}},
		{"second segment", 2, State{4, 30}},
		{"before first clamps", -5, State{0, 10}},
		{"past last clamps", 100, State{6, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Interpolate(tt.param)
			if err != nil {
				t.Fatalf("interpolate failed: %v", err)
			}
			for i := range tt.expected {
				if math.Abs(got[i]-tt.expected[i]) > 1e-12 {
					t.Errorf("component %d: got %v, expected %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestInterpolateReturnsCopy(t *testing.T) {
	p := testPath()
	got, err := p.Interpolate(0)
	if err != nil {
		t.Fatalf("interpolate failed: %v", err)
	}
	got[0] = 99

	if p.Samples[0].State[0] != 0 {
		t.Error("mutating the interpolated state leaked into the path")
	}
}

func TestInterpolateSingleSample(t *testing.T) {
	p := Path{Samples: []Sample{{Param: 2, State: State{7}}}}
	got, err := p.Interpolate(5)
	if err != nil {
		t.Fatalf("interpolate failed: %v", err)
	}
	if got[0] != 7 {
		t.Errorf("got %v, expected the lone sample's state", got[0])
	}
}
