package tensor

import (
	"math"
	"testing"
)

func TestProduct(t *testing.T) {
	a := Tensor{1, 2}
	b := Tensor{3, 4, 5}

	result := Product(a, b)

	if len(result) != 6 {
		t.Fatalf("expected 6 components, got %d", len(result))
	}

	expected := Tensor{3, 4, 5, 6, 8, 10}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("component %d: got %v, expected %v", i, result[i], expected[i])
		}
	}
}

func TestContract(t *testing.T) {
	// Identity contraction leaves the other operand unchanged.
	identity := Tensor{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	a := Tensor{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	result := Contract(a, identity, Dim, Dim)
	for i := range a {
		if math.Abs(result[i]-a[i]) > 1e-12 {
			t.Errorf("component %d: got %v, expected %v", i, result[i], a[i])
		}
	}
}

func TestTrace(t *testing.T) {
	a := Tensor{
		2, 1, 1, 1,
		1, 3, 1, 1,
		1, 1, 5, 1,
		1, 1, 1, 7,
	}
	if got := Trace(a, Dim); got != 17 {
		t.Errorf("got trace %v, expected 17", got)
	}
}

func TestRaiseLowerRoundTrip(t *testing.T) {
	g := Tensor{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	gInv, err := Invert4x4(g)
	if err != nil {
		t.Fatalf("invert failed: %v", err)
	}

	lower := Tensor{
		1, 2, 3, 4,
		2, 5, 6, 7,
		3, 6, 8, 9,
		4, 7, 9, 10,
	}

	raised := RaiseIndex(lower, gInv, Dim)
	back := LowerIndex(raised, g, Dim)

	for i := range lower {
		if math.Abs(back[i]-lower[i]) > 1e-12 {
			t.Errorf("component %d: got %v, expected %v", i, back[i], lower[i])
		}
	}
}
