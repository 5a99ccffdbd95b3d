package geometry

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestUnit(t *testing.T) {
	result := Unit(AxisY, -1)

	expected := f64.Vec3{0, -1, 0}
	if result != expected {
		t.Errorf("Unit failed: expected %v, got %v", expected, result)
	}
}

func TestTrailing3(t *testing.T) {
	result := Trailing3([]float64{7, 1, 2, 3})

	expected := f64.Vec3{1, 2, 3}
	if result != expected {
		t.Errorf("Trailing3 failed: expected %v, got %v", expected, result)
	}
}

func TestTrailing3Short(t *testing.T) {
	result := Trailing3([]float64{4, 5})

	expected := f64.Vec3{0, 4, 5}
	if result != expected {
		t.Errorf("Trailing3 failed: expected %v, got %v", expected, result)
	}
}

func TestLength(t *testing.T) {
	length := Length(f64.Vec3{3, 4, 0})

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestLinspace(t *testing.T) {
	samples := Linspace(0, 10, 101)

	if len(samples) != 101 {
		t.Fatalf("Linspace failed: expected 101 samples, got %d", len(samples))
	}
	if samples[0] != 0 || samples[100] != 10 {
		t.Errorf("Linspace failed: endpoints %v, %v", samples[0], samples[100])
	}
	// 0.2 and 0.4 must be exact, plane positions are compared by value
	if samples[2] != 0.2 || samples[4] != 0.4 {
		t.Errorf("Linspace failed: expected 0.2 and 0.4, got %v and %v", samples[2], samples[4])
	}
}

func TestLinspaceSingle(t *testing.T) {
	samples := Linspace(3, 9, 1)

	if len(samples) != 1 || samples[0] != 3 {
		t.Errorf("Linspace failed: expected [3], got %v", samples)
	}
}

func TestCrossDot(t *testing.T) {
	a := f64.Vec3{1, 0, 0}
	b := f64.Vec3{0, 1, 0}

	if got := Cross(a, b); got != (f64.Vec3{0, 0, 1}) {
		t.Errorf("Cross failed: got %v", got)
	}
	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot failed: got %v", got)
	}
	if got := Normalize(f64.Vec3{0, 3, 4}); got != (f64.Vec3{0, 0.6, 0.8}) {
		t.Errorf("Normalize failed: got %v", got)
	}
	if got := Reverse(f64.Vec3{1, 2, 3}); got != (f64.Vec3{3, 2, 1}) {
		t.Errorf("Reverse failed: got %v", got)
	}
}
