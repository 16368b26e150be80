package search

import (
	"math"
	"testing"
)

func TestBounds(t *testing.T) {
	ints := []int{4, 8, 9, 9, 11, 20}
	for _, c := range []struct{ x, lower, upper int }{
		{3, 0, 0},
		{9, 2, 4},
		{10, 4, 4},
		{25, 6, 6},
	} {
		if got := LowerBound(ints, c.x); got != c.lower {
			t.Errorf("LowerBound(%d) = %d, expected %d", c.x, got, c.lower)
		}
		if got := UpperBound(ints, c.x); got != c.upper {
			t.Errorf("UpperBound(%d) = %d, expected %d", c.x, got, c.upper)
		}
	}
}

func TestBinSearchLeft(t *testing.T) {
	squares := func(target int) func(int) bool {
		return func(m int) bool { return m*m < target }
	}
	// smallest m in [0, 100] with m² ≥ target
	for target, want := range map[int]int{0: 0, 1: 1, 50: 8, 64: 8, 65: 9, 20000: 100} {
		if got := BinSearchLeft(0, 100, squares(target)); got != want {
			t.Errorf("target %d: got %d, expected %d", target, got, want)
		}
	}
}

func TestBinSearchRight(t *testing.T) {
	squares := func(target int) func(int) bool {
		return func(m int) bool { return m*m > target }
	}
	// largest m in [0, 100] with m² ≤ target
	for target, want := range map[int]int{0: 0, 3: 1, 64: 8, 80: 8, 81: 9, 20000: 100} {
		if got := BinSearchRight(0, 100, squares(target)); got != want {
			t.Errorf("target %d: got %d, expected %d", target, got, want)
		}
	}
}

func TestGoldenSection(t *testing.T) {
	f := func(x float64) float64 { return (x - 2) * (x - 2) }
	x, fx := GoldenSection(60, 0.0, 5.0, f)
	if math.Abs(x-2) > 1e-6 || fx > 1e-10 {
		t.Errorf("expected minimum at 2, got f(%g) = %g", x, fx)
	}
	x, _ = GoldenSection(60, 1.0, -4.0, math.Cos)
	if math.Abs(x+math.Pi) > 1e-6 {
		t.Errorf("expected minimum of cos at -π, got %g", x)
	}
}
