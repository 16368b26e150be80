package puzzles

import (
	"errors"
	"strings"
	"testing"
)

// naiveDivisible checks every substring of every digit run.
func naiveDivisible(s string) int64 {
	var count int64
	var run []int
	flush := func() {
		for i := range run {
			sum := 0
			for j := i; j < len(run); j++ {
				sum += run[j]
				if sum%3 == 0 {
					count++
				}
			}
		}
		run = run[:0]
	}
	for _, c := range s {
		switch {
		case c == ' ' || c == '\n' || c == '\t':
		case c >= '0' && c <= '9':
			run = append(run, int(c-'0'))
		default:
			flush()
		}
	}
	flush()
	return count
}

func TestDivisibleSubstrings(t *testing.T) {
	for _, input := range []string{
		"",
		"123",
		"3",
		"11",
		"1x2",
		"12 3\n",
		"9999",
		"130a6009b75312",
	} {
		got, err := DivisibleSubstrings(strings.NewReader(input))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", input, err)
		}
		if want := naiveDivisible(input); got != want {
			t.Errorf("%q: got %d, expected %d", input, got, want)
		}
	}
}

func TestPeanoProduct(t *testing.T) {
	got, err := PeanoProduct(strings.NewReader("S(S(0))\nS(S(S(0)))\n"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if want := Peano(6); got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
	got, _ = PeanoProduct(strings.NewReader("0\nS(0)"))
	if got != "0" {
		t.Errorf("expected 0, got %q", got)
	}
	_, err = PeanoProduct(strings.NewReader("S(0)\n"))
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}

func TestPeano(t *testing.T) {
	if got := Peano(2); got != "S(S(0))" {
		t.Errorf("got %q", got)
	}
	if got := Peano(-3); got != "0" {
		t.Errorf("got %q", got)
	}
}
