/*
Package search provides binary and golden-section search.

Searching for x in a sorted slice a:

	first a[i] >  x:   UpperBound(a, x)
	first a[i] >= x:   LowerBound(a, x)
	 last a[i] <  x:   LowerBound(a, x) - 1
	 last a[i] <= x:   UpperBound(a, x) - 1

Note: searching for the largest [l, r] such that f(l) > a and f(r) < b, where
[a, b] is a range in f() space, may result in negative [l, r] ranges.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package search

import (
	"cmp"
	"sort"

	"golang.org/x/exp/constraints"
)

// BinSearchLeft searches a position in the inclusive range [l, r].
// isLeft(m) reports whether m is strictly to the left of the target.
// The result is the smallest m for which isLeft(m) is false, or r if there is
// none.
func BinSearchLeft(l, r int, isLeft func(int) bool) int {
	for l < r {
		m := l + (r-l)/2
		if isLeft(m) {
			l = m + 1
		} else {
			r = m
		}
	}
	return l
}

// BinSearchRight searches a position in the inclusive range [l, r].
// isRight(m) reports whether m is strictly to the right of the target.
// The result is the largest m for which isRight(m) is false, or l if there
// is none.
//
// Functionally identical to BinSearchLeft, but the midpoint rounds up, which
// is required to make progress.
func BinSearchRight(l, r int, isRight func(int) bool) int {
	for l < r {
		m := l + (r-l+1)/2
		if isRight(m) {
			r = m - 1
		} else {
			l = m
		}
	}
	return l
}

// LowerBound returns the index of the first element of sorted slice a which
// is not less than x, or len(a).
func LowerBound[S ~[]E, E cmp.Ordered](a S, x E) int {
	return sort.Search(len(a), func(i int) bool { return a[i] >= x })
}

// UpperBound returns the index of the first element of sorted slice a which
// is greater than x, or len(a).
func UpperBound[S ~[]E, E cmp.Ordered](a S, x E) int {
	return sort.Search(len(a), func(i int) bool { return a[i] > x })
}

// invPhi is 1/φ, the golden ratio's inverse.
const invPhi = 0.61803398874989484820

// GoldenSection searches the minimum of a unimodal function f on [a, b],
// narrowing the interval iter times by the golden ratio. It returns the
// best position found and its value.
func GoldenSection[T constraints.Float, U cmp.Ordered](iter int, a, b T, f func(T) U) (T, U) {
	if a > b {
		a, b = b, a
	}
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)
	for i := 0; i < iter; i++ {
		if fc <= fd { // minimum in [a, d]
			b, d, fd = d, c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else { // minimum in [c, b]
			a, c, fc = c, d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
	}
	if fc <= fd {
		return c, fc
	}
	return d, fd
}
