/*
Package algebra provides some pre-manufactured algebras for lazy segment
trees.

	SumAdd      range sums under range increments
	SumAssign   range sums under range assignment
	MinAdd      range minima under range increments
	MaxAdd      range maxima under range increments

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package algebra

import "golang.org/x/exp/constraints"

// Number is the set of element types the pre-manufactured algebras operate on.
type Number interface {
	constraints.Integer | constraints.Float
}
