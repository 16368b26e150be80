/*
Package stress checks lazy segment trees against a naive model.

A Model holds the plain sequence of elements and applies every update
element by element, answering queries by a linear scan. Check drives a tree
and a model with the same random operations and reports the first
divergence.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stress

import (
	"fmt"

	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

// Model is a slice-backed reference implementation of a lazy segment tree.
// Updates cost O(r-l), queries cost O(r-l).
type Model[T any] struct {
	alg    lazyseg.Algebra[T]
	values []T
}

// NewModel creates a model holding a copy of values.
func NewModel[T any](alg lazyseg.Algebra[T], values []T) *Model[T] {
	m := &Model[T]{alg: alg, values: make([]T, len(values))}
	copy(m.values, values)
	return m
}

// Len returns the number of elements.
func (m *Model[T]) Len() int {
	return len(m.values)
}

// Values returns the elements of the model. The slice is not copied.
func (m *Model[T]) Values() []T {
	return m.values
}

// Update applies value to every element in [l, r). An update of a single
// element is the algebra's Apply over a span of length 1.
func (m *Model[T]) Update(l, r int, value T) error {
	if err := m.checkRange(l, r); err != nil {
		return err
	}
	for i := l; i < r; i++ {
		m.values[i] = m.alg.Apply(m.values[i], value, 1)
	}
	return nil
}

// Query folds the elements of [l, r) from left to right.
func (m *Model[T]) Query(l, r int) (T, error) {
	acc := m.alg.Neutral()
	if err := m.checkRange(l, r); err != nil {
		return acc, err
	}
	for i := l; i < r; i++ {
		acc = m.alg.Combine(acc, m.values[i])
	}
	return acc, nil
}

func (m *Model[T]) checkRange(l, r int) error {
	if l < 0 || r > len(m.values) || l > r {
		return fmt.Errorf("%w: range [%d, %d) of %d", lazyseg.ErrIndexOutOfBounds, l, r, len(m.values))
	}
	return nil
}
