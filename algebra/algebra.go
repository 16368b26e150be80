package algebra

import (
	"math"

	"github.com/npillmayer/lazyseg"
)

// SumAdd aggregates by summation. Updates add a value to every element of a
// range.
type SumAdd[T Number] struct{}

var _ lazyseg.Algebra[int64] = SumAdd[int64]{}

// Neutral is part of interface lazyseg.Algebra.
func (SumAdd[T]) Neutral() T { return 0 }

// Combine is part of interface lazyseg.Algebra.
func (SumAdd[T]) Combine(left, right T) T { return left + right }

// Compose is part of interface lazyseg.Algebra. Increments add up.
func (SumAdd[T]) Compose(pending, update T) T {
	return pending + update
}

// Apply is part of interface lazyseg.Algebra.
func (SumAdd[T]) Apply(aggregate, update T, length int) T {
	return aggregate + update*T(length)
}

// ---------------------------------------------------------------------------

// SumAssign aggregates by summation. Updates overwrite every element of a range
// with a value.
type SumAssign[T Number] struct{}

var _ lazyseg.Algebra[int64] = SumAssign[int64]{}

// Neutral is part of interface lazyseg.Algebra.
func (SumAssign[T]) Neutral() T { return 0 }

// Combine is part of interface lazyseg.Algebra.
func (SumAssign[T]) Combine(left, right T) T { return left + right }

// Compose is part of interface lazyseg.Algebra. The newer assignment wins.
func (SumAssign[T]) Compose(_, update T) T { return update }

// Apply is part of interface lazyseg.Algebra. The previous aggregate is
// discarded.
func (SumAssign[T]) Apply(_, update T, length int) T {
	return update * T(length)
}

// ---------------------------------------------------------------------------

// MinAdd aggregates by taking the minimum. Updates add a value to every element
// of a range.
//
// Infinity is the neutral element and is reserved for empty or unset spans.
// It is absorbing under updates, i.e. such a span stays at Infinity instead of
// overflowing. Elements, and every value an element reaches through updates,
// have to stay strictly below Infinity. An element hitting Infinity would be
// taken for an empty span and freeze, while increments still pending above it
// keep adding up, so a tree and an elementwise evaluation would disagree.
type MinAdd[T Number] struct {
	Infinity T
}

var _ lazyseg.Algebra[int64] = MinAdd[int64]{}

// Neutral is part of interface lazyseg.Algebra.
func (m MinAdd[T]) Neutral() T { return m.Infinity }

// Combine is part of interface lazyseg.Algebra.
func (m MinAdd[T]) Combine(left, right T) T { return min(left, right) }

// Compose is part of interface lazyseg.Algebra.
func (m MinAdd[T]) Compose(pending, update T) T {
	return pending + update
}

// Apply is part of interface lazyseg.Algebra. The minimum of a span shifts by
// update, independent of its length.
func (m MinAdd[T]) Apply(aggregate, update T, _ int) T {
	if aggregate == m.Infinity {
		return aggregate
	}
	return aggregate + update
}

// ---------------------------------------------------------------------------

// MaxAdd aggregates by taking the maximum. Updates add a value to every element
// of a range.
//
// NegInfinity is the neutral element and is absorbing under updates, see
// MinAdd. Elements and every value reached through updates have to stay
// strictly above NegInfinity.
type MaxAdd[T Number] struct {
	NegInfinity T
}

var _ lazyseg.Algebra[int64] = MaxAdd[int64]{}

// Neutral is part of interface lazyseg.Algebra.
func (m MaxAdd[T]) Neutral() T { return m.NegInfinity }

// Combine is part of interface lazyseg.Algebra.
func (m MaxAdd[T]) Combine(left, right T) T { return max(left, right) }

// Compose is part of interface lazyseg.Algebra.
func (m MaxAdd[T]) Compose(pending, update T) T {
	return pending + update
}

// Apply is part of interface lazyseg.Algebra.
func (m MaxAdd[T]) Apply(aggregate, update T, _ int) T {
	if aggregate == m.NegInfinity {
		return aggregate
	}
	return aggregate + update
}

// --- Convenience -----------------------------------------------------------

// Int64 bounds for MinAdd and MaxAdd.
var (
	MinAddInt64 = MinAdd[int64]{Infinity: math.MaxInt64}
	MaxAddInt64 = MaxAdd[int64]{NegInfinity: math.MinInt64}
)

// Float64 bounds for MinAdd and MaxAdd.
var (
	MinAddFloat64 = MinAdd[float64]{Infinity: math.Inf(1)}
	MaxAddFloat64 = MaxAdd[float64]{NegInfinity: math.Inf(-1)}
)

// NewSumAdd creates a tree of range sums under range increments, initialized
// from values.
func NewSumAdd[T Number](values []T) (*lazyseg.Tree[T], error) {
	return lazyseg.FromSlice(lazyseg.Config[T]{Algebra: SumAdd[T]{}}, values)
}

// NewSumAssign creates a tree of range sums under range assignment,
// initialized from values.
func NewSumAssign[T Number](values []T) (*lazyseg.Tree[T], error) {
	return lazyseg.FromSlice(lazyseg.Config[T]{Algebra: SumAssign[T]{}}, values)
}

// NewMinAdd creates a tree of range minima under range increments, initialized
// from values. Elements, and all values updates will move them to, must be
// strictly less than infinity.
func NewMinAdd[T Number](infinity T, values []T) (*lazyseg.Tree[T], error) {
	return lazyseg.FromSlice(lazyseg.Config[T]{Algebra: MinAdd[T]{Infinity: infinity}}, values)
}

// NewMaxAdd creates a tree of range maxima under range increments, initialized
// from values. Elements, and all values updates will move them to, must be
// strictly greater than negInfinity.
func NewMaxAdd[T Number](negInfinity T, values []T) (*lazyseg.Tree[T], error) {
	return lazyseg.FromSlice(lazyseg.Config[T]{Algebra: MaxAdd[T]{NegInfinity: negInfinity}}, values)
}
