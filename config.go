package lazyseg

import "fmt"

// Algebra defines how aggregates and updates of a tree interact.
//
// Combine has to be associative, with Neutral as its identity:
//
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//	Combine(Neutral(), a) == a == Combine(a, Neutral())
//
// Apply returns the aggregate of a span of length elements after update has
// been applied to each of them. It has to distribute over Combine:
//
//	Apply(Combine(a, b), u, k+m) == Combine(Apply(a, u, k), Apply(b, u, m))
//
// where a spans k and b spans m elements.
//
// Compose merges a newer update into an older, still pending one, such that
// applying the result equals applying pending first, then update.
type Algebra[T any] interface {
	Neutral() T
	Combine(left, right T) T
	Apply(aggregate, update T, length int) T
	Compose(pending, update T) T
}

// Config configures a lazy segment tree.
type Config[T any] struct {
	// Algebra defines aggregation and update semantics.
	Algebra Algebra[T]
}

func (cfg Config[T]) validate() error {
	if cfg.Algebra == nil {
		return fmt.Errorf("%w: algebra is required", ErrInvalidConfig)
	}
	return nil
}
