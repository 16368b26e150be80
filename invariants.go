package lazyseg

import "fmt"

// Check validates the structural invariants of the tree, using equal to
// compare aggregates:
//
//   - every inner aggregate equals the combination of its children's
//     aggregates, after the inner node's pending update (if any) has been
//     applied to them,
//   - no leaf carries a pending update.
//
// Check does not push pending updates and leaves the tree unchanged. It is
// intended to be used in tests.
func (t *Tree[T]) Check(equal func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if equal == nil {
		return fmt.Errorf("%w: equality predicate is required", ErrInvalidConfig)
	}
	if len(t.nodes) != 4*t.n {
		return fmt.Errorf("%w: %d slots for %d leaves", ErrInvariant, len(t.nodes), t.n)
	}
	if t.n == 0 {
		return nil
	}
	return t.checkNode(1, 0, t.n, equal)
}

func (t *Tree[T]) checkNode(v, vl, vr int, equal func(a, b T) bool) error {
	nd := t.nodes[v]
	if vr-vl == 1 {
		if nd.lazy {
			return fmt.Errorf("%w: leaf %d (index %d) carries a pending update", ErrInvariant, v, vl)
		}
		return nil
	}
	vm := (vl + vr) / 2
	left, right := t.nodes[2*v].agg, t.nodes[2*v+1].agg
	if nd.lazy {
		left = t.alg.Apply(left, nd.pending, vm-vl)
		right = t.alg.Apply(right, nd.pending, vr-vm)
	}
	if !equal(nd.agg, t.alg.Combine(left, right)) {
		return fmt.Errorf("%w: aggregate of node %d spanning [%d, %d) is stale", ErrInvariant, v, vl, vr)
	}
	if err := t.checkNode(2*v, vl, vm, equal); err != nil {
		return err
	}
	return t.checkNode(2*v+1, vm, vr, equal)
}
