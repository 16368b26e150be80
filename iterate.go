package lazyseg

import "iter"

// ForEach walks the elements in-order, pushing pending updates down to the
// leaves on its way. Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(i int, value T) bool) {
	if t == nil || t.n == 0 || fn == nil {
		return
	}
	t.forEachNode(1, 0, t.n, fn)
}

func (t *Tree[T]) forEachNode(v, vl, vr int, fn func(int, T) bool) bool {
	if vr-vl == 1 {
		return fn(vl, t.nodes[v].agg)
	}
	t.push(v, vl, vr)
	vm := (vl + vr) / 2
	if !t.forEachNode(2*v, vl, vm, fn) {
		return false
	}
	return t.forEachNode(2*v+1, vm, vr, fn)
}

// All returns an iterator over index/element pairs.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.ForEach(yield)
	}
}

// Values returns a copy of all elements.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	t.ForEach(func(_ int, value T) bool {
		values = append(values, value)
		return true
	})
	return values
}
