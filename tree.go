package lazyseg

import (
	"fmt"
)

// Tree is a segment tree over N elements of type T, supporting range updates
// and range queries with lazy propagation.
//
// The zero value is not usable; create trees with New or FromSlice.
type Tree[T any] struct {
	cfg   Config[T]
	alg   Algebra[T]
	nodes []node[T] // 4N slots, node 1 is the root
	n     int
}

// node is a slot of the tree arena. If lazy is set, pending has already been
// applied to agg, but not yet to the node's children.
type node[T any] struct {
	agg     T
	pending T
	lazy    bool
}

// New creates a tree with validated configuration and zero leaves.
// Call Reset or Build to give it a size.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg, alg: cfg.Algebra}, nil
}

// FromSlice creates a tree with len(values) leaves, initialized from values.
func FromSlice[T any](cfg Config[T], values []T) (*Tree[T], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err = t.Reset(len(values)); err != nil {
		return nil, err
	}
	if err = t.Build(values); err != nil {
		return nil, err
	}
	return t, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Len returns the number of leaves N.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Summary returns the aggregate over all elements, which is the root's
// aggregate.
func (t *Tree[T]) Summary() T {
	if t.n == 0 {
		return t.alg.Neutral()
	}
	return t.nodes[1].agg
}

// Reset sizes the tree to n leaves. Every aggregate is set to the neutral
// element and no update is pending. Storage of a previous size is re-used
// if possible.
func (t *Tree[T]) Reset(n int) error {
	if n < 0 {
		tracer().Errorf("lazyseg: reset called with size %d", n)
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	slots := 4 * n
	if cap(t.nodes) >= slots {
		t.nodes = t.nodes[:slots]
	} else {
		t.nodes = make([]node[T], slots)
	}
	neutral := t.alg.Neutral()
	for i := range t.nodes {
		t.nodes[i] = node[T]{agg: neutral}
	}
	t.n = n
	tracer().Debugf("lazyseg: reset tree to %d leaves", n)
	return nil
}

// Build initializes the leaves from values, which must hold exactly Len()
// elements, and computes all inner aggregates. Pending updates are dropped.
func (t *Tree[T]) Build(values []T) error {
	if len(values) != t.n {
		tracer().Errorf("lazyseg: build with %d values for %d leaves", len(values), t.n)
		return fmt.Errorf("%w: %d values for %d leaves", ErrLengthMismatch, len(values), t.n)
	}
	if t.n > 0 {
		t.build(values, 1, 0, t.n)
	}
	tracer().Debugf("lazyseg: built tree of %d leaves", t.n)
	return nil
}

func (t *Tree[T]) build(values []T, v, vl, vr int) {
	if vr-vl == 1 {
		t.nodes[v] = node[T]{agg: values[vl]}
		return
	}
	vm := (vl + vr) / 2
	t.build(values, 2*v, vl, vm)
	t.build(values, 2*v+1, vm, vr)
	t.nodes[v] = node[T]{agg: t.alg.Combine(t.nodes[2*v].agg, t.nodes[2*v+1].agg)}
}

// Update applies value to every element in [l, r). An empty range is a no-op.
func (t *Tree[T]) Update(l, r int, value T) error {
	if err := t.checkRange(l, r); err != nil {
		return err
	}
	t.update(l, r, value, 1, 0, t.n)
	return nil
}

func (t *Tree[T]) update(l, r int, value T, v, vl, vr int) {
	if l >= vr || r <= vl || r <= l {
		return
	}
	if l == vl && r == vr {
		t.applyTo(v, vl, vr, value)
		return
	}
	t.push(v, vl, vr)
	vm := (vl + vr) / 2
	t.update(l, min(r, vm), value, 2*v, vl, vm)
	t.update(max(l, vm), r, value, 2*v+1, vm, vr)
	t.nodes[v].agg = t.alg.Combine(t.nodes[2*v].agg, t.nodes[2*v+1].agg)
}

// Query returns the combination of all elements in [l, r). For an empty range
// Query returns the neutral element.
func (t *Tree[T]) Query(l, r int) (T, error) {
	if err := t.checkRange(l, r); err != nil {
		return t.alg.Neutral(), err
	}
	return t.query(l, r, 1, 0, t.n), nil
}

func (t *Tree[T]) query(l, r int, v, vl, vr int) T {
	if l >= vr || r <= vl || r <= l {
		return t.alg.Neutral()
	}
	if l <= vl && r >= vr {
		return t.nodes[v].agg
	}
	t.push(v, vl, vr)
	vm := (vl + vr) / 2
	left := t.query(l, min(r, vm), 2*v, vl, vm)
	right := t.query(max(l, vm), r, 2*v+1, vm, vr)
	return t.alg.Combine(left, right)
}

// At returns the element at index i.
func (t *Tree[T]) At(i int) (T, error) {
	if i < 0 || i >= t.n {
		return t.alg.Neutral(), fmt.Errorf("%w: index %d of %d", ErrIndexOutOfBounds, i, t.n)
	}
	return t.query(i, i+1, 1, 0, t.n), nil
}

// Clone returns a tree with a copy of t's node arena. Operations on the clone
// do not affect t.
func (t *Tree[T]) Clone() *Tree[T] {
	if t == nil {
		return nil
	}
	cloned := *t
	cloned.nodes = make([]node[T], len(t.nodes))
	copy(cloned.nodes, t.nodes)
	return &cloned
}

// push propagates the pending update of node v, spanning [vl, vr), to both of
// its children.
func (t *Tree[T]) push(v, vl, vr int) {
	if !t.nodes[v].lazy {
		return
	}
	assert(vr-vl > 1, "lazyseg: leaf carries a pending update")
	vm := (vl + vr) / 2
	pending := t.nodes[v].pending
	t.applyTo(2*v, vl, vm, pending)
	t.applyTo(2*v+1, vm, vr, pending)
	var zero T
	t.nodes[v].pending = zero
	t.nodes[v].lazy = false
}

// applyTo applies value to the aggregate of node v spanning [vl, vr) and
// records it as pending, unless v is a leaf.
func (t *Tree[T]) applyTo(v, vl, vr int, value T) {
	nd := &t.nodes[v]
	nd.agg = t.alg.Apply(nd.agg, value, vr-vl)
	if vr-vl == 1 {
		return
	}
	if nd.lazy {
		nd.pending = t.alg.Compose(nd.pending, value)
	} else {
		nd.pending = value
		nd.lazy = true
	}
}

func (t *Tree[T]) checkRange(l, r int) error {
	if l < 0 || r > t.n || l > r {
		tracer().Errorf("lazyseg: range [%d, %d) invalid for %d leaves", l, r, t.n)
		return fmt.Errorf("%w: range [%d, %d) of %d", ErrIndexOutOfBounds, l, r, t.n)
	}
	return nil
}
