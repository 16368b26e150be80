package lazyseg

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("lazyseg: invalid configuration")
	// ErrInvalidSize signals a negative number of leaves.
	ErrInvalidSize = errors.New("lazyseg: invalid size")
	// ErrIndexOutOfBounds signals a range not contained in [0, N), or with l > r.
	ErrIndexOutOfBounds = errors.New("lazyseg: index out of bounds")
	// ErrLengthMismatch signals that Build has been called with a number of
	// values different from the number of leaves.
	ErrLengthMismatch = errors.New("lazyseg: length mismatch")
	// ErrInvariant is reported by Check for a tree in an inconsistent state.
	ErrInvariant = errors.New("lazyseg: invariant violated")
)
