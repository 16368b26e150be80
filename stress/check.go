package stress

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/npillmayer/lazyseg"
)

// ErrMismatch signals that a tree and its model disagree.
var ErrMismatch = errors.New("stress: tree diverges from model")

// MismatchError describes the first divergence of a tree from its model.
type MismatchError struct {
	Variant string
	Round   int
	L, R    int
	Want    any
	Got     any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("stress: %s, round %d: query for [%d, %d) failed: expected %v, got %v",
		e.Variant, e.Round, e.L, e.R, e.Want, e.Got)
}

// Unwrap makes MismatchError match ErrMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Config holds the parameters of a randomized check.
type Config struct {
	Size   int   // number of elements
	Rounds int   // number of query/update pairs
	Seed   int64 // seed of the pseudo-random source
}

// DefaultConfig returns the configuration of a full-scale check.
func DefaultConfig() Config {
	return Config{Size: 10000, Rounds: 10000, Seed: 1}
}

// Generator draws a random element or update value.
type Generator[T any] func(rnd *rand.Rand) T

// Check builds a tree and a model from random values and runs cfg.Rounds
// rounds of one random query followed by one random update. Every query
// result of the tree has to equal the model's. After the last round, the
// tree's invariants and its complete sequence of elements are checked.
func Check[T comparable](name string, alg lazyseg.Algebra[T], values, updates Generator[T], cfg Config) error {
	if cfg.Size < 0 || cfg.Rounds < 0 {
		return fmt.Errorf("stress: invalid configuration %+v", cfg)
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))
	initial := make([]T, cfg.Size)
	for i := range initial {
		initial[i] = values(rnd)
	}
	tree, err := lazyseg.FromSlice(lazyseg.Config[T]{Algebra: alg}, initial)
	if err != nil {
		return err
	}
	model := NewModel(alg, initial)
	tracer().Debugf("stress: checking %s, %d elements, %d rounds", name, cfg.Size, cfg.Rounds)
	for round := 0; round < cfg.Rounds; round++ {
		l, r := randomRange(rnd, cfg.Size)
		want, err := model.Query(l, r)
		if err != nil {
			return err
		}
		got, err := tree.Query(l, r)
		if err != nil {
			return err
		}
		if got != want {
			return &MismatchError{Variant: name, Round: round, L: l, R: r, Want: want, Got: got}
		}
		l, r = randomRange(rnd, cfg.Size)
		upd := updates(rnd)
		if err = model.Update(l, r, upd); err != nil {
			return err
		}
		if err = tree.Update(l, r, upd); err != nil {
			return err
		}
	}
	if err = tree.Check(func(a, b T) bool { return a == b }); err != nil {
		return fmt.Errorf("stress: %s: %w", name, err)
	}
	for i, v := range tree.Values() {
		if v != model.Values()[i] {
			return &MismatchError{Variant: name, Round: cfg.Rounds, L: i, R: i + 1,
				Want: model.Values()[i], Got: v}
		}
	}
	return nil
}

// randomRange draws two positions in [0, n] and orders them.
func randomRange(rnd *rand.Rand, n int) (int, int) {
	l, r := rnd.Intn(n+1), rnd.Intn(n+1)
	if l > r {
		l, r = r, l
	}
	return l, r
}
