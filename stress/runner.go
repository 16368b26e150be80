package stress

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/lazyseg/algebra"
)

// Variant is a named randomized check of one kind of tree.
type Variant struct {
	Name  string
	Check func(cfg Config) error
}

// Variants returns the built-in checks over int64 elements. Initial elements
// are drawn from the int32 range, updates from the uint32 range.
func Variants() []Variant {
	return []Variant{
		{"SumAdd", func(cfg Config) error {
			return Check[int64]("SumAdd", algebra.SumAdd[int64]{}, int32Values, uint32Values, cfg)
		}},
		{"SumAssign", func(cfg Config) error {
			return Check[int64]("SumAssign", algebra.SumAssign[int64]{}, int32Values, uint32Values, cfg)
		}},
		{"MinAdd", func(cfg Config) error {
			return Check[int64]("MinAdd", algebra.MinAddInt64, int32Values, int32Values, cfg)
		}},
		{"MaxAdd", func(cfg Config) error {
			return Check[int64]("MaxAdd", algebra.MaxAddInt64, int32Values, int32Values, cfg)
		}},
	}
}

// SelectVariants returns the built-in variants with the given names, or all
// of them if no name is given.
func SelectVariants(names ...string) ([]Variant, error) {
	all := Variants()
	if len(names) == 0 {
		return all, nil
	}
	var selected []Variant
	for _, name := range names {
		found := false
		for _, v := range all {
			if v.Name == name {
				selected = append(selected, v)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("stress: unknown variant %q", name)
		}
	}
	return selected, nil
}

func int32Values(rnd *rand.Rand) int64 {
	return int64(int32(rnd.Uint32()))
}

func uint32Values(rnd *rand.Rand) int64 {
	return int64(rnd.Uint32())
}

// Result is the outcome of running a variant.
type Result struct {
	Variant string
	Err     error
	Elapsed time.Duration
}

// Runner runs variants one after the other and publishes every Result to its
// subscribers.
type Runner struct {
	cfg  Config
	cast *caster.Caster
}

// NewRunner creates a runner for checks with configuration cfg.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:  cfg,
		cast: caster.New(nil),
	}
}

// Subscribe returns a channel receiving a Result per variant run. capacity
// should be at least the number of variants to run, otherwise Run blocks on
// slow subscribers.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	ch, ok := r.cast.Sub(ctx, capacity)
	if !ok {
		return nil, fmt.Errorf("stress: runner already closed")
	}
	return ch, nil
}

// Run checks every variant and returns the results in order.
func (r *Runner) Run(variants []Variant) []Result {
	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		start := time.Now()
		err := v.Check(r.cfg)
		res := Result{Variant: v.Name, Err: err, Elapsed: time.Since(start)}
		if err != nil {
			tracer().Errorf("stress: variant %s failed: %v", v.Name, err)
		} else {
			tracer().Infof("stress: variant %s ok", v.Name)
		}
		r.cast.Pub(res)
		results = append(results, res)
	}
	return results
}

// Close stops broadcasting results.
func (r *Runner) Close() {
	r.cast.Close()
}
