package stress

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/lazyseg"
	"github.com/npillmayer/lazyseg/algebra"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestModel(t *testing.T) {
	m := NewModel[int64](algebra.SumAdd[int64]{}, []int64{1, 2, 3, 4, 5})
	if m.Len() != 5 {
		t.Fatalf("expected 5 elements, got %d", m.Len())
	}
	if err := m.Update(1, 4, 10); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if v, _ := m.Query(0, 5); v != 45 {
		t.Fatalf("expected 45, got %d", v)
	}
	if _, err := m.Query(3, 2); !errors.Is(err, lazyseg.ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestVariantsPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lazyseg")
	defer teardown()

	cfg := Config{Size: 300, Rounds: 500, Seed: 7}
	for _, v := range Variants() {
		if err := v.Check(cfg); err != nil {
			t.Errorf("variant %s failed: %v", v.Name, err)
		}
	}
}

// brokenSum forgets the span length when applying an update, which a tree
// notices as soon as an update covers an inner node.
type brokenSum struct{ algebra.SumAdd[int64] }

func (brokenSum) Apply(agg, upd int64, _ int) int64 { return agg + upd }

func TestCheckDetectsMismatch(t *testing.T) {
	values := func(rnd *rand.Rand) int64 { return int64(rnd.Intn(100)) }
	err := Check[int64]("broken", brokenSum{}, values, values, Config{Size: 64, Rounds: 200, Seed: 3})
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) || mismatch.Variant != "broken" {
		t.Fatalf("expected MismatchError for variant 'broken', got %v", err)
	}
}

func TestSelectVariants(t *testing.T) {
	all, err := SelectVariants()
	if err != nil || len(all) != len(Variants()) {
		t.Fatalf("expected all variants, got %d (%v)", len(all), err)
	}
	some, err := SelectVariants("MinAdd", "SumAdd")
	if err != nil || len(some) != 2 || some[0].Name != "MinAdd" {
		t.Fatalf("unexpected selection %v (%v)", some, err)
	}
	if _, err = SelectVariants("nope"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestRunnerPublishesResults(t *testing.T) {
	runner := NewRunner(Config{Size: 50, Rounds: 50, Seed: 1})
	defer runner.Close()
	variants := Variants()
	ch, err := runner.Subscribe(context.Background(), uint(len(variants)))
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	results := runner.Run(variants)
	if len(results) != len(variants) {
		t.Fatalf("expected %d results, got %d", len(variants), len(results))
	}
	for i := range variants {
		msg := <-ch
		res, ok := msg.(Result)
		if !ok {
			t.Fatalf("unexpected message type %T", msg)
		}
		if res.Variant != variants[i].Name || res.Err != nil {
			t.Errorf("unexpected result %+v", res)
		}
	}
}
