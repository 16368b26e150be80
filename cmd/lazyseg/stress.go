package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/npillmayer/lazyseg/internal/config"
	"github.com/npillmayer/lazyseg/stress"
)

// StressCommand holds the flags for the stress command.
type StressCommand struct {
	configPath string
	size       int
	rounds     int
	seed       int64
	variants   []string
	noColor    bool
}

func newStressCommand() *cobra.Command {
	sc := &StressCommand{}

	cobraCmd := &cobra.Command{
		Use:   "stress",
		Short: "Check tree variants against a naive model",
		Long: `Builds every tree variant from random elements and compares each of a
series of random range queries against a linear scan, interleaved with random
range updates.`,
		RunE: sc.Run,
	}

	cobraCmd.Flags().StringVarP(&sc.configPath, "config", "c", "", "config file (default: .lazyseg.yaml in CWD or $HOME)")
	cobraCmd.Flags().IntVarP(&sc.size, "size", "n", config.DefaultStressSize, "number of elements")
	cobraCmd.Flags().IntVarP(&sc.rounds, "rounds", "m", config.DefaultStressRounds, "number of query/update rounds")
	cobraCmd.Flags().Int64Var(&sc.seed, "seed", config.DefaultStressSeed, "seed of the random source")
	cobraCmd.Flags().StringSliceVar(&sc.variants, "variant", nil, "variants to check (default: all)")
	cobraCmd.Flags().BoolVar(&sc.noColor, "no-color", false, "disable colored output")

	return cobraCmd
}

// Run executes the stress command.
func (sc *StressCommand) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := sc.settings(cmd)
	if err != nil {
		return err
	}
	variants, err := stress.SelectVariants(cfg.Stress.Variants...)
	if err != nil {
		return err
	}
	runner := stress.NewRunner(stress.Config{
		Size:   cfg.Stress.Size,
		Rounds: cfg.Stress.Rounds,
		Seed:   cfg.Stress.Seed,
	})
	defer runner.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	results, err := runner.Subscribe(ctx, uint(len(variants)))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	rep := newReporter(out, cfg.Color && !sc.noColor && isTerminal(out))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range variants {
			msg, ok := <-results
			if !ok {
				return
			}
			if res, ok := msg.(stress.Result); ok {
				rep.report(res)
			}
		}
	}()

	var failed int
	for _, res := range runner.Run(variants) {
		if res.Err != nil {
			failed++
		}
	}
	<-done
	if failed > 0 {
		return fmt.Errorf("%d of %d variants failed", failed, len(variants))
	}
	return nil
}

// settings merges the configuration file/environment with explicitly set flags.
func (sc *StressCommand) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(sc.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Stress.Size = sc.size
	}
	if flags.Changed("rounds") {
		cfg.Stress.Rounds = sc.rounds
	}
	if flags.Changed("seed") {
		cfg.Stress.Seed = sc.seed
	}
	if flags.Changed("variant") {
		cfg.Stress.Variants = sc.variants
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// --- Reporting -------------------------------------------------------------

type reporter struct {
	w          io.Writer
	pass, fail *color.Color
}

func newReporter(w io.Writer, colored bool) *reporter {
	rep := &reporter{
		w:    w,
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
	}
	if !colored {
		rep.pass.DisableColor()
		rep.fail.DisableColor()
	}
	return rep
}

func (rep *reporter) report(res stress.Result) {
	fmt.Fprintf(rep.w, "testing %s... ", res.Variant)
	if res.Err != nil {
		rep.fail.Fprint(rep.w, "FAILED")
		fmt.Fprintf(rep.w, "\n  %v\n", res.Err)
		return
	}
	rep.pass.Fprint(rep.w, "ok")
	fmt.Fprintf(rep.w, " (%s)\n", res.Elapsed.Round(time.Millisecond))
}

// isTerminal reports whether w is a terminal. Only terminals get colors.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
