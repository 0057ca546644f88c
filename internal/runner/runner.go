package runner

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coffee-fueled-dev/statespace/config"
	"github.com/coffee-fueled-dev/statespace/search"
	"github.com/coffee-fueled-dev/statespace/state"
)

// Options holds the terminal demo runner's CLI configuration.
type Options struct {
	ConfigFile string
	Sample     string
	Disks      int
	Mode       string
	TargetHex  string
	StepLimit  int
	VisitLimit int
	TimeLimit  int
	Levels     int
	EmitEvery  int
	Verbose    bool
	Silent     bool
}

// ParseFlags reads the runner's CLI flags, in the teacher's goflags-group
// convention.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Terminal demo runner for the statespace library: loads a configuration (or a built-in sample) and drives one bounded search over it.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.ConfigFile, "config", "c", "", "statespace configuration file (yaml)"),
		flagSet.StringVarP(&opts.Sample, "sample", "s", "hanoi", "built-in sample to run instead of -config (hanoi, cardgame)"),
		flagSet.IntVar(&opts.Disks, "disks", 3, "disk count for the hanoi sample"),
	)

	flagSet.CreateGroup("search", "Search",
		flagSet.StringVarP(&opts.Mode, "mode", "m", "reachability", "search to run: reachability, path, cycles, expand"),
		flagSet.StringVarP(&opts.TargetHex, "target", "t", "", "target state lexical index, base 10 (path mode only)"),
		flagSet.IntVar(&opts.StepLimit, "step-limit", 0, "bound on moves explored (0 = unbounded)"),
		flagSet.IntVar(&opts.VisitLimit, "visit-limit", 0, "bound on distinct states examined (0 = unbounded)"),
		flagSet.IntVar(&opts.TimeLimit, "time-limit", 0, "wall-clock budget in seconds (0 = unbounded)"),
		flagSet.IntVar(&opts.Levels, "levels", 2, "levels to expand (expand mode only)"),
		flagSet.IntVar(&opts.EmitEvery, "emit-every", 1, "batch this many discoveries per expand event"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	return opts
}

// limits converts the flag values into search.Limits. On this CLI surface
// an unset (zero) flag always means unbounded; a host needing the
// explicit-zero boundary case builds search.Limits directly instead of
// going through Options.
func (o *Options) limits() search.Limits {
	l := search.Unbounded
	if o.StepLimit > 0 {
		l = l.WithStepLimit(o.StepLimit)
	}
	if o.VisitLimit > 0 {
		l = l.WithVisitLimit(o.VisitLimit)
	}
	if o.TimeLimit > 0 {
		l = l.WithTimeLimit(time.Duration(o.TimeLimit) * time.Second)
	}
	return l
}

// Run loads the configured state space and executes the requested search,
// printing results via gologger.
func Run(opts *Options) error {
	cfg, origin, err := loadSpace(opts)
	if err != nil {
		return err
	}

	sp, err := search.NewSpace(cfg)
	if err != nil {
		return err
	}
	originIdx, err := sp.Coder().Encode(origin)
	if err != nil {
		return err
	}
	gologger.Info().Msgf("state space cardinality: %s", sp.Coder().Cardinality().String())
	gologger.Info().Msgf("origin index: %s", originIdx.String())

	ctx := context.Background()
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeLimit)*time.Second)
		defer cancel()
	}

	switch opts.Mode {
	case "reachability":
		result, err := sp.Reachability(ctx, originIdx, opts.limits(), nil)
		if err != nil {
			return err
		}
		gologger.Info().Msgf("run %s: visited %d states in %s (budget exhausted: %v)",
			result.RunID, result.VisitedCount, result.Elapsed, result.BudgetExhausted)

	case "path":
		if opts.TargetHex == "" {
			return fmt.Errorf("path mode requires -target")
		}
		target, ok := new(big.Int).SetString(opts.TargetHex, 10)
		if !ok {
			return fmt.Errorf("invalid -target index %q", opts.TargetHex)
		}
		result, err := sp.PathSearch(ctx, originIdx, target, opts.limits())
		if err != nil {
			return err
		}
		if !result.Found {
			gologger.Info().Msgf("run %s: no path found (visited %d, %s)", result.RunID, result.VisitedCount, result.Elapsed)
			return nil
		}
		gologger.Info().Msgf("run %s: path found in %d steps", result.RunID, result.Steps)
		for _, mv := range result.Path {
			gologger.Info().Msgf("  %s -> %s (%s)", mv.FromID, mv.ToID, mv.MoveType)
		}

	case "cycles":
		result, err := sp.DetectCycles(ctx, originIdx, opts.limits())
		if err != nil {
			return err
		}
		gologger.Info().Msgf("run %s: found %d cycles (visited %d, %s)", result.RunID, len(result.Cycles), result.VisitedCount, result.Elapsed)

	case "expand":
		bar := pb.StartNew(0)
		defer bar.Finish()
		for event := range sp.Expand(ctx, []*big.Int{originIdx}, opts.Levels, search.ExpandOptions{EmitFrequency: opts.EmitEvery}) {
			bar.Add(len(event.Discoveries))
			for _, d := range event.Discoveries {
				gologger.Verbose().Msgf("level %d: %s", d.Level, d.Index.String())
			}
		}

	default:
		return fmt.Errorf("unknown mode %q", opts.Mode)
	}
	return nil
}

func loadSpace(opts *Options) (*config.Config, state.Permutation, error) {
	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, nil, err
		}
		origin, err := cfg.InitialPermutation()
		if err != nil {
			return nil, nil, err
		}
		return cfg, origin, nil
	}

	if opts.Sample == "cardgame" {
		return CardGameSample()
	}
	return HanoiSample(opts.Disks)
}
