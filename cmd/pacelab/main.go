package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pacelab/internal/balance"
	"pacelab/internal/config"
	"pacelab/internal/core"
	"pacelab/internal/data"
	"pacelab/internal/plan"
	"pacelab/internal/profile"
	"pacelab/internal/replay"
	"pacelab/internal/report"

	"github.com/google/uuid"
)

const (
	ExitSuccess     = 0
	ExitLimitFailed = 1
	ExitError       = 2
)

func main() {
	configPath := flag.String("config", "", "path to YAML session config (required)")
	output := flag.String("output", "text", "output format: text, json")
	chartPath := flag.String("chart", "", "write a PNG chart of the simulation to this file")
	replaySpeed := flag.Float64("replay", 0, "stream the simulation at this many samples per second (0 = off)")
	seed := flag.Int64("seed", 0, "random seed for synthetic profiles (0 = time-based)")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "error: --config is required")
		flag.Usage()
		os.Exit(ExitError)
	}
	if *output != "text" && *output != "json" {
		fmt.Fprintf(os.Stderr, "error: --output must be 'text' or 'json', got %q\n", *output)
		os.Exit(ExitError)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	params, err := cfg.ResolveParameters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	rep := &report.Report{
		ID:         uuid.NewString(),
		Sport:      cfg.Athlete.Sport,
		Parameters: params,
		Tau:        cfg.Athlete.TauSeconds(),
	}
	if params.Threshold > 0 {
		rep.Zones = plan.Zones(params.Threshold)
		if cfg.Athlete.Sport != core.SportCycling {
			rep.Predictions = plan.PredictRaces(params.Threshold, params.Reserve)
		}
	}

	exitCode := ExitSuccess

	if cfg.Simulation != nil {
		if params.Threshold <= 0 {
			fmt.Fprintln(os.Stderr, "error: simulation requires a positive threshold")
			os.Exit(ExitError)
		}

		series, err := buildSeries(cfg, params, *seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitError)
		}

		trace := balance.Simulate(series, params.Threshold, params.Reserve, cfg.Athlete.TauSeconds())
		summary := balance.Summarize(series, trace, params.Threshold, params.Reserve)
		rep.Summary = &summary

		if cfg.Simulation.Limits != nil {
			rep.Limits = cfg.Simulation.Limits.Check(summary)
			if !rep.Limits.Passed {
				exitCode = ExitLimitFailed
			}
		}

		if *chartPath != "" {
			if err := writeChart(*chartPath, series, trace, params.Threshold); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(ExitError)
			}
		}

		if *replaySpeed > 0 {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			err := replay.Stream(ctx, os.Stdout, series, trace, *replaySpeed)
			stop()
			if err != nil {
				fmt.Fprintf(os.Stderr, "replay interrupted: %v\n", err)
			}
		}
	}

	if *output == "json" {
		if err := report.FormatJSON(os.Stdout, rep); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(ExitError)
		}
	} else {
		report.FormatText(os.Stdout, rep)
	}

	os.Exit(exitCode)
}

// Synthetic profile defaults.
const (
	defaultSteadyPct      = 95
	defaultWorkPct        = 120
	defaultRestPct        = 70
	defaultWorkLen        = 120 * time.Second
	defaultRestLen        = 60 * time.Second
	defaultBasePct        = 85
	defaultVariabilityPct = 15
)

// buildSeries produces the intensity series for the configured
// simulation, either from a recorded activity or a synthetic profile.
func buildSeries(cfg *config.Config, params core.Parameters, seed int64) ([]float64, error) {
	sim := cfg.Simulation

	if sim.Source != nil {
		return data.LoadSeries(sim.Source.File, cfg.Dir, data.Options{
			Field: sim.Source.Field,
			Path:  sim.Source.Path,
		})
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	duration := int(sim.Duration.Seconds())
	p := sim.Profile

	switch p.Type {
	case config.ProfileSteady, "":
		pct := p.IntensityPct
		if pct == 0 {
			pct = defaultSteadyPct
		}
		return profile.Steady(duration, params.Threshold, pct), nil

	case config.ProfileIntervals:
		workPct, restPct := p.WorkPct, p.RestPct
		if workPct == 0 {
			workPct = defaultWorkPct
		}
		if restPct == 0 {
			restPct = defaultRestPct
		}
		work, rest := p.Work, p.Rest
		if work == 0 {
			work = defaultWorkLen
		}
		if rest == 0 {
			rest = defaultRestLen
		}
		return profile.Intervals(duration, params.Threshold, workPct, restPct,
			int(work.Seconds()), int(rest.Seconds())), nil

	case config.ProfileVariable:
		basePct, variabilityPct := p.BasePct, p.VariabilityPct
		if basePct == 0 {
			basePct = defaultBasePct
		}
		if variabilityPct == 0 {
			variabilityPct = defaultVariabilityPct
		}
		return profile.Variable(duration, params.Threshold, basePct, variabilityPct, rng), nil

	case config.ProfileRace:
		return profile.Race(duration, params.Threshold, rng), nil

	default:
		return nil, fmt.Errorf("unknown profile type %q", p.Type)
	}
}

func writeChart(path string, series, trace []float64, threshold float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()
	return report.RenderChart(f, series, trace, threshold)
}
