// Package config handles YAML session configuration parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pacelab/internal/balance"
	"pacelab/internal/core"
	"pacelab/internal/estimate"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for one session: who the
// athlete is, how their parameters are obtained (test protocol or explicit
// values), and optionally what effort to simulate against them.
type Config struct {
	Athlete    AthleteConfig     `yaml:"athlete"`
	Protocol   *ProtocolConfig   `yaml:"protocol,omitempty"`
	Parameters *ParametersConfig `yaml:"parameters,omitempty"`
	Simulation *SimulationConfig `yaml:"simulation,omitempty"`

	// Dir is the directory of the loaded file, used to resolve relative
	// data paths. Set by LoadConfig.
	Dir string `yaml:"-"`
}

// AthleteConfig selects the sport's unit system and recovery constant.
type AthleteConfig struct {
	Sport core.Sport    `yaml:"sport"`
	Tau   time.Duration `yaml:"tau,omitempty"` // overrides the sport default
}

// TauSeconds returns the configured reconstitution constant, falling back
// to the sport default.
func (a AthleteConfig) TauSeconds() float64 {
	if a.Tau > 0 {
		return a.Tau.Seconds()
	}
	return a.Sport.DefaultTau()
}

// Protocol method names.
const (
	MethodThreeMinuteAllOut = "three_minute_all_out"
	MethodTimeTrials        = "time_trials"
	MethodThreeFiveMinute   = "three_five_minute"
	MethodRamp              = "ramp"
	MethodTimeToExhaustion  = "time_to_exhaustion"
)

// ProtocolConfig holds the raw measurements of one test protocol. Only
// the fields of the selected method are read.
type ProtocolConfig struct {
	Method string `yaml:"method"`

	// three_minute_all_out
	MaxIntensity float64 `yaml:"max_intensity,omitempty"`
	EndIntensity float64 `yaml:"end_intensity,omitempty"`

	// time_trials and time_to_exhaustion
	Trials []TrialConfig `yaml:"trials,omitempty"`

	// three_five_minute
	Distance3Min float64 `yaml:"distance_3min,omitempty"`
	Distance5Min float64 `yaml:"distance_5min,omitempty"`

	// ramp
	FinalIntensity   float64       `yaml:"final_intensity,omitempty"`
	TimeToExhaustion time.Duration `yaml:"time_to_exhaustion,omitempty"`
	RampRate         float64       `yaml:"ramp_rate,omitempty"` // per minute
}

// TrialConfig is one completed test effort.
type TrialConfig struct {
	Duration  time.Duration `yaml:"duration"`
	Distance  float64       `yaml:"distance,omitempty"`
	Intensity float64       `yaml:"intensity,omitempty"`
}

// ParametersConfig supplies an already-known parameter pair, skipping
// estimation.
type ParametersConfig struct {
	Threshold float64 `yaml:"threshold"`
	Reserve   float64 `yaml:"reserve"`
}

// SimulationConfig describes the effort to run the balance simulator over.
// Exactly one of Profile or Source supplies the intensity series.
type SimulationConfig struct {
	Duration time.Duration   `yaml:"duration"`
	Profile  *ProfileConfig  `yaml:"profile,omitempty"`
	Source   *SourceConfig   `yaml:"source,omitempty"`
	Limits   *balance.Limits `yaml:"limits,omitempty"`
}

// Profile type names.
const (
	ProfileSteady    = "steady"
	ProfileIntervals = "intervals"
	ProfileVariable  = "variable"
	ProfileRace      = "race"
)

// ProfileConfig parameterizes a synthetic intensity profile. Percentages
// are relative to the threshold. Zero values take the profile defaults.
type ProfileConfig struct {
	Type string `yaml:"type"`

	IntensityPct float64 `yaml:"intensity_pct,omitempty"` // steady

	WorkPct float64       `yaml:"work_pct,omitempty"` // intervals
	RestPct float64       `yaml:"rest_pct,omitempty"`
	Work    time.Duration `yaml:"work,omitempty"`
	Rest    time.Duration `yaml:"rest,omitempty"`

	BasePct        float64 `yaml:"base_pct,omitempty"` // variable
	VariabilityPct float64 `yaml:"variability_pct,omitempty"`
}

// SourceConfig points the simulation at a recorded activity file.
type SourceConfig struct {
	File  string `yaml:"file"`
	Field string `yaml:"field,omitempty"` // csv column / fit field
	Path  string `yaml:"path,omitempty"`  // JSONPath for json exports
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Dir = filepath.Dir(path)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Protocol == nil && c.Parameters == nil {
		return fmt.Errorf("config needs a protocol or explicit parameters")
	}
	if c.Protocol != nil && c.Parameters != nil {
		return fmt.Errorf("protocol and parameters are mutually exclusive")
	}
	if c.Simulation != nil {
		s := c.Simulation
		if s.Profile != nil && s.Source != nil {
			return fmt.Errorf("simulation profile and source are mutually exclusive")
		}
		if s.Profile == nil && s.Source == nil {
			return fmt.Errorf("simulation needs a profile or a source")
		}
		if s.Profile != nil && s.Duration <= 0 {
			return fmt.Errorf("simulation with a profile needs a positive duration")
		}
	}
	return nil
}

// ResolveParameters produces the (threshold, reserve) pair for the
// session, either from the explicit values or by running the configured
// protocol's estimator.
func (c *Config) ResolveParameters() (core.Parameters, error) {
	if c.Parameters != nil {
		return core.Parameters{
			Threshold: c.Parameters.Threshold,
			Reserve:   c.Parameters.Reserve,
		}, nil
	}

	p := c.Protocol
	switch p.Method {
	case MethodThreeMinuteAllOut:
		return estimate.ThreeMinuteAllOut(p.MaxIntensity, p.EndIntensity), nil
	case MethodTimeTrials:
		return estimate.TimeTrials(p.coreTrials())
	case MethodThreeFiveMinute:
		return estimate.ThreeFiveMinute(p.Distance3Min, p.Distance5Min), nil
	case MethodRamp:
		return estimate.Ramp(p.FinalIntensity, p.TimeToExhaustion.Seconds(), p.RampRate), nil
	case MethodTimeToExhaustion:
		return estimate.TimeToExhaustion(p.coreTrials())
	default:
		return core.Parameters{}, fmt.Errorf("unknown protocol method %q", p.Method)
	}
}

func (p *ProtocolConfig) coreTrials() []core.Trial {
	trials := make([]core.Trial, len(p.Trials))
	for i, t := range p.Trials {
		trials[i] = core.Trial{
			Duration:  t.Duration.Seconds(),
			Distance:  t.Distance,
			Intensity: t.Intensity,
		}
	}
	return trials
}
