package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tensorwerk/geodyn/internal/geometry"
)

const (
	DefaultTicks     = 1000
	DefaultThreshold = 0.95
	DefaultDt        = 0.01
	DefaultTolerance = 1e-6
	DefaultMinDt     = 1e-8
	DefaultMaxDt     = 1.0
	DefaultRange     = 10.0
	DefaultAmplitude = 100.0
	DefaultFlowScale = 1.0
)

type Config struct {
	Backend   string          `yaml:"backend"`
	Ticks     int             `yaml:"ticks"`
	Seed      int64           `yaml:"seed"`
	Threshold float64         `yaml:"threshold"`
	Constants ConstantsConfig `yaml:"constants"`
	Solver    SolverConfig    `yaml:"solver"`
	Source    SourceConfig    `yaml:"source"`
}

type ConstantsConfig struct {
	CLight  float64 `yaml:"c_light"`
	GNewton float64 `yaml:"g_newton"`
	Epsilon float64 `yaml:"epsilon"`
}

type SolverConfig struct {
	Type      string  `yaml:"type"` // fixed | adaptive
	Dt        float64 `yaml:"dt"`
	Tolerance float64 `yaml:"tolerance"`
	MinDt     float64 `yaml:"min_dt"`
	MaxDt     float64 `yaml:"max_dt"`
	Range     float64 `yaml:"range"`
}

type SourceConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	FlowScale float64 `yaml:"flow_scale"`
}

func DefaultConfig() *Config {
	cons := geometry.DefaultConstants()
	return &Config{
		Backend:   "parallel",
		Ticks:     DefaultTicks,
		Threshold: DefaultThreshold,
		Constants: ConstantsConfig{
			CLight:  cons.CLight,
			GNewton: cons.GNewton,
			Epsilon: cons.EpsilonLiquidity,
		},
		Solver: SolverConfig{
			Type:      "fixed",
			Dt:        DefaultDt,
			Tolerance: DefaultTolerance,
			MinDt:     DefaultMinDt,
			MaxDt:     DefaultMaxDt,
			Range:     DefaultRange,
		},
		Source: SourceConfig{
			Amplitude: DefaultAmplitude,
			FlowScale: DefaultFlowScale,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GeometryConstants maps the file values onto the engine's constants
// structure.
func (c *Config) GeometryConstants() geometry.Constants {
	cons := geometry.DefaultConstants()
	cons.CLight = c.Constants.CLight
	cons.GNewton = c.Constants.GNewton
	cons.EpsilonLiquidity = c.Constants.Epsilon
	cons.SingularityThreshold = c.Threshold
	return cons
}
