package config

// Presets are named starting configurations for common scenarios.
var Presets = map[string]*Config{
	"calm": func() *Config {
		cfg := DefaultConfig()
		cfg.Source.Amplitude = 10.0
		cfg.Source.FlowScale = 0.1
		return cfg
	}(),
	"turbulent": func() *Config {
		cfg := DefaultConfig()
		cfg.Source.Amplitude = 1e4
		cfg.Source.FlowScale = 50.0
		return cfg
	}(),
	"collapse": func() *Config {
		// Geometrized units push the weak-field perturbations into the
		// strong-curvature regime where the detector fires.
		cfg := DefaultConfig()
		cfg.Constants.CLight = 1
		cfg.Constants.GNewton = 1
		cfg.Source.Amplitude = 1e6
		cfg.Source.FlowScale = 1.0
		return cfg
	}(),
}
