package main

import (
	"testing"

	"github.com/tensorwerk/geodyn/internal/config"
)

func TestApplyThresholdOverride(t *testing.T) {
	cfg := config.DefaultConfig()

	threshold = 0
	applyThresholdOverride(cfg, false)
	if cfg.Threshold != config.DefaultThreshold {
		t.Errorf("threshold = %v, expected the config value to survive an unset flag", cfg.Threshold)
	}

	applyThresholdOverride(cfg, true)
	if cfg.Threshold != 0 {
		t.Errorf("threshold = %v, expected an explicit zero flag to apply", cfg.Threshold)
	}

	threshold = 0.5
	applyThresholdOverride(cfg, true)
	if cfg.Threshold != 0.5 {
		t.Errorf("threshold = %v, expected 0.5", cfg.Threshold)
	}
}
