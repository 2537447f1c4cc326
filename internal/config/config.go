package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BanaanKiamanesh/Shilling/internal/ode"
)

// Config describes one integration run: which problem, which method,
// the time span and step, and optionally an explicit initial state.
type Config struct {
	Problem   string    `yaml:"problem"`
	Method    string    `yaml:"method"`
	Dt        float64   `yaml:"dt"`
	T0        float64   `yaml:"t0"`
	Tf        float64   `yaml:"tf"`
	InitState []float64 `yaml:"init_state"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: "decay",
		Method:  "rk4",
		Dt:      ode.DefaultStep,
		T0:      0,
		Tf:      10.0,
	}
}

// Load reads a YAML config, filling unset fields from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Dt == 0 {
		cfg.Dt = ode.DefaultStep
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
