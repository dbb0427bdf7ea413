package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LoggingConfig `yaml:"log"`
	Machine MachineConfig `yaml:"machine"`
	Demo    DemoConfig    `yaml:"demo"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

type MachineConfig struct {
	InitialCount *int `yaml:"initial_count"`
}

type DemoConfig struct {
	RefillAmount *int   `yaml:"refill_amount"`
	Format       string `yaml:"format"`
}

const (
	defaultInitialCount = 5
	defaultRefillAmount = 100
)

func (m MachineConfig) InitialCountValue() int {
	if m.InitialCount == nil {
		return defaultInitialCount
	}
	return *m.InitialCount
}

func (d DemoConfig) RefillAmountValue() int {
	if d.RefillAmount == nil {
		return defaultRefillAmount
	}
	return *d.RefillAmount
}

// Default returns a config with every default applied and environment
// overrides layered on top.
func Default() (*Config, error) {
	var cfg Config
	return finish(&cfg)
}

func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, validate(cfg)
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}
	if cfg.Machine.InitialCount == nil {
		count := defaultInitialCount
		cfg.Machine.InitialCount = &count
	}
	if cfg.Demo.RefillAmount == nil {
		amount := defaultRefillAmount
		cfg.Demo.RefillAmount = &amount
	}
	if cfg.Demo.Format == "" {
		cfg.Demo.Format = "text"
	}
}

func validate(cfg *Config) error {
	if cfg.Machine.InitialCountValue() < 0 {
		return errors.New("machine.initial_count must be >= 0")
	}
	if cfg.Demo.RefillAmountValue() < 0 {
		return errors.New("demo.refill_amount must be >= 0")
	}
	switch cfg.Demo.Format {
	case "text", "html":
	default:
		return fmt.Errorf("demo.format must be text or html, got %q", cfg.Demo.Format)
	}
	switch cfg.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding must be console or json, got %q", cfg.Log.Encoding)
	}
	return nil
}
