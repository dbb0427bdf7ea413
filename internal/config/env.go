package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file and sets environment variables.
// Missing files are ignored and variables already set are left untouched.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type envOverrides struct {
	LogLevel     string `env:"GUMBALL_LOG_LEVEL"`
	LogEncoding  string `env:"GUMBALL_LOG_ENCODING"`
	InitialCount *int   `env:"GUMBALL_INITIAL_COUNT"`
	RefillAmount *int   `env:"GUMBALL_REFILL_AMOUNT"`
	Format       string `env:"GUMBALL_FORMAT"`
}

func applyEnvOverrides(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogEncoding != "" {
		cfg.Log.Encoding = o.LogEncoding
	}
	if o.InitialCount != nil {
		cfg.Machine.InitialCount = o.InitialCount
	}
	if o.RefillAmount != nil {
		cfg.Demo.RefillAmount = o.RefillAmount
	}
	if o.Format != "" {
		cfg.Demo.Format = o.Format
	}
	return nil
}
