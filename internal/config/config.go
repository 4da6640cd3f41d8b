package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// Every field can be set from the YAML file or overridden from the environment.
type Config struct {
	// Environment selects the logger flavour (development or production)
	Environment string `env:"AOC_ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"AOC_LOG_LEVEL" yaml:"logLevel"`

	// Input describes where puzzle inputs live
	Input struct {
		// Dir holds one day-NN/input file per day
		Dir string `env:"AOC_INPUT_DIR" env-default:"input" yaml:"dir"`
	} `yaml:"input"`

	// Solve controls how puzzles are run
	Solve struct {
		// Parallelism limits how many days are solved at once by the all command
		Parallelism int `env:"AOC_SOLVE_PARALLELISM" env-default:"4" yaml:"parallelism"`
		// Timeout bounds a whole invocation; zero disables it
		Timeout time.Duration `env:"AOC_SOLVE_TIMEOUT" env-default:"1m" yaml:"timeout"`
	} `yaml:"solve"`

	// Metrics controls the optional Prometheus textfile export
	Metrics struct {
		// TextfilePath is written after each run when non-empty
		TextfilePath string `env:"AOC_METRICS_TEXTFILE" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Load reads an optional .env file, then the YAML file at configPath, then the
// environment. A missing YAML file is not an error: defaults and environment
// variables are used instead.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	} else {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not stat config: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	}

	if cfg.Solve.Parallelism < 1 {
		return nil, fmt.Errorf("solve parallelism must be positive, got %d", cfg.Solve.Parallelism)
	}

	return &cfg, nil
}
