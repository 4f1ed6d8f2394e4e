package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultEnvFile   = ".env"
	DefaultLogFile   = "cosmos.log"
	DefaultFrameRate = 60
)

// Config holds the settings of the console host. Every field can be set from
// the environment or from a .env file.
type Config struct {
	PrintInitialize       bool   `env:"COSMOS_PRINT_INITIALIZE" envDefault:"true"`
	CaptureFPS            bool   `env:"COSMOS_CAPTURE_FPS" envDefault:"true"`
	AllowDuplicateAliases bool   `env:"COSMOS_ALLOW_DUPLICATE_ALIASES" envDefault:"true"`
	RecoverPanics         bool   `env:"COSMOS_RECOVER_PANICS" envDefault:"false"`
	DebugArgs             bool   `env:"COSMOS_DEBUG_ARGS" envDefault:"false"`
	StartOpen             bool   `env:"COSMOS_START_OPEN" envDefault:"false"`
	FrameRate             int    `env:"COSMOS_FRAME_RATE" envDefault:"60"`
	LogLevel              string `env:"COSMOS_LOG_LEVEL" envDefault:"info"`
	LogFile               string `env:"COSMOS_LOG_FILE" envDefault:"cosmos.log"`
}

// Load reads the given .env files (DefaultEnvFile when none are named) and
// then parses the environment. Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	return cfg, nil
}
