// Package config loads server settings from the environment.
//
// A .env file in the working directory is read first if present; variables
// already set in the process environment take precedence over it.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ironsheep/colour-mcp/internal/colour"
	"github.com/ironsheep/colour-mcp/internal/imaging"
)

// Environment variable names.
const (
	EnvLogLevel      = "COLOUR_MCP_LOG_LEVEL"
	EnvSwatchSize    = "COLOUR_MCP_SWATCH_SIZE"
	EnvDefaultWeight = "COLOUR_MCP_DEFAULT_WEIGHT"
)

// Config holds the settings of one server process.
type Config struct {
	// Debug enables per-request logging.
	Debug bool

	// SwatchSize is the default cell size for colour_swatch.
	SwatchSize int

	// DefaultWeight is the mix weight used when colour_mix omits one.
	DefaultWeight float64
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		SwatchSize:    imaging.DefaultSwatchSize,
		DefaultWeight: colour.DefaultMixWeight,
	}
}

// Load reads .env (if any) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded .env")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup such as os.Getenv.
// Unset variables keep their defaults; malformed ones are an error.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	cfg.Debug = getenv(EnvLogLevel) == "debug"

	if v := getenv(EnvSwatchSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s: invalid size %q", EnvSwatchSize, v)
		}
		cfg.SwatchSize = n
	}

	if v := getenv(EnvDefaultWeight); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || w < 0 || w > 100 {
			return Config{}, fmt.Errorf("%s: weight %q must be a number from 0 to 100", EnvDefaultWeight, v)
		}
		cfg.DefaultWeight = w
	}

	return cfg, nil
}
