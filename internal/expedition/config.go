package expedition

import (
	"os"
	"strconv"

	"github.com/samdwyer/pyramid/internal/telemetry"
)

// DefaultSource is the pyramid searched when no map or generator is chosen.
const DefaultSource = "embed:giza"

// Environment variables read by ConfigFromEnv.
const (
	EnvMap              = "PYRAMID_MAP"
	EnvSeed             = "PYRAMID_SEED"
	EnvView             = "PYRAMID_VIEW"
	EnvHoneycombKey     = "HONEYCOMB_PYRAMID_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_PYRAMID_DATASET"
)

// Config holds expedition configuration options.
type Config struct {
	// Source is a pyramid file path or "embed:<name>".
	Source string

	// Generate searches a random pyramid instead of Source.
	Generate bool

	// Seed for random pyramid generation. A seed of 0 means a random seed
	// will be generated.
	Seed int64

	// View replays the search in the terminal after it finishes.
	View bool

	LogLevel  string
	LogFormat string

	Honeycomb telemetry.Honeycomb
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Source:    DefaultSource,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// ConfigFromEnv overlays the PYRAMID_* and HONEYCOMB_PYRAMID_* environment
// variables on DefaultConfig. Unparsable numbers and booleans are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvMap); v != "" {
		cfg.Source = v
	}
	if v, err := strconv.ParseInt(os.Getenv(EnvSeed), 10, 64); err == nil {
		cfg.Seed = v
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvView)); err == nil {
		cfg.View = v
	}
	cfg.Honeycomb = telemetry.Honeycomb{
		APIKey:  os.Getenv(EnvHoneycombKey),
		Dataset: os.Getenv(EnvHoneycombDataset),
	}
	return cfg
}
