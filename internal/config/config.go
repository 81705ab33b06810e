// Package config handles fpcalc configuration from environment variables and flags
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/govalues/fixedpoint"
)

// Config holds all fpcalc configuration
type Config struct {
	// Arithmetic
	Precision int // fractional digits of every operand and result

	// Output, a negative value means unset
	Round    int
	Truncate int

	// Logging
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json"

	// precisionErr holds an invalid FPCALC_PRECISION until a flag replaces it
	precisionErr error
}

// Defaults
const (
	DefaultPrecision = fixedpoint.DefaultPrecision
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Environment variables
const (
	EnvPrecision = "FPCALC_PRECISION"
	EnvLogLevel  = "FPCALC_LOG_LEVEL"
	EnvLogFormat = "FPCALC_LOG_FORMAT"
)

// Load reads configuration from environment variables.
// It loads the given env files, or .env if none are given, when present.
// Variables already set in the environment take priority over env files.
// Load does not validate: call Validate once flags have been applied.
func Load(envFiles ...string) *Config {
	// Missing env files are not an error
	_ = godotenv.Load(envFiles...)

	precision, err := getEnvInt(EnvPrecision, DefaultPrecision)

	return &Config{
		Precision:    precision,
		Round:        -1,
		Truncate:     -1,
		LogLevel:     getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:    getEnv(EnvLogFormat, DefaultLogFormat),
		precisionErr: err,
	}
}

// RegisterFlags binds the configuration to fs.
// The current values become the flag defaults, so flags override the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(precisionValue{c}, "precision", "number of fractional digits used for arithmetic")
	fs.IntVar(&c.Round, "round", c.Round, "round the result half up to N fractional digits")
	fs.IntVar(&c.Truncate, "truncate", c.Truncate, "truncate the result to N fractional digits")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// Validate checks that the configuration is consistent
func (c *Config) Validate() error {
	if c.precisionErr != nil {
		return c.precisionErr
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	if c.Round >= 0 && c.Truncate >= 0 {
		return fmt.Errorf("round and truncate are mutually exclusive")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Format renders d according to the output settings
func (c *Config) Format(d fixedpoint.Decimal) string {
	switch {
	case c.Round >= 0:
		return d.Rounded(c.Round)
	case c.Truncate >= 0:
		return d.Truncated(c.Truncate)
	default:
		return d.String()
	}
}

// precisionValue is the flag.Value of the precision flag.
// Setting it discards an invalid precision read from the environment.
type precisionValue struct {
	c *Config
}

func (v precisionValue) String() string {
	if v.c == nil {
		return ""
	}
	return strconv.Itoa(v.c.Precision)
}

func (v precisionValue) Set(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	v.c.Precision = i
	v.c.precisionErr = nil
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return i, nil
}
