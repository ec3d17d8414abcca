package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lost-woods/fourseasons/src/rng"
)

// DefaultSeed deals the same opening every run when nothing else picks a seed.
const DefaultSeed = 117

type Config struct {
	// Seed is nil when GAME_SEED is unset.
	Seed     *uint64
	LogLevel zapcore.Level
	JSON     bool
	// Serial is nil when SERIAL_DEVICE_NAME is unset.
	Serial *rng.SerialConfig
}

// FromEnv reads configuration from the environment:
// - GAME_SEED (unsigned integer)
// - LOG_LEVEL (debug, info, warn, error; default info)
// - OUTPUT_FORMAT (text or json; default text)
// - SERIAL_DEVICE_NAME, SERIAL_BAUD_RATE, SERIAL_READ_TIMEOUT (milliseconds)
func FromEnv() (Config, error) {
	return Parse(os.Getenv)
}

// Parse reads configuration through getenv.
func Parse(getenv func(string) string) (Config, error) {
	cfg := Config{LogLevel: zapcore.InfoLevel}

	if seedStr := getenv("GAME_SEED"); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return Config{}, errors.Errorf("invalid GAME_SEED: %q", seedStr)
		}
		cfg.Seed = &seed
	}

	if lvl := getenv("LOG_LEVEL"); lvl != "" {
		level, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return Config{}, errors.Errorf("invalid LOG_LEVEL: %q", lvl)
		}
		cfg.LogLevel = level
	}

	switch format := strings.ToLower(getenv("OUTPUT_FORMAT")); format {
	case "", "text":
	case "json":
		cfg.JSON = true
	default:
		return Config{}, errors.Errorf("invalid OUTPUT_FORMAT: %q", format)
	}

	name := getenv("SERIAL_DEVICE_NAME")
	if name == "" {
		return cfg, nil
	}

	baudStr := getenv("SERIAL_BAUD_RATE")
	baud, err := strconv.Atoi(baudStr)
	if err != nil || baud <= 0 {
		return Config{}, errors.Errorf("invalid SERIAL_BAUD_RATE: %q", baudStr)
	}

	timeoutStr := getenv("SERIAL_READ_TIMEOUT")
	timeoutMs, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutMs < 0 {
		return Config{}, errors.Errorf("invalid SERIAL_READ_TIMEOUT: %q", timeoutStr)
	}

	cfg.Serial = &rng.SerialConfig{
		Name:        name,
		Baud:        baud,
		ReadTimeout: time.Duration(timeoutMs) * time.Millisecond,
	}
	return cfg, nil
}

// NewLogger builds the production logger at the configured level.
func (c Config) NewLogger() (*zap.SugaredLogger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l.Sugar(), nil
}
