package main

import (
	"context"
	"crypto/rand"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lost-woods/fourseasons/src/config"
	"github.com/lost-woods/fourseasons/src/console"
	"github.com/lost-woods/fourseasons/src/game"
	"github.com/lost-woods/fourseasons/src/rng"
)

// entropy opens the configured hardware source, falling back to the
// operating system's generator when no device is set.
func entropy(cfg config.Config, log *zap.SugaredLogger) (io.Reader, *rng.Health, func()) {
	if cfg.Serial == nil {
		return rng.NewLockedReader(rand.Reader), nil, func() {}
	}

	port, health, err := rng.NewSerialRNG(*cfg.Serial)
	if err != nil {
		log.Fatalw("entropy device unavailable", "device", cfg.Serial.Name, "error", err)
	}
	log.Infow("using entropy device", "device", cfg.Serial.Name, "baud", cfg.Serial.Baud)
	return rng.NewLockedReader(port), health, func() { port.Close() }
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		zap.NewExample().Sugar().Fatal(err)
	}

	log, err := cfg.NewLogger()
	if err != nil {
		zap.NewExample().Sugar().Fatal(err)
	}
	defer log.Sync()

	src, health, closeSrc := entropy(cfg, log)
	defer closeSrc()

	var seed uint64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else if seed, err = rng.SeedFrom(src, health); err != nil {
		fields := []interface{}{"seed", config.DefaultSeed, "error", err}
		if health != nil {
			ok, reason, checked := health.Snapshot()
			fields = append(fields, "device_ok", ok, "device_error", reason, "device_checked_at", checked)
		}
		log.Warnw("falling back to the default seed", fields...)
		seed = config.DefaultSeed
	}

	g, err := game.New(game.Options{Seed: seed, Entropy: src, Logger: log})
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, cfg.JSON, g, log)
	c.Exec("show")
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		log.Errorw("console stopped", "error", err)
	}
}
