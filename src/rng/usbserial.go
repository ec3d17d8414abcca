package rng

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// SerialConfig names a hardware entropy device.
type SerialConfig struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

// NewSerialRNG opens the serial entropy device and performs an initial health check.
func NewSerialRNG(sc SerialConfig) (io.ReadCloser, *Health, error) {
	if sc.Name == "" {
		return nil, nil, errors.New("serial device name is required")
	}

	cfg := &serial.Config{
		Name:        sc.Name,
		Baud:        sc.Baud,
		Size:        8, // Hard coded by the library
		ReadTimeout: sc.ReadTimeout,
	}

	p, err := serial.OpenPort(cfg)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", sc.Name)
	}

	h := NewHealth()
	if err := HealthCheckRNG(p, h); err != nil {
		h.Set(false, err.Error())
		p.Close()
		return nil, h, err
	}
	h.Set(true, "")

	return p, h, nil
}
