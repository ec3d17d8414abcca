package rng

import (
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// NewSeededReader returns a deterministic byte stream for seed. Two readers
// built from the same seed produce identical output.
func NewSeededReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.NewChaCha8(key)
}

// SeedFrom reads a 64-bit game seed from an entropy source.
func SeedFrom(r io.Reader, h *Health) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if h != nil {
			h.Set(false, "error fetching seed bytes: "+err.Error())
		}
		return 0, errors.Wrap(err, "error fetching seed bytes")
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
