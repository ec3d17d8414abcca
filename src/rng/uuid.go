package rng

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NewSessionID generates an RFC4122 UUID v4 from the given stream.
// A nil reader falls back to crypto/rand.
func NewSessionID(r io.Reader) (uuid.UUID, error) {
	if r == nil {
		return uuid.NewRandom()
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "session id")
	}
	return id, nil
}
