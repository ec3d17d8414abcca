package rng

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// UniformInt32 returns a uniform integer in [min, max] inclusive.
// Integer-only rejection sampling (no floats). This is unbiased assuming the uint32 stream is uniform.
func UniformInt32(r io.Reader, h *Health, min int, max int) (int32, error) {
	if min < -1000000000 || max > 1000000000 {
		return 0, errors.Errorf("range [%d, %d] exceeds +/-1,000,000,000", min, max)
	}
	if min > max {
		return 0, errors.New("the minimum value should be smaller than or equal to the maximum value")
	}

	rangeSize := uint32(max - min + 1)

	// limit = floor(2^32 / rangeSize) * rangeSize
	limit := (uint64(1) << 32) / uint64(rangeSize) * uint64(rangeSize)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if h != nil {
				h.Set(false, "error fetching random bytes: "+err.Error())
			}
			return 0, errors.Wrap(err, "error fetching random bytes")
		}

		x := binary.BigEndian.Uint32(buf[:])
		if uint64(x) < limit {
			return int32(x%rangeSize) + int32(min), nil
		}
		// reject and retry
	}
}

// Shuffle permutes n elements with Fisher-Yates, drawing every index from r.
// The same byte stream always yields the same permutation.
func Shuffle(r io.Reader, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := UniformInt32(r, nil, 0, i)
		if err != nil {
			return errors.Wrap(err, "shuffle")
		}
		swap(i, int(j))
	}
	return nil
}
