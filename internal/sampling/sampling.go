// Package sampling provides a deterministic, keyed source of random values
// for generating reproducible test polynomials.
package sampling

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/zeebo/blake3"
)

var (
	// ErrInfeasible is returned when n values with the requested gap cannot
	// fit in the requested range.
	ErrInfeasible = errors.New("sampling: gap too large for range")

	// ErrExhausted is returned when rejection sampling gives up.
	ErrExhausted = errors.New("sampling: too many rejected draws")
)

// maxAttempts bounds rejection sampling in Separated.
const maxAttempts = 10000

// Source is a deterministic stream of random values derived from a key with
// the blake3 extendable output function. Two sources created from the same
// key produce the same sequence.
//
// Source is not safe for concurrent use; the sequence would stop being
// deterministic anyway. Give each goroutine its own Source via Derive.
type Source struct {
	key    []byte
	digest *blake3.Digest
	buf    [8]byte
}

// New returns a Source keyed with key. A nil key is treated as empty.
func New(key []byte) *Source {
	s := &Source{key: append([]byte(nil), key...)}
	s.Reset()
	return s
}

// Reset rewinds the source to the start of its sequence.
func (s *Source) Reset() {
	hasher := blake3.New()
	_, _ = hasher.Write(s.key)
	s.digest = hasher.Digest()
}

// Derive returns an independent Source keyed by this source's key and index.
func (s *Source) Derive(index uint64) *Source {
	key := make([]byte, len(s.key), len(s.key)+8)
	copy(key, s.key)
	key = binary.BigEndian.AppendUint64(key, index)
	return New(key)
}

// Uint64 returns the next 64 bits of the stream. It makes Source usable as a
// math/rand/v2 Source.
func (s *Source) Uint64() uint64 {
	_, _ = s.digest.Read(s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) * (1.0 / (1 << 53))
}

// Range returns a value in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// Sign returns -1 or 1 with equal probability.
func (s *Source) Sign() float64 {
	if s.Uint64()&1 == 0 {
		return -1
	}
	return 1
}

// Separated returns n values in [lo, hi) whose pairwise distance is at least
// gap. Values are returned in draw order, not sorted.
func (s *Source) Separated(n int, lo, hi, gap float64) ([]float64, error) {
	if n > 1 && float64(n-1)*gap >= hi-lo {
		return nil, ErrInfeasible
	}

	vals := make([]float64, 0, n)
	for attempt := 0; len(vals) < n; attempt++ {
		if attempt == maxAttempts {
			return nil, ErrExhausted
		}
		v := s.Range(lo, hi)
		if separated(vals, v, gap) {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

func separated(vals []float64, v, gap float64) bool {
	for _, w := range vals {
		if math.Abs(w-v) < gap {
			return false
		}
	}
	return true
}
