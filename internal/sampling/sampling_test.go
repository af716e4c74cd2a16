package sampling

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDeterministic(t *testing.T) {
	key := []byte("polyroot/sampling")

	a := New(key)
	b := New(key)

	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}

	first := New(key).Uint64()
	a.Reset()
	require.Equal(t, first, a.Uint64())
}

func TestSourceKeysDiffer(t *testing.T) {
	a := New([]byte("a"))
	b := New([]byte("b"))

	same := 0
	for i := 0; i < 16; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 16)
}

func TestSourceDerive(t *testing.T) {
	root := New([]byte("root"))

	d0 := root.Derive(0)
	d0again := root.Derive(0)
	d1 := root.Derive(1)

	v := d0.Uint64()
	assert.Equal(t, v, d0again.Uint64())
	assert.NotEqual(t, v, d1.Uint64())
}

func TestSourceRange(t *testing.T) {
	s := New(nil)
	for i := 0; i < 1000; i++ {
		f := s.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)

		r := s.Range(-8, 8)
		require.GreaterOrEqual(t, r, -8.0)
		require.Less(t, r, 8.0)

		sign := s.Sign()
		require.True(t, sign == 1 || sign == -1)
	}
}

func TestSourceSeparated(t *testing.T) {
	s := New([]byte("separated"))

	for i := 0; i < 100; i++ {
		vals, err := s.Separated(4, -8, 8, 0.5)
		require.NoError(t, err)
		require.Len(t, vals, 4)

		for j := range vals {
			for k := j + 1; k < len(vals); k++ {
				assert.GreaterOrEqual(t, math.Abs(vals[j]-vals[k]), 0.5)
			}
		}
	}
}

func TestSourceSeparatedInfeasible(t *testing.T) {
	s := New(nil)
	_, err := s.Separated(4, 0, 1, 0.5)
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestSourceAsRandSource(t *testing.T) {
	r1 := rand.New(New([]byte("rand")))
	r2 := rand.New(New([]byte("rand")))
	for i := 0; i < 16; i++ {
		require.Equal(t, r1.IntN(1000), r2.IntN(1000))
	}
}
