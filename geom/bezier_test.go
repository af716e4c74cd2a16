package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBezierEval(t *testing.T) {
	c := Bezier{P0: V2(0, 0), P1: V2(0, 1), P2: V2(1, 1), P3: V2(1, 0)}

	assert.True(t, c.Eval(0).Approx(c.P0, 1e-12))
	assert.True(t, c.Eval(1).Approx(c.P3, 1e-12))
	assert.True(t, c.Eval(0.5).Approx(V2(0.5, 0.75), 1e-12))
}

func TestBezierLineCrossings(t *testing.T) {
	arch := Bezier{P0: V2(0, 0), P1: V2(0, 1), P2: V2(1, 1), P3: V2(1, 0)}
	straight := Bezier{P0: V2(0, 0), P1: V2(1.0/3, 1.0/3), P2: V2(2.0/3, 2.0/3), P3: V2(1, 1)}
	s := Bezier{P0: V2(0, 0), P1: V2(2, 2), P2: V2(-1, -1), P3: V2(1, 1)}

	tests := []struct {
		name     string
		curve    Bezier
		origin   Vec2
		dir      Vec2
		expected int
		params   []float64
	}{
		{
			// y(t) = 3t(1-t) is quadratic, so the cubic term vanishes.
			name:     "arch crossed by y = 0.5",
			curve:    arch,
			origin:   V2(0, 0.5),
			dir:      V2(1, 0),
			expected: 2,
			params:   []float64{0.21132486540518713, 0.7886751345948129},
		},
		{
			name:     "arch above the line",
			curve:    arch,
			origin:   V2(0, 2),
			dir:      V2(1, 0),
			expected: 0,
		},
		{
			name:     "straight curve crossed by y = 0.5",
			curve:    straight,
			origin:   V2(0, 0.5),
			dir:      V2(1, 0),
			expected: 1,
			params:   []float64{0.5},
		},
		{
			name:     "arch endpoints on the x axis",
			curve:    arch,
			origin:   V2(-3, 0),
			dir:      V2(2, 0),
			expected: 2,
			params:   []float64{0, 1},
		},
		{
			name:     "s-curve crossed three times",
			curve:    s,
			origin:   V2(0.5, 0),
			dir:      V2(0, 1),
			expected: 3,
			params:   []float64{0.5 - math.Sqrt(0.15), 0.5, 0.5 + math.Sqrt(0.15)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.curve.LineCrossings(tt.origin, tt.dir)
			require.NoError(t, err)
			require.Len(t, got, tt.expected)

			for i, p := range tt.params {
				assert.InDelta(t, p, got[i], 1e-9)
			}
			for i, p := range got {
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 1.0)
				if i > 0 {
					assert.Greater(t, p, got[i-1])
				}
				// The crossing point must lie on the line.
				off := tt.curve.Eval(p).Sub(tt.origin).Cross(tt.dir)
				assert.InDelta(t, 0, off, 1e-9)
			}
		})
	}
}

func TestBezierLineCrossingsZeroDirection(t *testing.T) {
	c := Bezier{P3: V2(1, 1)}
	_, err := c.LineCrossings(V2(0, 0), V2(0, 0))
	require.ErrorIs(t, err, ErrInvalidShape)
}
