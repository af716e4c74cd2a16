package polyroot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	coeffs := []float64{-6, 11, -6, 1}
	for _, x := range []float64{1, 2, 3} {
		assert.InDelta(t, 0, Eval(coeffs, x), 1e-12)
	}
	assert.Equal(t, -6.0, Eval(coeffs, 0))
	assert.Equal(t, 24.0, Eval(coeffs, 5))
	assert.Zero(t, Eval([]float64(nil), 3))
}

func TestFromRoots(t *testing.T) {
	tests := []struct {
		name  string
		lead  float64
		roots []float64
		want  []float64
	}{
		{"constant", 2, nil, []float64{2}},
		{"linear", 1, []float64{3}, []float64{-3, 1}},
		{"(x-1)(x-2)(x-3)", 1, []float64{1, 2, 3}, []float64{-6, 11, -6, 1}},
		{"x^4 - 10x^2 + 9", 1, []float64{1, -1, 3, -3}, []float64{9, 0, -10, 0, 1}},
		{"scaled", -2, []float64{1, 2, 3, 4}, []float64{-48, 100, -70, 20, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromRoots(tt.lead, tt.roots...)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestResidual(t *testing.T) {
	coeffs := []float64{-6, 11, -6, 1}
	assert.Zero(t, Residual(coeffs, 2))
	// p(0) = -6 over a scale of 6 + 11 + 6 + 1
	assert.InDelta(t, 0.25, Residual(coeffs, 0), 1e-15)
	assert.Zero(t, Residual([]float64{0, 0}, 1))
}

func TestResidualNearZeroRoot(t *testing.T) {
	// x^3 - x has an exact root at 0; tiny round-off there must stay tiny.
	coeffs := []float64{0, -1, 0, 1}
	tests := []struct {
		name string
		x    float64
		max  float64
	}{
		{"exact zero", 0, 0},
		{"1e-17", 1e-17, 1e-16},
		{"-7e-17", -7.07e-17, 1e-16},
		{"1e-300", 1e-300, 1e-299},
		{"root at 1", 1, 0},
		{"off root", 0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.LessOrEqual(t, Residual(coeffs, tt.x), tt.max)
		})
	}

	// Away from roots the residual is still large.
	assert.InDelta(t, 0.1875, Residual(coeffs, 0.5), 1e-15)
}

func TestResidualFloat32(t *testing.T) {
	coeffs := []float32{0, -1, 0, 1}
	assert.LessOrEqual(t, Residual(coeffs, float32(1e-8)), float32(1e-8))
	assert.Zero(t, Residual(coeffs, float32(-1)))
}
