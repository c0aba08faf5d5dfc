package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	assert.Equal(t, NewVector3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVector3(3, 3, 3), b.Sub(a))
	assert.Equal(t, NewVector3(2, 4, 6), a.Mul(2))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, NewVector3(0, 0, 1), NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)))
	assert.Equal(t, NewVector3(1, 2, 3), a.Min(b))
	assert.Equal(t, NewVector3(4, 5, 6), a.Max(b))
}

func TestVector3Lengths(t *testing.T) {
	v := NewVector3(3, 4, 12)

	assert.InDelta(t, 13, v.Length(), 1e-12)
	assert.InDelta(t, 5, v.GroundLength(), 1e-12, "height is ignored")
	assert.InDelta(t, 5, Ground(0, 0).Distance(Ground(3, 4)), 1e-12)
	assert.InDelta(t, 1, v.Normalize().Length(), 1e-12)
	assert.Equal(t, Vector3{}, Vector3{}.Normalize())
}

func TestVector3Heading(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want float64
	}{
		{"east", Ground(1, 0), 0},
		{"north", Ground(0, 2), math.Pi / 2},
		{"west", Ground(-1, 0), math.Pi},
		{"south west", Ground(-1, -1), -3 * math.Pi / 4},
		{"height ignored", NewVector3(0, 1, 9), math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.Heading(), 1e-12)
		})
	}
}

func TestVector3GroundHelpers(t *testing.T) {
	assert.Equal(t, NewVector3(5, 2, 0), Ground(0, 0).Midpoint(Ground(10, 4)))
	assert.True(t, NewVector3(1, 0, 2).RotateZ(math.Pi/2).ApproxEqual(NewVector3(0, 1, 2), 1e-12))
	assert.False(t, Ground(1, 0).ApproxEqual(Ground(1.1, 0), 0.05))
	assert.True(t, Vector3{}.IsZero())
	assert.False(t, Ground(0, Epsilon).IsZero())
}
