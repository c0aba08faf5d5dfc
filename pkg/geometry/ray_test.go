package geometry

import (
	"math"
	"testing"
)

func TestRayIntersectGroundPlane(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		want   Vector3
		wantOK bool
	}{
		{
			name:   "straight down",
			ray:    Ray{Origin: NewVector3(3, 4, 5), Direction: NewVector3(0, 0, -1)},
			want:   NewVector3(3, 4, 0),
			wantOK: true,
		},
		{
			name:   "oblique",
			ray:    Ray{Origin: NewVector3(0, 0, 10), Direction: NewVector3(1, 0, -1).Normalize()},
			want:   NewVector3(10, 0, 0),
			wantOK: true,
		},
		{
			name:   "parallel",
			ray:    Ray{Origin: NewVector3(0, 0, 10), Direction: NewVector3(1, 0, 0)},
			wantOK: false,
		},
		{
			name:   "pointing away",
			ray:    Ray{Origin: NewVector3(0, 0, 10), Direction: NewVector3(0, 0, 1)},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := tt.ray.IntersectPlane(GroundPlane)
			if ok != tt.wantOK {
				t.Fatalf("IntersectPlane ok: expected %v, got %v", tt.wantOK, ok)
			}
			if ok && !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("IntersectPlane failed: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOrientedBoxIntersectRay(t *testing.T) {
	// A 10 unit long wall along X, centred at (5,0)
	box := OrientedBox{
		Center:      NewVector3(5, 0, 0),
		HalfExtents: NewVector3(5, 0.1, 0.005),
	}

	down := Ray{Origin: NewVector3(5, 0, 5), Direction: NewVector3(0, 0, -1)}
	dist, ok := box.IntersectRay(down)
	if !ok {
		t.Fatalf("IntersectRay failed: expected hit at the midpoint")
	}
	if math.Abs(dist-4.995) > 1e-9 {
		t.Errorf("IntersectRay distance: expected 4.995, got %v", dist)
	}

	miss := Ray{Origin: NewVector3(5, 1, 5), Direction: NewVector3(0, 0, -1)}
	if _, ok := box.IntersectRay(miss); ok {
		t.Errorf("IntersectRay failed: expected miss beside the wall")
	}

	if _, ok := box.Inflate(1).IntersectRay(miss); !ok {
		t.Errorf("IntersectRay failed: inflated box should catch the ray")
	}
}

func TestOrientedBoxRotated(t *testing.T) {
	// Same wall rotated to run along Y, from (0,0) to (0,10)
	box := OrientedBox{
		Center:      NewVector3(0, 5, 0),
		HalfExtents: NewVector3(5, 0.1, 0.005),
		Angle:       math.Pi / 2,
	}

	hit := Ray{Origin: NewVector3(0, 9, 5), Direction: NewVector3(0, 0, -1)}
	if _, ok := box.IntersectRay(hit); !ok {
		t.Errorf("IntersectRay failed: expected hit along rotated wall")
	}

	miss := Ray{Origin: NewVector3(9, 0, 5), Direction: NewVector3(0, 0, -1)}
	if _, ok := box.IntersectRay(miss); ok {
		t.Errorf("IntersectRay failed: unrotated footprint must not be hit")
	}
}
