package geometry

import "math"

// OrientedBox is a box rotated around the Z axis.
// HalfExtents are measured in the box's local frame: X along the rotated
// length, Y across it, Z along the height axis.
type OrientedBox struct {
	Center      Vector3
	HalfExtents Vector3
	Angle       float64
}

// Inflate returns a copy whose half extents are at least min on every axis
func (b OrientedBox) Inflate(min float64) OrientedBox {
	b.HalfExtents = b.HalfExtents.Max(NewVector3(min, min, min))
	return b
}

// Corners returns the eight world-space corners
func (b OrientedBox) Corners() [8]Vector3 {
	var corners [8]Vector3
	h := b.HalfExtents
	i := 0
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				local := NewVector3(sx*h.X, sy*h.Y, sz*h.Z)
				corners[i] = b.Center.Add(local.RotateZ(b.Angle))
				i++
			}
		}
	}
	return corners
}

// IntersectRay returns the distance along r to the nearest surface of the box.
// A ray starting inside the box reports distance zero.
func (b OrientedBox) IntersectRay(r Ray) (float64, bool) {
	// Move the ray into the box frame so the slab test is axis aligned
	origin := r.Origin.Sub(b.Center).RotateZ(-b.Angle)
	dir := r.Direction.RotateZ(-b.Angle)

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	axes := [3][3]float64{
		{origin.X, dir.X, b.HalfExtents.X},
		{origin.Y, dir.Y, b.HalfExtents.Y},
		{origin.Z, dir.Z, b.HalfExtents.Z},
	}
	for _, axis := range axes {
		o, d, h := axis[0], axis[1], axis[2]
		if math.Abs(d) < Epsilon {
			if o < -h || o > h {
				return 0, false
			}
			continue
		}
		t1 := (-h - o) / d
		t2 := (h - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}
