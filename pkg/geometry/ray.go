package geometry

import "math"

// Ray is a half line starting at Origin. Direction is expected to be normalized.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is the set of points p with Normal·p + Constant == 0
type Plane struct {
	Normal   Vector3
	Constant float64
}

// GroundPlane is the height-zero plane walls are drawn on
var GroundPlane = Plane{Normal: NewVector3(0, 0, 1)}

// IntersectPlane returns the point where the ray meets the plane.
// ok is false when the ray runs parallel to the plane or the plane lies behind the origin.
func (r Ray) IntersectPlane(p Plane) (point Vector3, t float64, ok bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < Epsilon {
		// Edge-on: only counts if the origin already lies in the plane
		if math.Abs(p.Normal.Dot(r.Origin)+p.Constant) < Epsilon {
			return r.Origin, 0, true
		}
		return Vector3{}, 0, false
	}

	t = -(r.Origin.Dot(p.Normal) + p.Constant) / denom
	if t < 0 {
		return Vector3{}, 0, false
	}
	return r.At(t), t, true
}
