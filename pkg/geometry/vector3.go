package geometry

import "math"

// Epsilon is the tolerance used for approximate comparisons
const Epsilon = 1e-9

// Vector3 is a point or direction in world space.
// Z is the height axis, so ground-plane points have Z == 0.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Ground returns the ground-plane point (x, y, 0)
func Ground(x, y float64) Vector3 {
	return Vector3{X: x, Y: y}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance returns the distance between two points
func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector along v, or the zero vector for zero input
func (v Vector3) Normalize() Vector3 {
	if l := v.Length(); l > 0 {
		return v.Mul(1 / l)
	}
	return Vector3{}
}

// Min and Max combine two vectors component-wise
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Midpoint returns the point halfway between v and o
func (v Vector3) Midpoint(o Vector3) Vector3 {
	return v.Add(o).Mul(0.5)
}

// Heading is the angle of the projection of v onto the ground plane,
// measured counter-clockwise from +X.
func (v Vector3) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// GroundLength is the length of v projected onto the ground plane
func (v Vector3) GroundLength() float64 {
	return math.Hypot(v.X, v.Y)
}

// RotateZ turns v around the height axis by angle radians
func (v Vector3) RotateZ(angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
}

// ApproxEqual reports whether every component matches within tol
func (v Vector3) ApproxEqual(o Vector3, tol float64) bool {
	d := v.Sub(o)
	return math.Abs(d.X) <= tol && math.Abs(d.Y) <= tol && math.Abs(d.Z) <= tol
}

func (v Vector3) IsZero() bool {
	return v == Vector3{}
}
