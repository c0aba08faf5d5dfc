package viewer

import (
	"math"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Camera is the projection the pick engine and the label projector work against
type Camera interface {
	// Ray returns the world-space ray through the given normalized device coordinates
	Ray(ndc NDC) geometry.Ray
	// Project maps a world point to normalized device coordinates.
	// Z is the depth in [-1, 1] for points between near and far; points behind
	// the camera report Z > 1.
	Project(point geometry.Vector3) geometry.Vector3
	// Depth returns the distance of point along the view direction.
	// It is negative for points behind the camera, whatever the clip planes.
	Depth(point geometry.Vector3) float64
	// Eye returns the camera position
	Eye() geometry.Vector3
	// SetAspect updates the viewport aspect ratio (width / height)
	SetAspect(aspect float64)
}

// basis returns the forward, right and up vectors of a camera looking from position to target
func basis(position, target, upHint geometry.Vector3) (forward, right, up geometry.Vector3) {
	forward = target.Sub(position).Normalize()
	right = forward.Cross(upHint)
	if right.Length() < geometry.Epsilon {
		// Looking along the up hint, fall back to +Y (or +X when that is degenerate too)
		right = forward.Cross(geometry.NewVector3(0, 1, 0))
		if right.Length() < geometry.Epsilon {
			right = forward.Cross(geometry.NewVector3(1, 0, 0))
		}
	}
	right = right.Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// PerspectiveCamera is a pinhole camera with a vertical field of view
type PerspectiveCamera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Vertical field of view in radians
	Aspect   float64
	Near     float64
	Far      float64
}

// NewPerspectiveCamera creates a camera at position looking at target with Z up
func NewPerspectiveCamera(position, target geometry.Vector3, fovDegrees, aspect, near, far float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Position: position,
		Target:   target,
		Up:       geometry.NewVector3(0, 0, 1),
		FOV:      fovDegrees * math.Pi / 180,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// Eye returns the camera position
func (c *PerspectiveCamera) Eye() geometry.Vector3 {
	return c.Position
}

// Depth returns the camera-space distance of point along the view direction
func (c *PerspectiveCamera) Depth(point geometry.Vector3) float64 {
	forward, _, _ := basis(c.Position, c.Target, c.Up)
	return point.Sub(c.Position).Dot(forward)
}

// SetAspect updates the aspect ratio
func (c *PerspectiveCamera) SetAspect(aspect float64) {
	c.Aspect = aspect
}

// Ray converts normalized device coordinates into a world-space ray from the eye
func (c *PerspectiveCamera) Ray(ndc NDC) geometry.Ray {
	forward, right, up := basis(c.Position, c.Target, c.Up)
	fovScale := math.Tan(c.FOV / 2)

	dir := forward.
		Add(right.Mul(ndc.X * fovScale * c.Aspect)).
		Add(up.Mul(ndc.Y * fovScale))

	return geometry.Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// Project transforms a world point into normalized device coordinates
func (c *PerspectiveCamera) Project(point geometry.Vector3) geometry.Vector3 {
	forward, right, up := basis(c.Position, c.Target, c.Up)

	// Camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z == 0 {
		return geometry.NewVector3(0, 0, math.Inf(1))
	}

	fovScale := math.Tan(c.FOV / 2)
	ndcX := x / (z * fovScale * c.Aspect)
	ndcY := y / (z * fovScale)
	// OpenGL depth mapping: near -> -1, far -> 1, behind the eye -> > 1
	ndcZ := (c.Far+c.Near)/(c.Far-c.Near) - 2*c.Far*c.Near/((c.Far-c.Near)*z)

	return geometry.NewVector3(ndcX, ndcY, ndcZ)
}

// OrthographicCamera projects along its view direction without perspective
type OrthographicCamera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	Left     float64
	Right    float64
	Top      float64
	Bottom   float64
	Near     float64
	Far      float64
	Zoom     float64
}

// NewPlanCamera creates a top-down orthographic camera whose frustum is
// frustumSize units tall and scaled horizontally by aspect
func NewPlanCamera(frustumSize, aspect, height, near, far float64) *OrthographicCamera {
	c := &OrthographicCamera{
		Position: geometry.NewVector3(0, 0, height),
		Target:   geometry.NewVector3(0, 0, 0),
		Up:       geometry.NewVector3(0, 1, 0),
		Near:     near,
		Far:      far,
		Zoom:     1,
		Top:      frustumSize / 2,
		Bottom:   -frustumSize / 2,
	}
	c.SetAspect(aspect)
	return c
}

// Eye returns the camera position
func (c *OrthographicCamera) Eye() geometry.Vector3 {
	return c.Position
}

// Depth returns the camera-space distance of point along the view direction
func (c *OrthographicCamera) Depth(point geometry.Vector3) float64 {
	forward, _, _ := basis(c.Position, c.Target, c.Up)
	return point.Sub(c.Position).Dot(forward)
}

// SetAspect rescales the horizontal extent of the frustum keeping its height
func (c *OrthographicCamera) SetAspect(aspect float64) {
	frustumSize := c.Top - c.Bottom
	c.Left = -frustumSize * aspect / 2
	c.Right = frustumSize * aspect / 2
}

// VisibleWidth returns the world width covered at the current zoom
func (c *OrthographicCamera) VisibleWidth() float64 {
	return (c.Right - c.Left) / c.Zoom
}

// VisibleHeight returns the world height covered at the current zoom
func (c *OrthographicCamera) VisibleHeight() float64 {
	return (c.Top - c.Bottom) / c.Zoom
}

// extent returns the frustum centre offset and half sizes after zoom
func (c *OrthographicCamera) extent() (cx, cy, dx, dy float64) {
	cx = (c.Right + c.Left) / 2
	cy = (c.Top + c.Bottom) / 2
	dx = (c.Right - c.Left) / (2 * c.Zoom)
	dy = (c.Top - c.Bottom) / (2 * c.Zoom)
	return cx, cy, dx, dy
}

// Ray returns a ray parallel to the view direction starting in the camera plane
func (c *OrthographicCamera) Ray(ndc NDC) geometry.Ray {
	forward, right, up := basis(c.Position, c.Target, c.Up)
	cx, cy, dx, dy := c.extent()

	origin := c.Position.
		Add(right.Mul(cx + ndc.X*dx)).
		Add(up.Mul(cy + ndc.Y*dy))

	return geometry.Ray{Origin: origin, Direction: forward}
}

// Project transforms a world point into normalized device coordinates
func (c *OrthographicCamera) Project(point geometry.Vector3) geometry.Vector3 {
	forward, right, up := basis(c.Position, c.Target, c.Up)
	cx, cy, dx, dy := c.extent()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	return geometry.NewVector3(
		(x-cx)/dx,
		(y-cy)/dy,
		2*(z-c.Near)/(c.Far-c.Near)-1,
	)
}
