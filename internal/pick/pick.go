// Package pick turns pointer positions into ground points and wall hits.
package pick

import (
	"math"
	"sort"

	"github.com/philipparndt/gofloor/pkg/floorplan"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/viewer"
)

// tieTolerance is the distance below which two hits count as equally near
const tieTolerance = 1e-6

// Target is a pickable wall representation
type Target struct {
	ID  floorplan.WallID
	Box geometry.OrientedBox
}

// Hit is a wall intersected by a pick ray
type Hit struct {
	ID       floorplan.WallID
	Distance float64
	Point    geometry.Vector3
}

// Engine casts pick rays from the active camera
type Engine struct {
	plane        geometry.Plane
	minHalfWidth float64
}

// NewEngine creates a pick engine against the ground plane.
// minHalfWidth is the smallest half extent a target is treated as having, so
// thin or flat walls remain pickable.
func NewEngine(minHalfWidth float64) *Engine {
	return &Engine{
		plane:        geometry.GroundPlane,
		minHalfWidth: minHalfWidth,
	}
}

// SetMinHalfWidth updates the pick tolerance
func (e *Engine) SetMinHalfWidth(minHalfWidth float64) {
	e.minHalfWidth = minHalfWidth
}

// GroundPoint returns where the pointer ray meets the ground plane.
// ok is false when the camera looks edge-on at the plane.
func (e *Engine) GroundPoint(ndc viewer.NDC, cam viewer.Camera) (geometry.Vector3, bool) {
	if cam == nil {
		return geometry.Vector3{}, false
	}
	point, _, ok := cam.Ray(ndc).IntersectPlane(e.plane)
	if !ok {
		return geometry.Vector3{}, false
	}
	// Snap away floating point noise on the height axis
	point.Z = 0
	return point, true
}

// PickWalls returns the candidates under the pointer, nearest first.
// Equally distant hits are ordered by id, so the earlier-created wall wins.
func (e *Engine) PickWalls(ndc viewer.NDC, cam viewer.Camera, candidates []Target) []Hit {
	hits := make([]Hit, 0)
	if cam == nil {
		return hits
	}
	ray := cam.Ray(ndc)

	for _, c := range candidates {
		dist, ok := c.Box.Inflate(e.minHalfWidth).IntersectRay(ray)
		if !ok {
			continue
		}
		hits = append(hits, Hit{ID: c.ID, Distance: dist, Point: ray.At(dist)})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if math.Abs(hits[i].Distance-hits[j].Distance) > tieTolerance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// Nearest returns the first hit, if any
func Nearest(hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
