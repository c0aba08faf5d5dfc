package pick

import (
	"testing"

	"github.com/philipparndt/gofloor/pkg/floorplan"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planTarget builds the flat pick box of a planar wall representation
func planTarget(w floorplan.Wall) Target {
	return Target{
		ID: w.ID,
		Box: geometry.OrientedBox{
			Center:      w.Midpoint(),
			HalfExtents: geometry.NewVector3(w.Length/2, 0.1, 0.005),
			Angle:       w.Angle,
		},
	}
}

func TestGroundPointUnderPlanCamera(t *testing.T) {
	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)
	engine := NewEngine(0.25)

	point, ok := engine.GroundPoint(viewer.NDC{X: 0.5, Y: -0.5}, cam)
	require.True(t, ok)
	assert.True(t, point.ApproxEqual(geometry.NewVector3(25, -25, 0), 1e-9), "got %v", point)
}

func TestGroundPointEdgeOn(t *testing.T) {
	// Camera sitting in the ground plane looking along it
	cam := viewer.NewPerspectiveCamera(
		geometry.NewVector3(0, -10, 1),
		geometry.NewVector3(0, 0, 1),
		45, 1, 0.1, 100,
	)
	engine := NewEngine(0.25)

	_, ok := engine.GroundPoint(viewer.NDC{X: 0, Y: 0}, cam)
	assert.False(t, ok)
}

func TestPickMidpointUnderPlanCamera(t *testing.T) {
	store := floorplan.NewStore()
	wall := store.Add(geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0))

	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)
	mid := cam.Project(wall.Midpoint())

	engine := NewEngine(0.25)
	hits := engine.PickWalls(viewer.NDC{X: mid.X, Y: mid.Y}, cam, []Target{planTarget(wall)})

	hit, ok := Nearest(hits)
	require.True(t, ok)
	assert.Equal(t, wall.ID, hit.ID)
}

func TestPickEmptySpace(t *testing.T) {
	store := floorplan.NewStore()
	wall := store.Add(geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0))

	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)
	far := cam.Project(geometry.NewVector3(5, 20, 0))

	hits := NewEngine(0.25).PickWalls(viewer.NDC{X: far.X, Y: far.Y}, cam, []Target{planTarget(wall)})
	assert.Empty(t, hits)
}

func TestPickToleranceBand(t *testing.T) {
	store := floorplan.NewStore()
	wall := store.Add(geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0))
	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)

	// 0.2 units beside the centre line: outside the 0.1 half thickness but inside the band
	near := cam.Project(geometry.NewVector3(5, 0.2, 0))
	ndc := viewer.NDC{X: near.X, Y: near.Y}

	assert.Empty(t, NewEngine(0).PickWalls(ndc, cam, []Target{planTarget(wall)}))
	assert.Len(t, NewEngine(0.25).PickWalls(ndc, cam, []Target{planTarget(wall)}), 1)
}

func TestPickOrderingAndTieBreak(t *testing.T) {
	store := floorplan.NewStore()
	first := store.Add(geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0))
	second := store.Add(geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0))

	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)
	mid := cam.Project(first.Midpoint())
	ndc := viewer.NDC{X: mid.X, Y: mid.Y}
	engine := NewEngine(0.25)

	// Overlapping walls at equal distance: the first created wins regardless of candidate order
	hits := engine.PickWalls(ndc, cam, []Target{planTarget(second), planTarget(first)})
	require.Len(t, hits, 2)
	assert.Equal(t, first.ID, hits[0].ID)

	// A taller box is hit earlier along a downward ray
	tall := planTarget(second)
	tall.Box.Center.Z = 1.5
	tall.Box.HalfExtents.Z = 1.5
	hits = engine.PickWalls(ndc, cam, []Target{planTarget(first), tall})
	require.Len(t, hits, 2)
	assert.Equal(t, second.ID, hits[0].ID)
	assert.Less(t, hits[0].Distance, hits[1].Distance)
}
