package label

import (
	"testing"

	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/pkg/floorplan"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		Height:            3.2,
		MinScale:          0.5,
		MaxScale:          1.5,
		ReferenceDistance: 40,
		Precision:         2,
		Unit:              "m",
		TextSize:          13,
	}
}

func wallsOf(segments ...[2]geometry.Vector3) []floorplan.Wall {
	store := floorplan.NewStore()
	for _, s := range segments {
		store.Add(s[0], s[1])
	}
	return store.All()
}

func TestFormat(t *testing.T) {
	p := NewProjector(testSettings())
	assert.Equal(t, "10.00m", p.Format(10))
	assert.Equal(t, "2.24m", p.Format(2.236))
}

func TestScaleIsBounded(t *testing.T) {
	p := NewProjector(testSettings())

	assert.InDelta(t, 1.0, p.Scale(40), 1e-9)
	assert.InDelta(t, 0.8, p.Scale(50), 1e-9)
	assert.Equal(t, 1.5, p.Scale(1), "near labels stop growing")
	assert.Equal(t, 0.5, p.Scale(1000), "far labels stay legible")
	assert.Equal(t, 1.5, p.Scale(0))
}

func TestUpdateAllPlan(t *testing.T) {
	board := NewBoard()
	p := NewProjector(testSettings())
	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)
	walls := wallsOf([2]geometry.Vector3{geometry.NewVector3(-10, 0, 0), geometry.NewVector3(10, 0, 0)})

	p.UpdateAll(board, walls, cam, viewer.ModePlan, 800, 800)

	l, ok := board.Get(walls[0].ID)
	require.True(t, ok)
	assert.True(t, l.Visible)
	assert.Equal(t, "20.00m", l.Text)
	assert.InDelta(t, 400, l.X, 1e-6)
	assert.InDelta(t, 400, l.Y, 1e-6)
	assert.Equal(t, 1.0, l.Scale)
	assert.True(t, l.Bounds.Contains(400, 400))
	assert.Greater(t, l.Bounds.W, 0.0)
}

func TestUpdateAllFollowsCamera(t *testing.T) {
	board := NewBoard()
	p := NewProjector(testSettings())
	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)
	walls := wallsOf([2]geometry.Vector3{geometry.NewVector3(0, 0, 0), geometry.NewVector3(10, 0, 0)})

	p.UpdateAll(board, walls, cam, viewer.ModePlan, 800, 800)
	before, _ := board.Get(walls[0].ID)

	cam.Position.X += 10
	cam.Target.X += 10
	p.UpdateAll(board, walls, cam, viewer.ModePlan, 800, 800)
	after, _ := board.Get(walls[0].ID)

	assert.InDelta(t, before.X-80, after.X, 1e-6, "panning right moves labels left")
}

func TestUpdateAllHidesLabelsBehindCamera(t *testing.T) {
	board := NewBoard()
	p := NewProjector(testSettings())
	cam := viewer.NewPerspectiveCamera(geometry.NewVector3(0, -20, 5), geometry.NewVector3(0, 0, 0), 35, 1, 0.1, 500)
	walls := wallsOf(
		[2]geometry.Vector3{geometry.NewVector3(-1, 10, 0), geometry.NewVector3(1, 10, 0)},
		[2]geometry.Vector3{geometry.NewVector3(-1, -40, 0), geometry.NewVector3(1, -40, 0)},
	)

	p.UpdateAll(board, walls, cam, viewer.ModePerspective, 800, 600)

	front, _ := board.Get(walls[0].ID)
	behind, _ := board.Get(walls[1].ID)

	assert.True(t, front.Visible)
	assert.GreaterOrEqual(t, front.Scale, 0.5)
	assert.LessOrEqual(t, front.Scale, 1.5)

	assert.False(t, behind.Visible)
	assert.Equal(t, input.Rect{}, behind.Bounds, "hidden labels take no space")
	assert.Len(t, board.Visible(), 1)
}

func TestBoundsFollowTextSize(t *testing.T) {
	walls := wallsOf([2]geometry.Vector3{geometry.NewVector3(-5, 0, 0), geometry.NewVector3(5, 0, 0)})
	cam := viewer.NewPlanCamera(100, 1, 5, 1, 100)

	settings := testSettings()
	board := NewBoard()
	NewProjector(settings).UpdateAll(board, walls, cam, viewer.ModePlan, 800, 800)
	l, _ := board.Get(walls[0].ID)

	// "10.00m" is six 7px glyphs of the 13px face
	assert.Equal(t, input.Rect{X: 379, Y: 393.5, W: 42, H: 13}, l.Bounds)

	settings.TextSize = 26
	board = NewBoard()
	NewProjector(settings).UpdateAll(board, walls, cam, viewer.ModePlan, 800, 800)
	l, _ = board.Get(walls[0].ID)

	assert.Equal(t, input.Rect{X: 358, Y: 387, W: 84, H: 26}, l.Bounds)
}

func TestUpdateAllKeepsLabelsBeyondFarPlane(t *testing.T) {
	board := NewBoard()
	p := NewProjector(testSettings())
	cam := viewer.NewPerspectiveCamera(geometry.NewVector3(0, -20, 5), geometry.NewVector3(0, 0, 0), 35, 1, 0.1, 50)
	walls := wallsOf([2]geometry.Vector3{geometry.NewVector3(-1, 100, 0), geometry.NewVector3(1, 100, 0)})
	require.Greater(t, cam.Project(walls[0].Midpoint()).Z, 1.0)

	p.UpdateAll(board, walls, cam, viewer.ModePerspective, 800, 600)

	l, _ := board.Get(walls[0].ID)
	assert.True(t, l.Visible)
	assert.Greater(t, l.Bounds.W, 0.0)
}

func TestUpdateAllWithoutViewport(t *testing.T) {
	board := NewBoard()
	p := NewProjector(testSettings())
	walls := wallsOf([2]geometry.Vector3{geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0)})

	p.UpdateAll(board, walls, nil, viewer.ModePlan, 800, 600)

	l, ok := board.Get(walls[0].ID)
	require.True(t, ok)
	assert.False(t, l.Visible)
}

func TestBoardLifecycle(t *testing.T) {
	board := NewBoard()
	board.Ensure(2)
	board.Ensure(1)
	board.Ensure(2)

	require.Equal(t, 2, board.Len())
	all := board.All()
	assert.Equal(t, floorplan.WallID(1), all[0].WallID)
	assert.Equal(t, floorplan.WallID(2), all[1].WallID)

	assert.True(t, board.Remove(1))
	assert.False(t, board.Remove(1))
	_, ok := board.Get(1)
	assert.False(t, ok)
}
