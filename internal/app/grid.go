package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridSize    = 100
	gridSpacing = 1
)

// drawGrid renders a ground grid on the XY plane. rl.DrawGrid lies in XZ,
// so the lines are drawn by hand.
func drawGrid(perspective bool) {
	half := float32(gridSize) / 2
	minor := rl.NewColor(200, 200, 200, 255)
	major := rl.NewColor(150, 150, 150, 255)
	if perspective {
		minor = rl.NewColor(60, 60, 60, 255)
		major = rl.NewColor(90, 90, 90, 255)
	}

	for i := -half; i <= half; i += gridSpacing {
		c := minor
		if int(i)%10 == 0 {
			c = major
		}
		rl.DrawLine3D(rl.NewVector3(i, -half, 0), rl.NewVector3(i, half, 0), c)
		rl.DrawLine3D(rl.NewVector3(-half, i, 0), rl.NewVector3(half, i, 0), c)
	}
}

// drawAxes draws the X (red), Y (green) and Z (blue) axes at the origin
func drawAxes(length float32) {
	origin := rl.NewVector3(0, 0, 0.01)
	rl.DrawLine3D(origin, rl.NewVector3(length, 0, 0.01), rl.Red)
	rl.DrawLine3D(origin, rl.NewVector3(0, length, 0.01), rl.Green)
	rl.DrawLine3D(origin, rl.NewVector3(0, 0, length), rl.Blue)
}
