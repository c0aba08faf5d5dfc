package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofloor/internal/viewport"
)

// raylibCamera mirrors the active viewport camera for BeginMode3D
func raylibCamera(vp *viewport.Manager) rl.Camera3D {
	if vp.Mode().Is2D() {
		cam := vp.Plan()
		// Orthographic fovy is the visible world height
		return rl.Camera3D{
			Position:   toVector3(cam.Position),
			Target:     toVector3(cam.Target),
			Up:         toVector3(cam.Up),
			Fovy:       float32(cam.VisibleHeight()),
			Projection: rl.CameraOrthographic,
		}
	}

	cam := vp.Perspective()
	return rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       float32(cam.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}
