// Package floorplan holds the canonical wall collection of a floorplan.
//
// The Store is the only writer of wall state. Everything it hands out is a
// copy, so renderers, pickers and the interaction controller can read walls
// freely but must go through Store operations to change them.
package floorplan

import (
	"fmt"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// WallID identifies a wall for its whole lifetime. IDs are never reused.
type WallID uint64

func (id WallID) String() string {
	return fmt.Sprintf("wall_%d", uint64(id))
}

// Wall is a straight wall segment on the ground plane
type Wall struct {
	ID          WallID
	Start       geometry.Vector3
	End         geometry.Vector3
	Angle       float64 // atan2 of the directed segment Start->End
	Length      float64
	Selected    bool
	Highlighted bool // never true while Selected is true
}

// Midpoint returns the centre of the wall segment
func (w Wall) Midpoint() geometry.Vector3 {
	return w.Start.Midpoint(w.End)
}

// derive recomputes Angle and Length from the endpoints
func (w *Wall) derive() {
	d := w.End.Sub(w.Start)
	w.Length = d.GroundLength()
	w.Angle = d.Heading()
}

// flatten drops the height component; walls are authored on the ground plane
func flatten(p geometry.Vector3) geometry.Vector3 {
	return geometry.Ground(p.X, p.Y)
}
