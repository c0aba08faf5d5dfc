package floorplan

import (
	"fmt"

	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Stats summarises the floorplan for info displays
type Stats struct {
	WallCount      int
	SelectedCount  int
	TotalLength    float64
	SelectedLength float64
}

// Stats computes wall counts and lengths
func (s *Store) Stats() Stats {
	var st Stats
	for _, w := range s.walls {
		st.WallCount++
		st.TotalLength += w.Length
		if w.Selected {
			st.SelectedCount++
			st.SelectedLength += w.Length
		}
	}
	return st
}

// Lines formats the stats for an info panel
func (st Stats) Lines() []string {
	return []string{
		fmt.Sprintf("Walls: %d", st.WallCount),
		fmt.Sprintf("Selected: %d", st.SelectedCount),
		fmt.Sprintf("Total length: %s", FormatLength(st.TotalLength)),
		fmt.Sprintf("Selected length: %s", FormatLength(st.SelectedLength)),
	}
}

// FormatLength renders a length with two decimals
func FormatLength(length float64) string {
	return fmt.Sprintf("%.2f", length)
}

// Bounds returns the axis-aligned box around every wall endpoint
func (s *Store) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, w := range s.walls {
		bbox.Extend(w.Start)
		bbox.Extend(w.End)
	}
	return bbox
}
