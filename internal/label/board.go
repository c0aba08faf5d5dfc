// Package label projects wall length annotations into screen space.
package label

import (
	"sort"

	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/pkg/floorplan"
)

// Label is the screen-space annotation of one wall
type Label struct {
	WallID  floorplan.WallID
	Text    string
	X, Y    float64 // Anchor in pixels, origin top-left
	Scale   float64
	Visible bool
	Bounds  input.Rect // Zero while hidden
}

// Board holds one label per wall. Its lifecycle follows the walls, not their
// representations.
type Board struct {
	labels map[floorplan.WallID]*Label
}

// NewBoard creates an empty label board
func NewBoard() *Board {
	return &Board{labels: make(map[floorplan.WallID]*Label)}
}

// Ensure creates the label of id if it does not exist yet
func (b *Board) Ensure(id floorplan.WallID) {
	if _, ok := b.labels[id]; ok {
		return
	}
	b.labels[id] = &Label{WallID: id, Scale: 1}
}

// Remove deletes the label of id
func (b *Board) Remove(id floorplan.WallID) bool {
	if _, ok := b.labels[id]; !ok {
		return false
	}
	delete(b.labels, id)
	return true
}

// Get returns a copy of the label of id
func (b *Board) Get(id floorplan.WallID) (Label, bool) {
	l, ok := b.labels[id]
	if !ok {
		return Label{}, false
	}
	return *l, true
}

// All returns copies of every label in ascending wall id order
func (b *Board) All() []Label {
	out := make([]Label, 0, len(b.labels))
	for _, l := range b.labels {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WallID < out[j].WallID })
	return out
}

// Visible returns the labels that should be drawn
func (b *Board) Visible() []Label {
	out := make([]Label, 0, len(b.labels))
	for _, l := range b.All() {
		if l.Visible {
			out = append(out, l)
		}
	}
	return out
}

// Len returns the number of labels
func (b *Board) Len() int {
	return len(b.labels)
}

func (b *Board) update(id floorplan.WallID, fn func(l *Label)) {
	b.Ensure(id)
	fn(b.labels[id])
}
