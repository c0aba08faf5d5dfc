// Package scene keeps exactly one visual representation per wall in the
// active view.
//
// The representation table is keyed by wall id and is only mutated through
// Sync. Representations are never updated in place: geometry changes dispose
// the old object and create a new one.
package scene

import (
	"image/color"
	"sort"

	"github.com/philipparndt/gofloor/internal/label"
	"github.com/philipparndt/gofloor/internal/pick"
	"github.com/philipparndt/gofloor/pkg/floorplan"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/viewer"
)

// Representation is a backend object standing in for one wall
type Representation interface {
	SetColor(c color.RGBA)
}

// Disposer is implemented by representations that hold backend resources.
// Shapes without resources do not implement it.
type Disposer interface {
	Dispose()
}

// Spec describes the representation to build for a wall
type Spec struct {
	Wall  floorplan.Wall
	Mode  viewer.ViewMode
	Box   geometry.OrientedBox
	Color color.RGBA
}

// Edges returns the outline of the representation as line segments: the
// ground footprint plus the centre line in plan mode, all twelve box edges
// in perspective.
func (s Spec) Edges() [][2]geometry.Vector3 {
	corners := s.Box.Corners()
	edges := make([][2]geometry.Vector3, 0, 12)

	if s.Mode.Is2D() {
		// Corners are ordered x, y, z with z fastest; take the bottom face
		bottom := [4]geometry.Vector3{corners[0], corners[4], corners[6], corners[2]}
		for i := range bottom {
			edges = append(edges, [2]geometry.Vector3{bottom[i], bottom[(i+1)%4]})
		}
		return append(edges, [2]geometry.Vector3{s.Wall.Start, s.Wall.End})
	}

	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				edges = append(edges, [2]geometry.Vector3{corners[i], corners[j]})
			}
		}
	}
	return edges
}

// Backend creates representations for a rendering library
type Backend interface {
	// Create builds the representation for spec.Mode
	Create(spec Spec) Representation
	// CreatePreview builds the rubber band line shown while drawing
	CreatePreview(start, end geometry.Vector3, c color.RGBA) Representation
}

// Palette is the three way appearance policy plus the preview color
type Palette struct {
	Default     color.RGBA
	Highlighted color.RGBA
	Selected    color.RGBA
	Preview     color.RGBA
}

// ColorFor returns the color of a wall. Selected overrides highlighted
// overrides default.
func (p Palette) ColorFor(w floorplan.Wall) color.RGBA {
	switch {
	case w.Selected:
		return p.Selected
	case w.Highlighted:
		return p.Highlighted
	default:
		return p.Default
	}
}

// Dimensions are the representation sizes in world units
type Dimensions struct {
	Thickness float64
	Height    float64
	PlanDepth float64
}

// BoxFor returns the solid a wall occupies in the given view mode.
// Planar walls are a thin slab resting on the ground, perspective walls are
// extruded to the full height.
func (d Dimensions) BoxFor(w floorplan.Wall, mode viewer.ViewMode) geometry.OrientedBox {
	depth := d.Height
	if mode.Is2D() {
		depth = d.PlanDepth
	}
	center := w.Midpoint()
	center.Z = depth / 2
	return geometry.OrientedBox{
		Center:      center,
		HalfExtents: geometry.NewVector3(w.Length/2, d.Thickness/2, depth/2),
		Angle:       w.Angle,
	}
}

type entry struct {
	rep   Representation
	wall  floorplan.Wall
	box   geometry.OrientedBox
	color color.RGBA
}

// Sync reconciles walls into backend representations
type Sync struct {
	backend Backend
	labels  *label.Board
	palette Palette
	dims    Dimensions
	mode    viewer.ViewMode
	entries map[floorplan.WallID]*entry
	preview Representation
}

// NewSync creates an empty representation table. labels may be nil when the
// caller does not show annotations.
func NewSync(backend Backend, labels *label.Board, palette Palette, dims Dimensions, mode viewer.ViewMode) *Sync {
	return &Sync{
		backend: backend,
		labels:  labels,
		palette: palette,
		dims:    dims,
		mode:    mode,
		entries: make(map[floorplan.WallID]*entry),
	}
}

// Mode returns the view mode the current representations are shaped for
func (s *Sync) Mode() viewer.ViewMode {
	return s.mode
}

// Reconcile makes the table hold exactly one representation per wall,
// shaped for mode. A mode change disposes and recreates everything.
func (s *Sync) Reconcile(walls []floorplan.Wall, mode viewer.ViewMode) {
	if mode != s.mode {
		s.disposeAll()
		s.mode = mode
	}

	keep := make(map[floorplan.WallID]bool, len(walls))
	for _, w := range walls {
		keep[w.ID] = true
		e, ok := s.entries[w.ID]
		if !ok || e.wall.Start != w.Start || e.wall.End != w.End {
			s.UpsertOne(w, mode)
			continue
		}
		s.ApplyAppearance(w)
	}

	for _, id := range s.IDs() {
		if !keep[id] {
			s.RemoveOne(id)
		}
	}
}

// Rebuild disposes every representation and reconciles from scratch.
// Used after palette or dimension changes.
func (s *Sync) Rebuild(walls []floorplan.Wall, mode viewer.ViewMode) {
	s.disposeAll()
	s.mode = mode
	s.Reconcile(walls, mode)
}

// UpsertOne replaces the representation of a single wall
func (s *Sync) UpsertOne(w floorplan.Wall, mode viewer.ViewMode) {
	if mode != s.mode {
		// Mixed shapes are never allowed in the table
		return
	}
	if old, ok := s.entries[w.ID]; ok {
		dispose(old.rep)
	}

	spec := Spec{
		Wall:  w,
		Mode:  mode,
		Box:   s.dims.BoxFor(w, mode),
		Color: s.palette.ColorFor(w),
	}
	s.entries[w.ID] = &entry{
		rep:   s.backend.Create(spec),
		wall:  w,
		box:   spec.Box,
		color: spec.Color,
	}
	if s.labels != nil {
		s.labels.Ensure(w.ID)
	}
}

// RemoveOne disposes the representation and the label of a wall
func (s *Sync) RemoveOne(id floorplan.WallID) {
	if e, ok := s.entries[id]; ok {
		dispose(e.rep)
		delete(s.entries, id)
	}
	if s.labels != nil {
		s.labels.Remove(id)
	}
}

// ApplyAppearance recolors the representation of w from its flags.
// It reports whether the visible color changed.
func (s *Sync) ApplyAppearance(w floorplan.Wall) bool {
	e, ok := s.entries[w.ID]
	if !ok {
		return false
	}
	e.wall.Selected = w.Selected
	e.wall.Highlighted = w.Highlighted

	c := s.palette.ColorFor(w)
	if c == e.color {
		return false
	}
	e.rep.SetColor(c)
	e.color = c
	return true
}

// SetStyle swaps the palette and dimensions. Callers rebuild afterwards.
func (s *Sync) SetStyle(palette Palette, dims Dimensions) {
	s.palette = palette
	s.dims = dims
}

// ShowPreview replaces the preview line
func (s *Sync) ShowPreview(start, end geometry.Vector3) {
	s.HidePreview()
	s.preview = s.backend.CreatePreview(start, end, s.palette.Preview)
}

// HidePreview disposes the preview line, if any
func (s *Sync) HidePreview() {
	if s.preview == nil {
		return
	}
	dispose(s.preview)
	s.preview = nil
}

// Preview returns the preview line, if any
func (s *Sync) Preview() (Representation, bool) {
	return s.preview, s.preview != nil
}

// PreviewVisible reports whether a preview line exists
func (s *Sync) PreviewVisible() bool {
	return s.preview != nil
}

// Has reports whether id has a representation
func (s *Sync) Has(id floorplan.WallID) bool {
	_, ok := s.entries[id]
	return ok
}

// Len returns the size of the representation table
func (s *Sync) Len() int {
	return len(s.entries)
}

// IDs returns the ids in the table in ascending order
func (s *Sync) IDs() []floorplan.WallID {
	ids := make([]floorplan.WallID, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Color returns the color currently applied to the representation of id
func (s *Sync) Color(id floorplan.WallID) (color.RGBA, bool) {
	e, ok := s.entries[id]
	if !ok {
		return color.RGBA{}, false
	}
	return e.color, true
}

// Representation returns the backend object of id
func (s *Sync) Representation(id floorplan.WallID) (Representation, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	return e.rep, true
}

// Representations returns the live representations in ascending id order
func (s *Sync) Representations() []Representation {
	reps := make([]Representation, 0, len(s.entries))
	for _, id := range s.IDs() {
		reps = append(reps, s.entries[id].rep)
	}
	return reps
}

// Targets returns the pickable boxes in ascending id order
func (s *Sync) Targets() []pick.Target {
	targets := make([]pick.Target, 0, len(s.entries))
	for _, id := range s.IDs() {
		targets = append(targets, pick.Target{ID: id, Box: s.entries[id].box})
	}
	return targets
}

// Extent returns the axis-aligned bounds of all walls in the active view's
// space: segment endpoints in plan mode, extruded box corners in perspective.
func (s *Sync) Extent() geometry.BoundingBox {
	bounds := geometry.NewBoundingBox()
	for _, e := range s.entries {
		if s.mode.Is2D() {
			bounds.Extend(e.wall.Start)
			bounds.Extend(e.wall.End)
			continue
		}
		for _, corner := range e.box.Corners() {
			bounds.Extend(corner)
		}
	}
	return bounds
}

// Clear disposes everything, including the preview
func (s *Sync) Clear() {
	s.disposeAll()
	s.HidePreview()
}

func (s *Sync) disposeAll() {
	for _, id := range s.IDs() {
		dispose(s.entries[id].rep)
	}
	s.entries = make(map[floorplan.WallID]*entry)
}

// dispose releases backend resources when the representation holds any
func dispose(rep Representation) {
	if d, ok := rep.(Disposer); ok {
		d.Dispose()
	}
}
