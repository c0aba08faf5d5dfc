package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gofloor/internal/editor"
	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/viewer"
)

var labelBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 200}

// FloorCanvas renders the editor by projecting wall outlines to canvas lines
type FloorCanvas struct {
	widget.BaseWidget
	editor     *editor.Editor
	events     *input.Dispatcher
	background *canvas.Rectangle
	lines      []*canvas.Line
	labels     []fyne.CanvasObject
	mods       input.Modifier
	width      float64
	height     float64
	onChange   func()
	bgPlan     color.Color
	bgPersp    color.Color
	labelColor color.Color
}

// NewFloorCanvas creates the canvas widget. onChange runs after every
// handled pointer event so panels can refresh.
func NewFloorCanvas(ed *editor.Editor, events *input.Dispatcher, onChange func()) *FloorCanvas {
	c := &FloorCanvas{
		editor:     ed,
		events:     events,
		background: canvas.NewRectangle(color.White),
		onChange:   onChange,
	}
	c.applyStyle()
	c.ExtendBaseWidget(c)
	return c
}

// applyStyle reads the colors from the editor config
func (c *FloorCanvas) applyStyle() {
	cfg := c.editor.Config()
	c.bgPlan = parseColor(cfg.Colors.BackgroundPlan)
	c.bgPersp = parseColor(cfg.Colors.BackgroundPerspective)
	c.labelColor = parseColor(cfg.Colors.Label)
}

// CreateRenderer creates the renderer for the widget
func (c *FloorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &floorCanvasRenderer{canvas: c}
}

// Render updates the projected scene for a width x height area
func (c *FloorCanvas) Render(width, height float64) {
	if width != c.width || height != c.height {
		c.width = width
		c.height = height
		c.editor.Resize(width, height)
	}
	c.editor.Frame()

	if c.editor.ViewMode().Is2D() {
		c.background.FillColor = c.bgPlan
	} else {
		c.background.FillColor = c.bgPersp
	}
	c.background.Resize(fyne.NewSize(float32(width), float32(height)))

	cam := c.editor.Viewport().ActiveCamera()
	is2D := c.editor.ViewMode().Is2D()

	c.lines = make([]*canvas.Line, 0)
	for _, rep := range c.editor.Representations() {
		w, ok := rep.(*wireframe)
		if !ok {
			continue
		}
		for _, edge := range w.edges {
			x1, y1, ok1 := c.project(cam, edge[0], is2D)
			x2, y2, ok2 := c.project(cam, edge[1], is2D)
			if !ok1 || !ok2 {
				continue
			}

			line := canvas.NewLine(w.color)
			line.StrokeWidth = w.width
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			c.lines = append(c.lines, line)
		}
	}

	c.labels = make([]fyne.CanvasObject, 0)
	for _, l := range c.editor.Labels() {
		b := l.Bounds
		bg := canvas.NewRectangle(labelBackground)
		bg.Move(fyne.NewPos(float32(b.X)-3, float32(b.Y)-1))
		bg.Resize(fyne.NewSize(float32(b.W)+6, float32(b.H)+2))

		text := canvas.NewText(l.Text, c.labelColor)
		text.Alignment = fyne.TextAlignCenter
		text.TextSize = float32(b.H)
		text.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
		text.Resize(fyne.NewSize(float32(b.W), float32(b.H)))
		c.labels = append(c.labels, bg, text)
	}

	c.Refresh()
}

// project maps a world point to widget pixels. Points behind a perspective
// camera are rejected.
func (c *FloorCanvas) project(cam viewer.Camera, p geometry.Vector3, is2D bool) (float64, float64, bool) {
	ndc := cam.Project(p)
	if !is2D && cam.Depth(p) <= 0 {
		return 0, 0, false
	}
	x, y := viewer.NDCToScreen(ndc.X, ndc.Y, c.width, c.height)
	return x, y, true
}

func (c *FloorCanvas) emit(ev input.PointerEvent) {
	c.events.Emit(ev)
	c.Render(c.width, c.height)
	if c.onChange != nil {
		c.onChange()
	}
}

// MouseDown implements desktop.Mouseable
func (c *FloorCanvas) MouseDown(ev *desktop.MouseEvent) {
	c.mods = toModifier(ev.Modifier)
	c.emit(input.PointerEvent{
		Kind:   input.Press,
		X:      float64(ev.Position.X),
		Y:      float64(ev.Position.Y),
		Button: toButton(ev.Button),
		Mods:   c.mods,
	})
}

// MouseUp implements desktop.Mouseable
func (c *FloorCanvas) MouseUp(ev *desktop.MouseEvent) {
	c.mods = toModifier(ev.Modifier)
	c.emit(input.PointerEvent{
		Kind:   input.Release,
		X:      float64(ev.Position.X),
		Y:      float64(ev.Position.Y),
		Button: toButton(ev.Button),
		Mods:   c.mods,
	})
}

// MouseIn implements desktop.Hoverable
func (c *FloorCanvas) MouseIn(ev *desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable
func (c *FloorCanvas) MouseMoved(ev *desktop.MouseEvent) {
	c.mods = toModifier(ev.Modifier)
	c.emit(input.PointerEvent{Kind: input.Move, X: float64(ev.Position.X), Y: float64(ev.Position.Y), Mods: c.mods})
}

// MouseOut implements desktop.Hoverable
func (c *FloorCanvas) MouseOut() {}

// Dragged reports pointer motion while a button is held
func (c *FloorCanvas) Dragged(ev *fyne.DragEvent) {
	c.emit(input.PointerEvent{Kind: input.Move, X: float64(ev.Position.X), Y: float64(ev.Position.Y), Mods: c.mods})
}

// DragEnd is handled by MouseUp
func (c *FloorCanvas) DragEnd() {}

// Scrolled handles scroll events for zooming
func (c *FloorCanvas) Scrolled(ev *fyne.ScrollEvent) {
	c.emit(input.PointerEvent{
		Kind:   input.Scroll,
		X:      float64(ev.Position.X),
		Y:      float64(ev.Position.Y),
		Mods:   c.mods,
		Scroll: float64(ev.Scrolled.DY) / 10,
	})
}

func toButton(b desktop.MouseButton) input.Button {
	switch {
	case b&desktop.MouseButtonPrimary != 0:
		return input.ButtonPrimary
	case b&desktop.MouseButtonSecondary != 0:
		return input.ButtonSecondary
	case b&desktop.MouseButtonTertiary != 0:
		return input.ButtonMiddle
	default:
		return input.ButtonNone
	}
}

func toModifier(m fyne.KeyModifier) input.Modifier {
	var mods input.Modifier
	if m&fyne.KeyModifierShift != 0 {
		mods |= input.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		mods |= input.ModCtrl
	}
	if m&fyne.KeyModifierAlt != 0 {
		mods |= input.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		mods |= input.ModSuper
	}
	return mods
}

// floorCanvasRenderer implements fyne.WidgetRenderer
type floorCanvasRenderer struct {
	canvas  *FloorCanvas
	objects []fyne.CanvasObject
}

func (r *floorCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.Render(float64(size.Width), float64(size.Height))
}

func (r *floorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *floorCanvasRenderer) Refresh() {
	r.objects = make([]fyne.CanvasObject, 0, len(r.canvas.lines)+len(r.canvas.labels)+1)
	r.objects = append(r.objects, r.canvas.background)
	for _, line := range r.canvas.lines {
		r.objects = append(r.objects, line)
	}
	r.objects = append(r.objects, r.canvas.labels...)

	canvas.Refresh(r.canvas)
}

func (r *floorCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *floorCanvasRenderer) Destroy() {}
