package editor

import (
	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/internal/pick"
	"github.com/philipparndt/gofloor/pkg/floorplan"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// State is the mode of the pointer state machine
type State int

const (
	Idle State = iota
	Drawing
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// cameraGesture is a press-release cycle handed to the viewport
type cameraGesture struct {
	active bool
	button input.Button
	orbit  bool
	lastX  float64
	lastY  float64
}

// Controller turns pointer events into wall edits
type Controller struct {
	editor *Editor
	state  State

	// Drawing
	pendingStart geometry.Vector3

	// Dragging
	dragAnchorX float64
	dragAnchorY float64
	dragLast    geometry.Vector3
	dragSet     []floorplan.WallID
	dragMoved   bool

	camera      cameraGesture
	chrome      []input.Rect
	multiSelect input.Modifier
	cameraMod   input.Modifier
}

func newController(e *Editor, multiSelect, cameraMod input.Modifier) *Controller {
	return &Controller{
		editor:      e,
		state:       Idle,
		multiSelect: multiSelect,
		cameraMod:   cameraMod,
	}
}

// State returns the current mode
func (c *Controller) State() State {
	return c.state
}

// SetModifiers replaces the multi-select and camera modifiers
func (c *Controller) SetModifiers(multiSelect, cameraMod input.Modifier) {
	c.multiSelect = multiSelect
	c.cameraMod = cameraMod
}

// SetChrome designates screen regions (toolbars, panels) whose events the
// controller ignores
func (c *Controller) SetChrome(rects ...input.Rect) {
	c.chrome = append([]input.Rect(nil), rects...)
}

// Attach subscribes the controller to src until the subscription is closed
func (c *Controller) Attach(src input.Source) *Subscription {
	return &Subscription{cancel: src.Subscribe(c.Handle)}
}

// DragSet returns the walls moved by the current drag
func (c *Controller) DragSet() []floorplan.WallID {
	return append([]floorplan.WallID(nil), c.dragSet...)
}

// CancelDrawing abandons a pending wall start
func (c *Controller) CancelDrawing() bool {
	if c.state != Drawing {
		return false
	}
	c.editor.sync.HidePreview()
	c.setState(Idle)
	return true
}

// Handle processes a single pointer event
func (c *Controller) Handle(ev input.PointerEvent) {
	// An active camera gesture owns the pointer until its button is released
	if c.camera.active {
		c.handleCamera(ev)
		return
	}

	// Releasing always ends a drag, even over chrome
	if ev.Kind == input.Release {
		c.release(ev)
		return
	}

	if c.overChrome(ev.X, ev.Y) {
		return
	}

	switch ev.Kind {
	case input.Press:
		c.press(ev)
	case input.Move:
		c.move(ev)
	case input.Scroll:
		c.editor.viewport.Zoom(ev.Scroll)
	}
}

func (c *Controller) press(ev input.PointerEvent) {
	if c.state == Dragging {
		return
	}

	// Camera controls: modifier + primary, or the middle button in any mode
	if ev.Button == input.ButtonMiddle || (ev.Button == input.ButtonPrimary && ev.Mods.Has(c.cameraMod)) {
		c.camera = cameraGesture{
			active: true,
			button: ev.Button,
			orbit:  ev.Button == input.ButtonPrimary && !c.editor.viewport.Mode().Is2D(),
			lastX:  ev.X,
			lastY:  ev.Y,
		}
		return
	}

	switch c.state {
	case Drawing:
		if ev.Button == input.ButtonPrimary {
			c.commitDrawing(ev)
		}
	case Idle:
		switch ev.Button {
		case input.ButtonPrimary:
			c.primaryIdle(ev)
		case input.ButtonSecondary:
			c.deleteAt(ev)
		}
	}
}

func (c *Controller) primaryIdle(ev input.PointerEvent) {
	e := c.editor
	multi := ev.Mods.Has(c.multiSelect)

	if hit, ok := c.pickAt(ev); ok {
		if multi {
			e.store.ToggleSelected(hit.ID)
		} else {
			e.store.SelectOnly(hit.ID)
		}
		e.refreshAppearance()
		c.startDrag(ev)
		return
	}

	// Empty space
	if !multi {
		if changed := e.store.ClearTransientStates(true); len(changed) > 0 {
			e.refreshAppearance()
		}
	}
	if ev.Mods != 0 || !e.viewport.Mode().Is2D() {
		return
	}
	point, ok := c.groundAt(ev)
	if !ok {
		return
	}
	c.pendingStart = point
	e.sync.ShowPreview(point, point)
	c.setState(Drawing)
}

func (c *Controller) commitDrawing(ev input.PointerEvent) {
	point, ok := c.groundAt(ev)
	if !ok {
		return
	}
	c.editor.sync.HidePreview()
	c.editor.AddWall(c.pendingStart, point)
	c.setState(Idle)
}

func (c *Controller) startDrag(ev input.PointerEvent) {
	point, ok := c.groundAt(ev)
	if !ok {
		return
	}
	c.dragAnchorX = ev.X
	c.dragAnchorY = ev.Y
	c.dragLast = point
	c.dragSet = c.editor.store.SelectedIDs()
	c.dragMoved = false
	c.setState(Dragging)
}

func (c *Controller) deleteAt(ev input.PointerEvent) {
	hit, ok := c.pickAt(ev)
	if !ok {
		return
	}
	e := c.editor
	if w, ok := e.store.ByID(hit.ID); ok && w.Selected {
		e.DeleteSelected()
		return
	}
	e.DeleteWall(hit.ID)
}

func (c *Controller) move(ev input.PointerEvent) {
	e := c.editor
	switch c.state {
	case Drawing:
		if point, ok := c.groundAt(ev); ok {
			e.sync.ShowPreview(c.pendingStart, point)
		}

	case Dragging:
		point, ok := c.groundAt(ev)
		if !ok {
			return
		}
		delta := point.Sub(c.dragLast)
		if delta.IsZero() {
			return
		}
		mode := e.viewport.Mode()
		for _, id := range c.dragSet {
			// Walls deleted mid-drag are skipped
			if w, ok := e.store.Translate(id, delta); ok {
				e.sync.UpsertOne(w, mode)
			}
		}
		c.dragLast = point
		c.dragMoved = true

	case Idle:
		c.highlightAt(ev)
	}
}

// highlightAt highlights the nearest wall under the pointer, if any
func (c *Controller) highlightAt(ev input.PointerEvent) {
	e := c.editor
	var changed []floorplan.WallID
	if hit, ok := c.pickAt(ev); ok {
		changed = e.store.HighlightOnly(hit.ID)
	} else {
		changed = e.store.ClearTransientStates(false)
	}
	for _, id := range changed {
		if w, ok := e.store.ByID(id); ok {
			e.sync.ApplyAppearance(w)
		}
	}
}

func (c *Controller) release(ev input.PointerEvent) {
	if c.state != Dragging || ev.Button != input.ButtonPrimary {
		return
	}
	e := c.editor
	mode := e.viewport.Mode()
	if !mode.Is2D() {
		e.sync.Reconcile(e.store.All(), mode)
	}
	if c.dragMoved {
		e.log.Debug("drag finished", "walls", len(c.dragSet), "from", []float64{c.dragAnchorX, c.dragAnchorY}, "to", []float64{ev.X, ev.Y})
	}
	c.dragSet = nil
	c.dragMoved = false
	c.setState(Idle)
}

func (c *Controller) handleCamera(ev input.PointerEvent) {
	switch ev.Kind {
	case input.Move:
		dx := ev.X - c.camera.lastX
		dy := ev.Y - c.camera.lastY
		c.camera.lastX = ev.X
		c.camera.lastY = ev.Y
		if c.camera.orbit {
			c.editor.viewport.Orbit(dx, dy)
		} else {
			c.editor.viewport.Pan(dx, dy)
		}
	case input.Release:
		if ev.Button == c.camera.button {
			c.camera = cameraGesture{}
		}
	case input.Scroll:
		c.editor.viewport.Zoom(ev.Scroll)
	}
}

func (c *Controller) pickAt(ev input.PointerEvent) (pick.Hit, bool) {
	e := c.editor
	ndc := e.viewport.NDC(ev.X, ev.Y)
	return pick.Nearest(e.picker.PickWalls(ndc, e.viewport.ActiveCamera(), e.sync.Targets()))
}

func (c *Controller) groundAt(ev input.PointerEvent) (geometry.Vector3, bool) {
	e := c.editor
	return e.picker.GroundPoint(e.viewport.NDC(ev.X, ev.Y), e.viewport.ActiveCamera())
}

func (c *Controller) overChrome(x, y float64) bool {
	for _, r := range c.chrome {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.editor.log.Debug("interaction state", "from", c.state, "to", s)
	c.state = s
}
