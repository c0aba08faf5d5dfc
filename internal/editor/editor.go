// Package editor wires the wall store, scene sync, picking, labels and the
// viewport into the operations an embedding window calls.
//
// Everything runs on the caller's thread: pointer events, frame ticks and
// commands must not be issued concurrently.
package editor

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/label"
	"github.com/philipparndt/gofloor/internal/pick"
	"github.com/philipparndt/gofloor/internal/scene"
	"github.com/philipparndt/gofloor/internal/viewport"
	"github.com/philipparndt/gofloor/pkg/floorplan"
	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/viewer"
)

// Editor is the floorplan editing core
type Editor struct {
	cfg        config.Config
	store      *floorplan.Store
	picker     *pick.Engine
	sync       *scene.Sync
	labels     *label.Board
	projector  *label.Projector
	viewport   *viewport.Manager
	controller *Controller
	log        *log.Logger
}

// New creates an editor rendering through backend into a width x height
// viewport. A nil logger discards all output.
func New(backend scene.Backend, cfg config.Config, logger *log.Logger, width, height float64) *Editor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mode := viewer.ModeFor(cfg.View.Initial != "perspective")
	palette, dims := styleFrom(cfg)

	e := &Editor{
		cfg:       cfg,
		store:     floorplan.NewStore(),
		picker:    pick.NewEngine(cfg.Pick.MinHalfWidth),
		labels:    label.NewBoard(),
		projector: label.NewProjector(labelSettings(cfg)),
		viewport:  viewport.New(viewportSettings(cfg), mode, width, height),
		log:       logger,
	}
	e.sync = scene.NewSync(backend, e.labels, palette, dims, mode)
	multi, camera := cfg.Modifiers()
	e.controller = newController(e, multi, camera)
	return e
}

// AddWall creates a wall and its representation
func (e *Editor) AddWall(start, end geometry.Vector3) floorplan.Wall {
	w := e.store.Add(start, end)
	e.sync.UpsertOne(w, e.viewport.Mode())
	e.log.Debug("wall created", "id", w.ID, "length", floorplan.FormatLength(w.Length))
	return w
}

// SetViewMode switches between the plan (is2D) and perspective view and
// rebuilds every representation. A pending drawing is abandoned only when
// the mode actually changes.
func (e *Editor) SetViewMode(is2D bool) {
	mode := viewer.ModeFor(is2D)
	previous := e.viewport.Mode()
	if mode != previous {
		e.controller.CancelDrawing()
	}
	e.viewport.SetMode(mode)
	e.sync.Reconcile(e.store.All(), mode)
	if mode != previous {
		e.log.Info("view mode changed", "from", previous, "to", mode)
	}
}

// ViewMode returns the active view mode
func (e *Editor) ViewMode() viewer.ViewMode {
	return e.viewport.Mode()
}

// ZoomToFit frames all walls in the active camera. With no walls the camera
// is left unchanged and false is returned.
func (e *Editor) ZoomToFit(margin float64) bool {
	extent := e.sync.Extent()
	ok := e.viewport.ZoomToFit(extent, margin)
	if ok {
		e.log.Info("zoomed to fit", "mode", e.viewport.Mode(), "size", extent.Size())
	} else {
		e.log.Debug("zoom to fit skipped, no walls")
	}
	return ok
}

// SelectedWalls returns the selected walls in creation order
func (e *Editor) SelectedWalls() []floorplan.Wall {
	return e.store.Selected()
}

// Walls returns every wall in creation order
func (e *Editor) Walls() []floorplan.Wall {
	return e.store.All()
}

// Wall looks up a single wall
func (e *Editor) Wall(id floorplan.WallID) (floorplan.Wall, bool) {
	return e.store.ByID(id)
}

// DeleteWall removes a wall, its representation and its label
func (e *Editor) DeleteWall(id floorplan.WallID) bool {
	if !e.store.Remove(id) {
		return false
	}
	e.sync.RemoveOne(id)
	e.log.Debug("walls deleted", "ids", []floorplan.WallID{id})
	return true
}

// DeleteSelected removes every selected wall and returns their ids
func (e *Editor) DeleteSelected() []floorplan.WallID {
	ids := e.store.SelectedIDs()
	for _, id := range ids {
		e.store.Remove(id)
		e.sync.RemoveOne(id)
	}
	if len(ids) > 0 {
		e.log.Debug("walls deleted", "ids", ids)
	}
	return ids
}

// CancelDrawing abandons a pending wall start. It reports whether a drawing
// was in progress.
func (e *Editor) CancelDrawing() bool {
	return e.controller.CancelDrawing()
}

// Stats returns the figures shown in the info panel
func (e *Editor) Stats() floorplan.Stats {
	return e.store.Stats()
}

// Frame projects the labels for the current camera. Call once per rendered
// frame.
func (e *Editor) Frame() {
	w, h := e.viewport.Size()
	e.projector.UpdateAll(e.labels, e.store.All(), e.viewport.ActiveCamera(), e.viewport.Mode(), w, h)
}

// Labels returns the labels to draw this frame
func (e *Editor) Labels() []label.Label {
	return e.labels.Visible()
}

// Label returns the label of a wall, visible or not
func (e *Editor) Label(id floorplan.WallID) (label.Label, bool) {
	return e.labels.Get(id)
}

// Representations returns what the backend should draw this frame, the
// preview line last
func (e *Editor) Representations() []scene.Representation {
	reps := e.sync.Representations()
	if preview, ok := e.sync.Preview(); ok {
		reps = append(reps, preview)
	}
	return reps
}

// Resize updates the viewport size in pixels
func (e *Editor) Resize(width, height float64) {
	e.viewport.Resize(width, height)
}

// Viewport exposes the cameras to front-ends
func (e *Editor) Viewport() *viewport.Manager {
	return e.viewport
}

// Controller returns the pointer state machine
func (e *Editor) Controller() *Controller {
	return e.controller
}

// Config returns the active configuration
func (e *Editor) Config() config.Config {
	return e.cfg
}

// ApplyConfig validates cfg, swaps it in and rebuilds every representation.
// On error the previous configuration stays active.
func (e *Editor) ApplyConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	palette, dims := styleFrom(cfg)
	e.sync.SetStyle(palette, dims)
	e.picker.SetMinHalfWidth(cfg.Pick.MinHalfWidth)
	e.projector.SetSettings(labelSettings(cfg))
	e.viewport.ApplySettings(viewportSettings(cfg))
	e.controller.SetModifiers(cfg.Modifiers())
	e.sync.Rebuild(e.store.All(), e.viewport.Mode())
	e.log.Info("configuration applied", "walls", e.store.Len())
	return nil
}

// refreshAppearance recolors every representation from the store flags
func (e *Editor) refreshAppearance() {
	for _, w := range e.store.All() {
		e.sync.ApplyAppearance(w)
	}
}

// styleFrom converts validated config colors and dimensions
func styleFrom(cfg config.Config) (scene.Palette, scene.Dimensions) {
	palette := scene.Palette{
		Default:     mustColor(cfg.Colors.Default),
		Highlighted: mustColor(cfg.Colors.Highlighted),
		Selected:    mustColor(cfg.Colors.Selected),
		Preview:     mustColor(cfg.Colors.Preview),
	}
	dims := scene.Dimensions{
		Thickness: cfg.Walls.Thickness,
		Height:    cfg.Walls.Height,
		PlanDepth: cfg.Walls.PlanDepth,
	}
	return palette, dims
}

// mustColor parses a color that config.Validate already accepted.
// Anything else falls back to opaque black.
func mustColor(hex string) color.RGBA {
	c, err := config.ParseColor(hex)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

func labelSettings(cfg config.Config) label.Settings {
	return label.Settings{
		Height:            cfg.Labels.Height,
		MinScale:          cfg.Labels.MinScale,
		MaxScale:          cfg.Labels.MaxScale,
		ReferenceDistance: cfg.Labels.ReferenceDistance,
		Precision:         cfg.Labels.Precision,
		Unit:              cfg.Labels.Unit,
		TextSize:          cfg.Labels.TextSize,
	}
}

func viewportSettings(cfg config.Config) viewport.Settings {
	return viewport.Settings{
		FrustumSize: cfg.View.FrustumSize,
		FOV:         cfg.View.FOV,
		Near:        cfg.View.Near,
		Far:         cfg.View.Far,
		PlanNear:    cfg.View.PlanNear,
		PlanFar:     cfg.View.PlanFar,
		PlanHeight:  cfg.View.PlanHeight,
	}
}
