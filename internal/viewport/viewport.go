// Package viewport owns the plan and perspective cameras and the active
// view mode.
package viewport

import (
	"math"

	"github.com/philipparndt/gofloor/pkg/geometry"
	"github.com/philipparndt/gofloor/pkg/viewer"
)

const (
	minElevation = 0.05
	maxElevation = math.Pi/2 - 0.05
	minDistance  = 1.0
	minZoom      = 0.01
	maxZoom      = 100.0
	zoomStep     = 1.1
	orbitSpeed   = 0.005
)

// Settings are the camera parameters
type Settings struct {
	FrustumSize float64
	FOV         float64 // Degrees
	Near        float64
	Far         float64
	PlanNear    float64
	PlanFar     float64
	PlanHeight  float64
}

// Manager holds both cameras. Only the camera of the active mode is
// returned to pickers and label projection.
type Manager struct {
	settings    Settings
	plan        *viewer.OrthographicCamera
	perspective *viewer.PerspectiveCamera
	mode        viewer.ViewMode
	width       float64
	height      float64

	// Orbit state of the perspective camera around its target
	azimuth   float64
	elevation float64
	distance  float64
}

// New creates a manager for a width x height viewport. The perspective
// camera starts at (50,50,50) looking at the origin.
func New(settings Settings, mode viewer.ViewMode, width, height float64) *Manager {
	m := &Manager{
		settings: settings,
		mode:     mode,
		width:    width,
		height:   height,
	}
	aspect := m.Aspect()
	m.plan = viewer.NewPlanCamera(settings.FrustumSize, aspect, settings.PlanHeight, settings.PlanNear, settings.PlanFar)
	m.perspective = viewer.NewPerspectiveCamera(
		geometry.NewVector3(50, 50, 50),
		geometry.NewVector3(0, 0, 0),
		settings.FOV, aspect, settings.Near, settings.Far,
	)
	m.syncOrbit()
	return m
}

// Mode returns the active view mode
func (m *Manager) Mode() viewer.ViewMode {
	return m.mode
}

// SetMode switches the active camera
func (m *Manager) SetMode(mode viewer.ViewMode) {
	m.mode = mode
}

// ActiveCamera returns the camera of the active mode
func (m *Manager) ActiveCamera() viewer.Camera {
	if m.mode.Is2D() {
		return m.plan
	}
	return m.perspective
}

// Plan returns the orthographic camera
func (m *Manager) Plan() *viewer.OrthographicCamera {
	return m.plan
}

// Perspective returns the perspective camera
func (m *Manager) Perspective() *viewer.PerspectiveCamera {
	return m.perspective
}

// Size returns the viewport size in pixels
func (m *Manager) Size() (float64, float64) {
	return m.width, m.height
}

// Aspect returns width / height, or 1 for a degenerate viewport
func (m *Manager) Aspect() float64 {
	if m.width <= 0 || m.height <= 0 {
		return 1
	}
	return m.width / m.height
}

// Resize updates both cameras for a new viewport. Non-positive sizes are
// ignored (minimized windows report zero).
func (m *Manager) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	m.plan.Top = m.settings.FrustumSize / 2
	m.plan.Bottom = -m.settings.FrustumSize / 2
	m.plan.SetAspect(m.Aspect())
	m.perspective.SetAspect(m.Aspect())
}

// ApplySettings swaps camera parameters keeping positions and zoom
func (m *Manager) ApplySettings(settings Settings) {
	m.settings = settings
	m.plan.Near = settings.PlanNear
	m.plan.Far = settings.PlanFar
	m.plan.Position.Z = m.plan.Target.Z + settings.PlanHeight
	m.perspective.FOV = settings.FOV * math.Pi / 180
	m.perspective.Near = settings.Near
	m.perspective.Far = settings.Far
	m.Resize(m.width, m.height)
}

// NDC converts a pixel position to normalized device coordinates
func (m *Manager) NDC(x, y float64) viewer.NDC {
	return viewer.ScreenToNDC(x, y, m.width, m.height)
}

// Pan moves the active camera by a pointer delta in pixels so the ground
// follows the pointer.
func (m *Manager) Pan(dx, dy float64) {
	if m.height <= 0 {
		return
	}
	if m.mode.Is2D() {
		unit := m.plan.VisibleHeight() / m.height
		shift := geometry.NewVector3(-dx*unit, dy*unit, 0)
		m.plan.Position = m.plan.Position.Add(shift)
		m.plan.Target = m.plan.Target.Add(shift)
		return
	}

	cam := m.perspective
	forward := cam.Target.Sub(cam.Position).Normalize()
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward).Normalize()

	// Pan speed based on distance from target
	panSpeed := m.distance * 0.001
	shift := right.Mul(-dx * panSpeed).Add(up.Mul(dy * panSpeed))
	cam.Target = cam.Target.Add(shift)
	m.updatePerspective()
}

// Orbit rotates the perspective camera around its target. Plan mode does
// not rotate.
func (m *Manager) Orbit(dx, dy float64) {
	if m.mode.Is2D() {
		return
	}
	m.azimuth -= dx * orbitSpeed
	m.elevation = clamp(m.elevation+dy*orbitSpeed, minElevation, maxElevation)
	m.updatePerspective()
}

// Zoom applies wheel steps to the active camera. Positive steps zoom in.
func (m *Manager) Zoom(steps float64) {
	factor := math.Pow(zoomStep, steps)
	if m.mode.Is2D() {
		m.plan.Zoom = clamp(m.plan.Zoom*factor, minZoom, maxZoom)
		return
	}
	m.distance = clamp(m.distance/factor, minDistance, m.settings.Far)
	m.updatePerspective()
}

// ZoomToFit frames bounds in the active camera leaving margin (e.g. 1.2
// for 20% room). It returns false and leaves the camera untouched when
// bounds is empty.
func (m *Manager) ZoomToFit(bounds geometry.BoundingBox, margin float64) bool {
	if bounds.IsEmpty() {
		return false
	}
	if margin <= 0 {
		margin = 1
	}
	center := bounds.Center()
	size := bounds.Size()

	if m.mode.Is2D() {
		offset := m.plan.Position.Sub(m.plan.Target)
		m.plan.Target = geometry.NewVector3(center.X, center.Y, 0)
		m.plan.Position = m.plan.Target.Add(offset)

		frustumW := m.plan.Right - m.plan.Left
		frustumH := m.plan.Top - m.plan.Bottom
		zoom := math.Inf(1)
		if size.X > geometry.Epsilon {
			zoom = math.Min(zoom, frustumW/(size.X*margin))
		}
		if size.Y > geometry.Epsilon {
			zoom = math.Min(zoom, frustumH/(size.Y*margin))
		}
		if !math.IsInf(zoom, 1) {
			m.plan.Zoom = clamp(zoom, minZoom, maxZoom)
		}
		return true
	}

	radius := bounds.MaxDimension()
	if radius < geometry.Epsilon {
		radius = minDistance
	}
	m.perspective.Target = center
	m.distance = math.Max(minDistance, radius/math.Sin(m.perspective.FOV/2)*margin)
	m.updatePerspective()
	return true
}

// syncOrbit derives the orbit angles from the perspective camera position
func (m *Manager) syncOrbit() {
	offset := m.perspective.Position.Sub(m.perspective.Target)
	m.distance = offset.Length()
	if m.distance < geometry.Epsilon {
		m.distance = minDistance
	}
	m.azimuth = math.Atan2(offset.Y, offset.X)
	m.elevation = clamp(math.Asin(offset.Z/m.distance), minElevation, maxElevation)
}

// updatePerspective positions the perspective camera from the orbit angles
func (m *Manager) updatePerspective() {
	x := m.distance * math.Cos(m.elevation) * math.Cos(m.azimuth)
	y := m.distance * math.Cos(m.elevation) * math.Sin(m.azimuth)
	z := m.distance * math.Sin(m.elevation)
	m.perspective.Position = m.perspective.Target.Add(geometry.NewVector3(x, y, z))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
