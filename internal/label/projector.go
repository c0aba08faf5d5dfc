package label

import (
	"fmt"
	"math"

	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/pkg/floorplan"
	"github.com/philipparndt/gofloor/pkg/viewer"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Settings controls label text and perspective scaling
type Settings struct {
	Height            float64 // Anchor height above the ground in perspective mode
	MinScale          float64
	MaxScale          float64
	ReferenceDistance float64 // Camera distance at which the scale is 1
	Precision         int
	Unit              string
	TextSize          float64 // Pixel height of the text box at scale 1
}

// Projector places labels for the active camera once per frame
type Projector struct {
	settings Settings
	face     font.Face
}

// NewProjector creates a projector measuring text with the basic 7x13 face.
// Measurements are scaled to Settings.TextSize.
func NewProjector(settings Settings) *Projector {
	return &Projector{
		settings: settings,
		face:     basicfont.Face7x13,
	}
}

// SetSettings replaces the label settings
func (p *Projector) SetSettings(settings Settings) {
	p.settings = settings
}

// Format renders a length the way labels show it, e.g. "10.00m"
func (p *Projector) Format(length float64) string {
	return fmt.Sprintf("%.*f%s", p.settings.Precision, length, p.settings.Unit)
}

// Scale returns the perspective label scale for a camera distance
func (p *Projector) Scale(distance float64) float64 {
	if distance <= 0 {
		return p.settings.MaxScale
	}
	scale := p.settings.ReferenceDistance / distance
	return math.Max(p.settings.MinScale, math.Min(p.settings.MaxScale, scale))
}

// UpdateAll projects the midpoint of every wall through cam into a
// width x height viewport. Labels behind a perspective camera are hidden;
// labels beyond the far plane stay visible.
func (p *Projector) UpdateAll(board *Board, walls []floorplan.Wall, cam viewer.Camera, mode viewer.ViewMode, width, height float64) {
	for _, w := range walls {
		text := p.Format(w.Length)
		anchor := w.Midpoint()
		if !mode.Is2D() {
			anchor.Z = p.settings.Height
		}

		board.update(w.ID, func(l *Label) {
			l.Text = text
			if cam == nil || width <= 0 || height <= 0 {
				hide(l)
				return
			}

			ndc := cam.Project(anchor)
			if !finite(ndc.X) || !finite(ndc.Y) || (!mode.Is2D() && cam.Depth(anchor) <= 0) {
				hide(l)
				return
			}

			l.X, l.Y = viewer.NDCToScreen(ndc.X, ndc.Y, width, height)
			l.Scale = 1
			if !mode.Is2D() {
				l.Scale = p.Scale(cam.Eye().Distance(anchor))
			}
			l.Visible = true
			l.Bounds = p.bounds(text, l.X, l.Y, l.Scale)
		})
	}
}

// bounds returns the text box centred on the anchor. Front-ends draw the
// label inside it, so the face metrics are stretched to the text size.
func (p *Projector) bounds(text string, x, y, scale float64) input.Rect {
	faceHeight := float64(p.face.Metrics().Height.Ceil())
	k := scale
	if p.settings.TextSize > 0 {
		k *= p.settings.TextSize / faceHeight
	}
	w := float64(font.MeasureString(p.face, text).Ceil()) * k
	h := faceHeight * k
	return input.Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}

func hide(l *Label) {
	l.Visible = false
	l.Bounds = input.Rect{}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
