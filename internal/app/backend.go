package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofloor/internal/scene"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// drawable is implemented by every representation this backend creates
type drawable interface {
	draw()
}

// raylibBackend builds wall representations for the raylib window.
// Extruded walls own a GPU model; flat walls and the preview line are drawn
// in immediate mode and own nothing.
type raylibBackend struct {
	texture    rl.Texture2D
	hasTexture bool
}

func newRaylibBackend() *raylibBackend {
	return &raylibBackend{}
}

// loadTexture loads the optional wall texture. Must run after InitWindow.
func (b *raylibBackend) loadTexture(path string) bool {
	b.unloadTexture()
	if path == "" {
		return false
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return false
	}
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	b.texture = tex
	b.hasTexture = true
	return true
}

func (b *raylibBackend) unloadTexture() {
	if b.hasTexture {
		rl.UnloadTexture(b.texture)
		b.hasTexture = false
	}
}

// Create builds a flat slab in plan mode and an extruded model in perspective
func (b *raylibBackend) Create(spec scene.Spec) scene.Representation {
	if spec.Mode.Is2D() {
		return newFlatWall(spec)
	}
	return b.newSolidWall(spec)
}

// CreatePreview builds the rubber band line
func (b *raylibBackend) CreatePreview(start, end geometry.Vector3, c color.RGBA) scene.Representation {
	return &previewLine{start: toVector3(start), end: toVector3(end), color: toRLColor(c)}
}

// flatWall is a thin rectangle with a centre line on the ground plane
type flatWall struct {
	corners [4]rl.Vector3
	start   rl.Vector3
	end     rl.Vector3
	color   rl.Color
}

func newFlatWall(spec scene.Spec) *flatWall {
	box := spec.Box
	h := box.HalfExtents
	lift := 2 * h.Z
	w := &flatWall{
		start: toVector3(spec.Wall.Start.Add(geometry.NewVector3(0, 0, lift))),
		end:   toVector3(spec.Wall.End.Add(geometry.NewVector3(0, 0, lift))),
		color: toRLColor(spec.Color),
	}
	// Counter-clockwise seen from above
	local := [4]geometry.Vector3{
		geometry.NewVector3(-h.X, -h.Y, 0),
		geometry.NewVector3(h.X, -h.Y, 0),
		geometry.NewVector3(h.X, h.Y, 0),
		geometry.NewVector3(-h.X, h.Y, 0),
	}
	for i, p := range local {
		corner := geometry.NewVector3(box.Center.X, box.Center.Y, 0).Add(p.RotateZ(box.Angle))
		w.corners[i] = toVector3(corner)
	}
	return w
}

func (w *flatWall) SetColor(c color.RGBA) {
	w.color = toRLColor(c)
}

func (w *flatWall) draw() {
	rl.DrawTriangle3D(w.corners[0], w.corners[1], w.corners[2], w.color)
	rl.DrawTriangle3D(w.corners[0], w.corners[2], w.corners[3], w.color)
	rl.DrawLine3D(w.start, w.end, rl.DarkGray)
}

// solidWall is an extruded box resting on the ground plane
type solidWall struct {
	model rl.Model
	color rl.Color
}

func (b *raylibBackend) newSolidWall(spec scene.Spec) *solidWall {
	h := spec.Box.HalfExtents
	mesh := rl.GenMeshCube(float32(2*h.X), float32(2*h.Y), float32(2*h.Z))
	model := rl.LoadModelFromMesh(mesh)

	c := spec.Box.Center
	model.Transform = rl.MatrixMultiply(
		rl.MatrixRotateZ(float32(spec.Box.Angle)),
		rl.MatrixTranslate(float32(c.X), float32(c.Y), float32(c.Z)),
	)
	if b.hasTexture && model.Materials != nil && model.Materials.Maps != nil {
		model.Materials.Maps.Texture = b.texture
	}
	return &solidWall{model: model, color: toRLColor(spec.Color)}
}

func (w *solidWall) SetColor(c color.RGBA) {
	w.color = toRLColor(c)
}

func (w *solidWall) draw() {
	rl.DrawModel(w.model, rl.Vector3{}, 1, w.color)
	rl.DrawModelWires(w.model, rl.Vector3{}, 1, rl.NewColor(60, 60, 60, 255))
}

// Dispose releases the GPU mesh. The shared wall texture stays loaded.
func (w *solidWall) Dispose() {
	rl.UnloadModel(w.model)
}

// previewLine is drawn while a wall is being placed
type previewLine struct {
	start rl.Vector3
	end   rl.Vector3
	color rl.Color
}

func (p *previewLine) SetColor(c color.RGBA) {
	p.color = toRLColor(c)
}

func (p *previewLine) draw() {
	rl.DrawLine3D(p.start, p.end, p.color)
	rl.DrawSphere(p.start, 0.15, p.color)
}

// drawScene draws every live representation
func drawScene(reps []scene.Representation) {
	for _, rep := range reps {
		if d, ok := rep.(drawable); ok {
			d.draw()
		}
	}
}

func toVector3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toRLColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
