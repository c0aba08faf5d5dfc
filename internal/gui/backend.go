package gui

import (
	"image/color"

	"github.com/philipparndt/gofloor/internal/scene"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// wireframe is a representation drawn as projected line segments
type wireframe struct {
	edges [][2]geometry.Vector3
	color color.RGBA
	width float32
}

func (w *wireframe) SetColor(c color.RGBA) {
	w.color = c
}

// fyneBackend builds wireframes the canvas widget projects every render.
// Nothing here holds resources, so no representation implements Disposer.
type fyneBackend struct{}

// Create outlines the wall in the requested view mode
func (fyneBackend) Create(spec scene.Spec) scene.Representation {
	return &wireframe{edges: spec.Edges(), color: spec.Color, width: 2}
}

// CreatePreview builds the rubber band line
func (fyneBackend) CreatePreview(start, end geometry.Vector3, c color.RGBA) scene.Representation {
	return &wireframe{
		edges: [][2]geometry.Vector3{{start, end}},
		color: c,
		width: 1,
	}
}
