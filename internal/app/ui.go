package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/version"
)

const (
	toolbarX       = 10
	toolbarY       = 10
	buttonWidth    = 90
	buttonHeight   = 28
	buttonGap      = 6
	infoPanelWidth = 230
	lineHeight     = 20
)

// toolbarButton is a clickable entry of the toolbar
type toolbarButton struct {
	title  string
	bounds rl.Rectangle
	active func(app *App) bool
	action func(app *App)
}

// newToolbar lays out the 2D, 3D and zoom-to-fit buttons
func newToolbar() []toolbarButton {
	buttons := []toolbarButton{
		{
			title:  "2D",
			active: func(app *App) bool { return app.editor.ViewMode().Is2D() },
			action: func(app *App) { app.editor.SetViewMode(true) },
		},
		{
			title:  "3D",
			active: func(app *App) bool { return !app.editor.ViewMode().Is2D() },
			action: func(app *App) { app.editor.SetViewMode(false) },
		},
		{
			title:  "Zoom fit",
			action: func(app *App) { app.editor.ZoomToFit(app.cfg.View.FitMargin) },
		},
	}
	x := float32(toolbarX)
	for i := range buttons {
		buttons[i].bounds = rl.NewRectangle(x, toolbarY, buttonWidth, buttonHeight)
		x += buttonWidth + buttonGap
	}
	return buttons
}

// toolbarButtonAt returns the index of the button under pos or -1
func (app *App) toolbarButtonAt(pos rl.Vector2) int {
	for i, b := range app.Toolbar.buttons {
		if rl.CheckCollisionPointRec(pos, b.bounds) {
			return i
		}
	}
	return -1
}

// toolbarRect is the screen area covered by all buttons
func (app *App) toolbarRect() input.Rect {
	n := float64(len(app.Toolbar.buttons))
	return input.Rect{
		X: toolbarX,
		Y: toolbarY,
		W: n*buttonWidth + (n-1)*buttonGap,
		H: buttonHeight,
	}
}

// infoPanelRect is the screen area of the stats panel
func (app *App) infoPanelRect() input.Rect {
	return input.Rect{
		X: float64(app.Window.width) - infoPanelWidth - 10,
		Y: 10,
		W: infoPanelWidth,
		H: lineHeight*6 + 16,
	}
}

// updateChrome tells the controller which regions belong to the UI
func (app *App) updateChrome() {
	rects := []input.Rect{app.toolbarRect()}
	if app.View.showInfo {
		rects = append(rects, app.infoPanelRect())
	}
	app.editor.Controller().SetChrome(rects...)
}

// drawUI draws the toolbar, the info panel and the footer
func (app *App) drawUI() {
	fontSize := app.UI.fontSize

	// === TOOLBAR ===
	for i, b := range app.Toolbar.buttons {
		bg := rl.NewColor(40, 44, 52, 230)
		if b.active != nil && b.active(app) {
			bg = rl.NewColor(30, 110, 200, 240)
		} else if i == app.Toolbar.hovered {
			bg = app.Style.buttonHover
		}
		rl.DrawRectangleRec(b.bounds, bg)
		rl.DrawRectangleLinesEx(b.bounds, 1, rl.NewColor(20, 20, 20, 255))

		size := rl.MeasureTextEx(app.UI.font, b.title, fontSize, 1)
		pos := rl.Vector2{
			X: b.bounds.X + (b.bounds.Width-size.X)/2,
			Y: b.bounds.Y + (b.bounds.Height-size.Y)/2,
		}
		rl.DrawTextEx(app.UI.font, b.title, pos, fontSize, 1, rl.White)
	}

	// === INFO ===
	if app.View.showInfo {
		r := app.infoPanelRect()
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), rl.NewColor(0, 0, 0, 190))
		rl.DrawRectangleLines(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), rl.NewColor(90, 90, 90, 255))

		x := float32(r.X) + 10
		y := float32(r.Y) + 8
		rl.DrawTextEx(app.UI.font, "Walls:", rl.Vector2{X: x, Y: y}, fontSize+2, 1, rl.Yellow)
		y += lineHeight
		for _, line := range app.editor.Stats().Lines() {
			rl.DrawTextEx(app.UI.font, "  "+line, rl.Vector2{X: x, Y: y}, fontSize, 1, rl.White)
			y += lineHeight
		}
		mode := fmt.Sprintf("  View: %s", app.editor.ViewMode())
		rl.DrawTextEx(app.UI.font, mode, rl.Vector2{X: x, Y: y}, fontSize, 1, rl.LightGray)
	}

	// === HELP ===
	help := "Click: draw/select | Drag: move | Right click: delete | Shift+Drag: pan/orbit | Wheel: zoom"
	if app.FileWatch.lastError != "" {
		help = "Config error: " + app.FileWatch.lastError
	}
	bottomY := float32(app.Window.height) - 30
	rl.DrawTextEx(app.UI.font, help, rl.Vector2{X: 10, Y: bottomY - lineHeight}, fontSize-2, 1, rl.Gray)

	// Version and FPS in bottom-left corner
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize-2, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize-2, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize-2, 1, rl.Lime)
}

// drawLabels draws the projected wall lengths inside the boxes the
// projector computed
func (app *App) drawLabels() {
	for _, l := range app.editor.Labels() {
		b := l.Bounds
		bg := rl.NewRectangle(float32(b.X)-3, float32(b.Y)-1, float32(b.W)+6, float32(b.H)+2)
		rl.DrawRectangleRec(bg, rl.NewColor(255, 255, 255, 200))

		size := float32(b.H)
		textSize := rl.MeasureTextEx(app.UI.font, l.Text, size, 1)
		pos := rl.Vector2{
			X: float32(b.X) + (float32(b.W)-textSize.X)/2,
			Y: float32(b.Y) + (float32(b.H)-textSize.Y)/2,
		}
		rl.DrawTextEx(app.UI.font, l.Text, pos, size, 1, app.Style.label)
	}
}
