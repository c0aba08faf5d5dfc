package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofloor/internal/input"
)

var mouseButtons = []struct {
	raylib rl.MouseButton
	button input.Button
}{
	{rl.MouseLeftButton, input.ButtonPrimary},
	{rl.MouseRightButton, input.ButtonSecondary},
	{rl.MouseMiddleButton, input.ButtonMiddle},
}

// handleInput turns this frame's polled mouse state into pointer events
// and handles keyboard shortcuts
func (app *App) handleInput() {
	pos := rl.GetMousePosition()
	mods := currentModifiers()
	x, y := float64(pos.X), float64(pos.Y)

	// Toolbar buttons are checked before the editor sees the click
	app.Toolbar.hovered = app.toolbarButtonAt(pos)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && app.Toolbar.hovered >= 0 {
		app.Toolbar.buttons[app.Toolbar.hovered].action(app)
	}

	if app.Pointer.hasLast && (pos.X != app.Pointer.lastPos.X || pos.Y != app.Pointer.lastPos.Y) {
		app.events.Emit(input.PointerEvent{Kind: input.Move, X: x, Y: y, Mods: mods})
	}
	app.Pointer.lastPos = pos
	app.Pointer.hasLast = true

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.raylib) {
			app.events.Emit(input.PointerEvent{Kind: input.Press, X: x, Y: y, Button: b.button, Mods: mods})
		}
		if rl.IsMouseButtonReleased(b.raylib) {
			app.events.Emit(input.PointerEvent{Kind: input.Release, X: x, Y: y, Button: b.button, Mods: mods})
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.events.Emit(input.PointerEvent{Kind: input.Scroll, X: x, Y: y, Mods: mods, Scroll: float64(wheel)})
	}

	// View shortcuts
	if rl.IsKeyPressed(rl.KeyOne) {
		app.editor.SetViewMode(true)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.editor.SetViewMode(false)
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.editor.ZoomToFit(app.cfg.View.FitMargin)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.View.showLabels = !app.View.showLabels
	}
	if rl.IsKeyPressed(rl.KeyI) {
		app.View.showInfo = !app.View.showInfo
	}

	// Delete the selection from the keyboard as well
	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		app.editor.DeleteSelected()
	}
}

// currentModifiers reads the held modifier keys
func currentModifiers() input.Modifier {
	var mods input.Modifier
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		mods |= input.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		mods |= input.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		mods |= input.ModAlt
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		mods |= input.ModSuper
	}
	return mods
}
