package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/pkg/watcher"
)

// WindowState tracks the drawable area
type WindowState struct {
	width  int32
	height int32
}

// PointerState holds the previous frame's mouse state so polled input can
// be turned into discrete events
type PointerState struct {
	lastPos rl.Vector2
	hasLast bool
}

// ToolbarState holds the clickable toolbar buttons
type ToolbarState struct {
	buttons []toolbarButton
	hovered int // -1=none
}

// ViewSettings holds display settings
type ViewSettings struct {
	showGrid   bool
	showLabels bool
	showInfo   bool
}

// StyleState holds the raylib colors resolved from the config
type StyleState struct {
	label                 rl.Color
	backgroundPlan        rl.Color
	backgroundPerspective rl.Color
	buttonHover           rl.Color
}

// FileWatchState holds config watching and reload state
type FileWatchState struct {
	configPath  string               // Config file, empty when running on defaults
	fileWatcher *watcher.FileWatcher // File watcher for hot reload
	lastError   string               // Last reload error shown in the info panel
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	fontSize float32
}

// newStyleState converts the config colors for raylib
func newStyleState(cfg config.Config) StyleState {
	return StyleState{
		label:                 toRaylibColor(cfg.Colors.Label),
		buttonHover:           hoverTint(cfg.Colors.Highlighted),
		backgroundPlan:        toRaylibColor(cfg.Colors.BackgroundPlan),
		backgroundPerspective: toRaylibColor(cfg.Colors.BackgroundPerspective),
	}
}

// hoverTint shifts the toolbar button color toward the highlight color
func hoverTint(hex string) rl.Color {
	base := color.RGBA{R: 40, G: 44, B: 52, A: 240}
	accent, err := config.ParseColor(hex)
	if err != nil {
		return rl.NewColor(70, 76, 88, 240)
	}
	c := config.Blend(base, accent, 0.25)
	return rl.NewColor(c.R, c.G, c.B, base.A)
}

func toRaylibColor(hex string) rl.Color {
	c, err := config.ParseColor(hex)
	if err != nil {
		return rl.Black
	}
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
