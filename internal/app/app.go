// Package app runs the floorplan editor in a raylib window.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/editor"
	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// Options configure a window session
type Options struct {
	Config     config.Config
	ConfigPath string // Source of Config, watched when Watch is set
	Watch      bool
	Demo       bool // Start with a sample room
	Logger     *log.Logger
}

type App struct {
	Window    WindowState
	Pointer   PointerState
	Toolbar   ToolbarState
	View      ViewSettings
	Style     StyleState
	FileWatch FileWatchState
	UI        UIState

	cfg     config.Config
	editor  *editor.Editor
	backend *raylibBackend
	events  *input.Dispatcher
	log     *log.Logger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	start := time.Now()

	// Initialize window
	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "GoFloor")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open window")
	}
	rl.SetTargetFPS(60)

	app := &App{
		Window:  WindowState{width: screenWidth, height: screenHeight},
		Toolbar: ToolbarState{buttons: newToolbar(), hovered: -1},
		View: ViewSettings{
			showGrid:   true,
			showLabels: true,
			showInfo:   true,
		},
		Style:     newStyleState(opts.Config),
		FileWatch: FileWatchState{configPath: opts.ConfigPath},
		UI:        UIState{font: rl.GetFontDefault(), fontSize: 14},
		cfg:       opts.Config,
		backend:   newRaylibBackend(),
		events:    input.NewDispatcher(),
		log:       logger,
	}
	if app.backend.loadTexture(opts.Config.Textures.Wall) {
		logger.Debug("wall texture loaded", "path", opts.Config.Textures.Wall)
	}
	defer app.backend.unloadTexture()

	app.editor = editor.New(app.backend, opts.Config, logger, float64(screenWidth), float64(screenHeight))
	sub := app.editor.Controller().Attach(app.events)
	defer sub.Close()

	if opts.Demo {
		app.addDemoRoom()
	}

	// Set up config watching
	if opts.Watch {
		if err := app.setupFileWatcher(); err != nil {
			logger.Warn("config hot reload unavailable", "err", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	logger.Info("editor started", "mode", app.editor.ViewMode())

	// Main loop
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			app.Window.width = int32(rl.GetScreenWidth())
			app.Window.height = int32(rl.GetScreenHeight())
			app.editor.Resize(float64(app.Window.width), float64(app.Window.height))
		}

		// Apply config changes delivered by the watcher (must be on main thread)
		app.applyPendingReload()

		// Update
		app.updateChrome()
		app.handleInput()
		app.editor.Frame()

		// Draw
		rl.BeginDrawing()
		if app.editor.ViewMode().Is2D() {
			rl.ClearBackground(app.Style.backgroundPlan)
		} else {
			rl.ClearBackground(app.Style.backgroundPerspective)
		}

		rl.BeginMode3D(raylibCamera(app.editor.Viewport()))
		if app.View.showGrid {
			drawGrid(!app.editor.ViewMode().Is2D())
			drawAxes(5)
		}
		drawScene(app.editor.Representations())
		rl.EndMode3D()

		if app.View.showLabels {
			app.drawLabels()
		}
		app.drawUI()

		rl.EndDrawing()
	}

	// Release GPU resources of the remaining walls before the context goes away
	for _, w := range app.editor.Walls() {
		app.editor.DeleteWall(w.ID)
	}
	app.editor.CancelDrawing()
	logger.Debug("editor closed", "uptime", time.Since(start).Round(time.Second))
	return nil
}

// addDemoRoom seeds a simple room with a partition wall
func (app *App) addDemoRoom() {
	corners := []geometry.Vector3{
		geometry.NewVector3(-10, -6, 0),
		geometry.NewVector3(10, -6, 0),
		geometry.NewVector3(10, 6, 0),
		geometry.NewVector3(-10, 6, 0),
	}
	for i := range corners {
		app.editor.AddWall(corners[i], corners[(i+1)%len(corners)])
	}
	app.editor.AddWall(geometry.NewVector3(2, -6, 0), geometry.NewVector3(2, 1, 0))
	app.editor.ZoomToFit(app.cfg.View.FitMargin)
}
