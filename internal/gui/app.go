// Package gui runs the floorplan editor in a fyne window.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/editor"
	"github.com/philipparndt/gofloor/internal/input"
	"github.com/philipparndt/gofloor/pkg/watcher"
)

// Options configure a window session
type Options struct {
	Config     config.Config
	ConfigPath string
	Watch      bool
	Logger     *log.Logger
}

type App struct {
	window   fyne.Window
	editor   *editor.Editor
	canvas   *FloorCanvas
	events   *input.Dispatcher
	cfg      Options
	statsBox *widget.Label
	status   *widget.Label
	log      *log.Logger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := app.New()
	w := a.NewWindow("GoFloor")

	g := &App{
		window:   w,
		events:   input.NewDispatcher(),
		cfg:      opts,
		statsBox: widget.NewLabel(""),
		status:   widget.NewLabel(""),
		log:      logger,
	}
	g.editor = editor.New(fyneBackend{}, opts.Config, logger, 800, 600)
	sub := g.editor.Controller().Attach(g.events)
	defer sub.Close()

	g.canvas = NewFloorCanvas(g.editor, g.events, g.updateStats)
	g.setupMainUI()

	if opts.Watch {
		stop, err := g.watchConfig()
		if err != nil {
			logger.Warn("config hot reload unavailable", "err", err)
		} else {
			defer stop()
		}
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
	return nil
}

func (g *App) setupMainUI() {
	planButton := widget.NewButton("2D", func() {
		g.editor.SetViewMode(true)
		g.redraw()
	})
	perspectiveButton := widget.NewButton("3D", func() {
		g.editor.SetViewMode(false)
		g.redraw()
	})
	fitButton := widget.NewButton("Zoom fit", func() {
		g.editor.ZoomToFit(g.editor.Config().View.FitMargin)
		g.redraw()
	})
	deleteButton := widget.NewButton("Delete selected", func() {
		g.editor.DeleteSelected()
		g.redraw()
	})

	toolbar := container.NewHBox(planButton, perspectiveButton, fitButton, deleteButton)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click empty space to start a wall, click again to finish\n" +
			"• Click a wall to select, Ctrl+Click to add to the selection\n" +
			"• Drag selected walls to move them\n" +
			"• Right click a wall to delete it\n" +
			"• Shift+Drag or middle drag to pan, scroll to zoom",
	)
	instructions.Wrapping = fyne.TextWrapWord

	// Create info panel
	infoPanel := container.NewVBox(
		widget.NewLabel("Walls:"),
		widget.NewSeparator(),
		g.statsBox,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		g.status,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(
		toolbar,    // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		g.canvas,   // center
	)
	g.window.SetContent(content)
	g.updateStats()
}

func (g *App) redraw() {
	g.canvas.Render(g.canvas.width, g.canvas.height)
	g.updateStats()
}

// updateStats refreshes the info panel
func (g *App) updateStats() {
	lines := g.editor.Stats().Lines()
	lines = append(lines, "View: "+g.editor.ViewMode().String())
	g.statsBox.SetText(strings.Join(lines, "\n"))
}

// watchConfig reloads the config on change. Reloads are applied on the fyne
// main goroutine.
func (g *App) watchConfig() (func(), error) {
	if g.cfg.ConfigPath == "" {
		return nil, fmt.Errorf("no config file to watch")
	}
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, g.log)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch(g.cfg.ConfigPath); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()

	go func() {
		for path := range fw.Changes() {
			cfg, err := config.Load(path)
			fyne.Do(func() {
				g.applyConfig(cfg, err)
			})
		}
	}()
	return func() { fw.Close() }, nil
}

func (g *App) applyConfig(cfg config.Config, err error) {
	if err == nil {
		err = g.editor.ApplyConfig(cfg)
	}
	if err != nil {
		g.status.SetText("Config error: " + err.Error())
		g.log.Warn("config reload failed", "err", err)
		return
	}
	g.status.SetText("")
	g.canvas.applyStyle()
	g.redraw()
	g.log.Info("config reloaded", "path", g.cfg.ConfigPath)
}

// parseColor converts a validated config color for fyne
func parseColor(hex string) color.Color {
	c, err := config.ParseColor(hex)
	if err != nil {
		return color.Black
	}
	return c
}
