package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/pkg/watcher"
)

// setupFileWatcher watches the config file for hot reload
func (app *App) setupFileWatcher() error {
	if app.FileWatch.configPath == "" {
		return fmt.Errorf("no config file to watch")
	}

	fw, err := watcher.NewFileWatcher(200*time.Millisecond, app.log)
	if err != nil {
		return err
	}
	if err := fw.Watch(app.FileWatch.configPath); err != nil {
		fw.Close()
		return err
	}
	fw.Start()

	app.FileWatch.fileWatcher = fw
	app.log.Info("watching config", "path", app.FileWatch.configPath)
	return nil
}

// applyPendingReload drains the watcher without blocking and applies the
// latest config. A broken file keeps the previous config active.
func (app *App) applyPendingReload() {
	if app.FileWatch.fileWatcher == nil {
		return
	}

	changed := false
	for drained := false; !drained; {
		select {
		case _, ok := <-app.FileWatch.fileWatcher.Changes():
			if !ok {
				app.FileWatch.fileWatcher = nil
				return
			}
			changed = true
		default:
			drained = true
		}
	}
	if !changed {
		return
	}

	cfg, err := config.Load(app.FileWatch.configPath)
	if err != nil {
		app.FileWatch.lastError = err.Error()
		app.log.Warn("config reload failed", "path", app.FileWatch.configPath, "err", err)
		return
	}

	// Swap the texture first so the rebuild below picks it up
	app.backend.loadTexture(cfg.Textures.Wall)
	if err := app.editor.ApplyConfig(cfg); err != nil {
		app.FileWatch.lastError = err.Error()
		app.log.Warn("config rejected", "path", app.FileWatch.configPath, "err", err)
		return
	}

	app.FileWatch.lastError = ""
	app.cfg = cfg
	app.Style = newStyleState(cfg)
	app.log.Info("config reloaded", "path", app.FileWatch.configPath)
}
