package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchConfig runs once, then again after every write to the config file,
// until ctx is cancelled. Errors from a single run are logged and do not stop
// the loop.
func watchConfig(ctx context.Context, opts options, w io.Writer, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	path, err := filepath.Abs(opts.configPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	// Watch the directory so editors that save by rename are still seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", opts.configPath, err)
	}

	rerun := func() {
		if err := runOnce(opts, w, logger); err != nil {
			logger.Error("run failed", "err", err)
		}
	}
	rerun()
	logger.Info("watching", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isConfigChange(ev, path) {
				continue
			}
			logger.Debug("config changed", "op", ev.Op.String())
			rerun()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

func isConfigChange(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
