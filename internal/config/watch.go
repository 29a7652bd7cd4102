package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"typeahead/internal/eventbus"
)

// Watcher publishes ConfigChangedEvent whenever the config file is rewritten
type Watcher struct {
	path    string
	bus     eventbus.EventBus
	watcher *fsnotify.Watcher
}

// NewWatcher watches the directory holding path. Editors often replace the
// file instead of writing it, so watching the file itself would lose track.
func NewWatcher(path string, bus eventbus.EventBus) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, bus: bus, watcher: fw}, nil
}

// Run forwards file events until ctx is cancelled or the watcher is closed
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.bus.Publish(eventbus.ConfigChangedEvent{Path: w.path})
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "config watcher", Err: err})
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
