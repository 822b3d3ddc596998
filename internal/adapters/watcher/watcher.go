// Package watcher reports changes to the current wallpaper file.
package watcher

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher watches a single file through its parent directory, so replacing
// the file or re-pointing a symlink is observed as well as in-place writes.
// When the path is a symlink its target is watched too.
type Watcher struct {
	logger ports.Logger

	mu        sync.Mutex
	started   bool
	fsWatcher *fsnotify.Watcher
	targets   map[string]struct{}
	events    chan ports.WatchEvent
}

// NewWatcher returns an idle Watcher. No inotify resources are held until Start.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return zerr.With(zerr.Wrap(domain.ErrWatchFailed, "watcher already started"), "path", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.With(errors.Join(domain.ErrWatchFailed, err), "path", path)
	}

	targets := watchTargets(path)
	dirs := make(map[string]struct{}, len(targets))
	for target := range targets {
		dirs[filepath.Dir(target)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return zerr.With(errors.Join(domain.ErrWatchFailed, err), "path", dir)
		}
	}

	w.started = true
	w.fsWatcher = fsw
	w.targets = targets
	go w.processEvents(ctx, fsw)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	return err
}

// Events returns an iterator of change events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// watchTargets returns the cleaned path plus, for symlinks, the resolved target.
func watchTargets(path string) map[string]struct{} {
	clean := filepath.Clean(path)
	targets := map[string]struct{}{clean: {}}
	if resolved, err := filepath.EvalSymlinks(clean); err == nil {
		targets[resolved] = struct{}{}
	}
	return targets
}

func (w *Watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if _, watched := w.targets[filepath.Clean(event.Name)]; !watched {
				continue
			}
			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}
			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Debug("watcher: " + err.Error())
			}
		}
	}
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	out := ports.WatchEvent{Path: event.Name}
	switch {
	case event.Has(fsnotify.Write):
		out.Operation = ports.OpWrite
	case event.Has(fsnotify.Create):
		out.Operation = ports.OpCreate
	case event.Has(fsnotify.Remove):
		out.Operation = ports.OpRemove
	case event.Has(fsnotify.Rename):
		out.Operation = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return out, true
}
