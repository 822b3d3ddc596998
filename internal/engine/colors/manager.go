// Package colors resolves wallpaper color roles through a single-entry cache.
package colors

import (
	"context"
	"os"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
)

// StatFunc returns file information for path, following symlinks.
type StatFunc func(path string) (os.FileInfo, error)

// Manager returns the color roles for a wallpaper, reusing the cached entry
// while the wallpaper path and whole-second mtime are unchanged. Every
// failure degrades to "no colors"; nothing is surfaced to the caller.
type Manager struct {
	store     ports.ColorCacheStore
	extractor ports.ColorExtractor
	logger    ports.Logger
	tracer    ports.Tracer
	stat      StatFunc
}

// Option configures a Manager.
type Option func(*Manager)

// WithStat replaces os.Stat for mtime lookups.
func WithStat(stat StatFunc) Option {
	return func(m *Manager) { m.stat = stat }
}

// WithTracer records a span per lookup.
func WithTracer(tracer ports.Tracer) Option {
	return func(m *Manager) { m.tracer = tracer }
}

// NewManager creates a Manager.
func NewManager(
	store ports.ColorCacheStore,
	extractor ports.ColorExtractor,
	logger ports.Logger,
	opts ...Option,
) *Manager {
	m := &Manager{
		store:     store,
		extractor: extractor,
		logger:    logger,
		stat:      os.Stat,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the color roles for wallpaper. The boolean is false when no
// colors could be produced.
func (m *Manager) Get(ctx context.Context, wallpaper string) (map[string]string, bool) {
	if m.tracer != nil {
		var span ports.Span
		ctx, span = m.tracer.Start(ctx, "colors.get")
		defer span.End()
		span.SetAttribute("wallpaper", wallpaper)
	}

	if colors, ok := m.cached(wallpaper); ok {
		m.debug("colors: cache hit for " + wallpaper)
		return colors, true
	}

	colors, err := m.extractor.Extract(ctx, wallpaper)
	if err != nil {
		m.debug("colors: extraction failed: " + err.Error())
		return nil, false
	}

	m.persist(wallpaper, colors)
	return colors, true
}

// Invalidate drops the cached entry. Errors are ignored.
func (m *Manager) Invalidate() {
	if err := m.store.Delete(); err != nil {
		m.debug("colors: invalidate: " + err.Error())
	}
}

func (m *Manager) cached(wallpaper string) (map[string]string, bool) {
	entry, err := m.store.Load()
	if err != nil {
		m.debug("colors: cache unreadable: " + err.Error())
		return nil, false
	}
	if entry == nil {
		return nil, false
	}
	mtime, ok := m.mtime(wallpaper)
	if !ok || !entry.ValidFor(wallpaper, mtime) {
		return nil, false
	}
	return entry.Colors, true
}

// persist stores colors keyed by the wallpaper's mtime at save time. A
// wallpaper that cannot be stat'ed is not cached.
func (m *Manager) persist(wallpaper string, colors map[string]string) {
	mtime, ok := m.mtime(wallpaper)
	if !ok {
		return
	}
	entry := &domain.ColorCacheEntry{
		WallpaperPath:  wallpaper,
		WallpaperMtime: mtime,
		Colors:         colors,
	}
	if err := m.store.Save(entry); err != nil {
		m.debug("colors: cache not saved: " + err.Error())
	}
}

// mtime returns the wallpaper modification time in whole seconds since the epoch.
func (m *Manager) mtime(wallpaper string) (uint64, bool) {
	info, err := m.stat(wallpaper)
	if err != nil {
		return 0, false
	}
	secs := info.ModTime().Unix()
	if secs < 0 {
		return 0, false
	}
	return uint64(secs), true
}

func (m *Manager) debug(msg string) {
	if m.logger != nil {
		m.logger.Debug(msg)
	}
}
