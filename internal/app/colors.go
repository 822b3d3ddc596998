package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/wrp/internal/adapters/watcher"
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Wallpaper returns the configured wallpaper with "~" expanded and symlinks
// resolved. ok is false when the file does not exist.
func (a *App) Wallpaper() (string, bool) {
	path := domain.ExpandHome(a.config.Wallpaper)
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		a.logger.Debug("wallpaper unavailable: " + err.Error())
		return "", false
	}
	return resolved, true
}

// Colors returns the color roles for the current wallpaper.
func (a *App) Colors(ctx context.Context) (map[string]string, bool) {
	wall, ok := a.Wallpaper()
	if !ok {
		return nil, false
	}
	return a.colors.Get(ctx, wall)
}

// Palette returns the current palette, falling back to the defaults.
func (a *App) Palette(ctx context.Context) domain.Palette {
	colors, _ := a.Colors(ctx)
	return domain.PaletteFromColors(colors)
}

// PrintPrimary writes the primary color of the current wallpaper.
func (a *App) PrintPrimary(ctx context.Context) error {
	colors, ok := a.Colors(ctx)
	if !ok || colors[domain.RolePrimary] == "" {
		return domain.ErrNoColors
	}
	_, err := fmt.Fprintln(a.out, colors[domain.RolePrimary])
	return err
}

// PrintPS1 writes a bash prompt fragment colored from the wallpaper.
// It always succeeds so it can be embedded in PROMPT_COMMAND.
func (a *App) PrintPS1(ctx context.Context) error {
	colors, _ := a.Colors(ctx)
	_, err := fmt.Fprintln(a.out, domain.PS1(colors))
	return err
}

// PrintColorsJSON writes the full role mapping as a JSON object.
func (a *App) PrintColorsJSON(ctx context.Context) error {
	colors, ok := a.Colors(ctx)
	if !ok {
		return domain.ErrNoColors
	}
	data, err := json.MarshalIndent(colors, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "encode colors")
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

// PrintPalette writes every palette role as a colored swatch.
func (a *App) PrintPalette(ctx context.Context) error {
	colors, ok := a.Colors(ctx)
	palette := domain.PaletteFromColors(colors)
	p := a.printer(palette)

	p.Header("Palette")
	source := "defaults"
	if ok {
		source, _ = a.Wallpaper()
	}
	p.KV("Source", source)
	p.Blank()
	for _, rc := range palette.Roles() {
		p.Swatch(rc.Role, rc.Hex)
	}
	return nil
}

// InvalidateColors drops the cached colors.
func (a *App) InvalidateColors() error {
	a.colors.Invalidate()
	a.printer(domain.DefaultPalette()).Success("Color cache cleared")
	return nil
}

// WatchColors regenerates colors whenever the wallpaper changes and prints
// the new primary color. It returns when ctx is done.
func (a *App) WatchColors(ctx context.Context) error {
	path := domain.ExpandHome(a.config.Wallpaper)
	if err := a.watcher.Start(ctx, path); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Debug("watcher stop: " + err.Error())
		}
	}()

	refresh := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		select {
		case refresh <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for ev := range a.watcher.Events() {
			debouncer.Add(ev.Path)
		}
	}()

	a.logger.Info("watching " + path)
	a.reportPrimary(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-refresh:
			a.colors.Invalidate()
			a.reportPrimary(ctx)
		}
	}
}

func (a *App) reportPrimary(ctx context.Context) {
	if err := a.PrintPrimary(ctx); err != nil {
		if errors.Is(err, domain.ErrNoColors) {
			a.logger.Warn("no colors for current wallpaper")
			return
		}
		a.logger.Error(err)
	}
}
