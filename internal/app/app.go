// Package app implements the application layer for wrp.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/wrp/internal/engine/colors"
	"go.trai.ch/wrp/internal/ui/output"
	"go.trai.ch/wrp/internal/ui/style"
)

// App represents the main application logic.
type App struct {
	config   *domain.Config
	colors   *colors.Manager
	audio    ports.AudioController
	wm       ports.WindowManager
	sampler  ports.MetricSampler
	notifier ports.Notifier
	watcher  ports.Watcher
	logger   ports.Logger
	tracer   ports.Tracer
	out      io.Writer
}

// New creates a new App instance writing to stdout.
func New(
	cfg *domain.Config,
	manager *colors.Manager,
	audio ports.AudioController,
	wm ports.WindowManager,
	sampler ports.MetricSampler,
	notifier ports.Notifier,
	watcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	return &App{
		config:   cfg,
		colors:   manager,
		audio:    audio,
		wm:       wm,
		sampler:  sampler,
		notifier: notifier,
		watcher:  watcher,
		logger:   log,
		tracer:   tracer,
		out:      os.Stdout,
	}
}

// WithOutput redirects command output to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Options holds the global presentation flags.
type Options struct {
	Verbose  bool
	JSONLogs bool
	Trace    bool
}

type verboseSetter interface{ SetVerbose(bool) }

type jsonSetter interface{ SetJSON(bool) }

type traceSetter interface{ SetEnabled(bool) }

// Configure applies opts to the logger and tracer when they support it.
func (a *App) Configure(opts Options) {
	if l, ok := a.logger.(verboseSetter); ok {
		l.SetVerbose(opts.Verbose)
	}
	if l, ok := a.logger.(jsonSetter); ok {
		l.SetJSON(opts.JSONLogs)
	}
	if t, ok := a.tracer.(traceSetter); ok {
		t.SetEnabled(opts.Trace)
	}
}

// printer returns a Printer themed with p.
func (a *App) printer(p domain.Palette) *output.Printer {
	return output.NewPrinter(a.out, style.NewTheme(p))
}

func (a *App) start(ctx context.Context, name string) (context.Context, ports.Span) {
	if a.tracer == nil {
		return ctx, noopSpan{}
	}
	return a.tracer.Start(ctx, name)
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
