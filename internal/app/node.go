package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wrp/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/adapters/hypr"      //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/adapters/notify"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/adapters/sysinfo"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/adapters/wpctl"     //nolint:depguard // Wired in app layer
	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/wrp/internal/engine/colors"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the entry point needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			colors.NodeID,
			wpctl.NodeID,
			hypr.NodeID,
			sysinfo.NodeID,
			notify.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Tracer: tracer}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	manager, err := graft.Dep[*colors.Manager](ctx)
	if err != nil {
		return nil, err
	}

	audio, err := graft.Dep[ports.AudioController](ctx)
	if err != nil {
		return nil, err
	}

	wm, err := graft.Dep[ports.WindowManager](ctx)
	if err != nil {
		return nil, err
	}

	sampler, err := graft.Dep[ports.MetricSampler](ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, manager, audio, wm, sampler, notifier, w, log, tracer), nil
}
