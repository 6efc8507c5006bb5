package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yango/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/yango/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/yango/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/yango/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/yango/internal/adapters/report" //nolint:depguard // Wired in app layer
	"go.trai.ch/yango/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/yango/internal/engine/batch"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.DiscovererNodeID,
			batch.NodeID,
			cas.NodeID,
			shell.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[ports.Discoverer](ctx)
	if err != nil {
		return nil, err
	}

	orchestrator, err := graft.Dep[*batch.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.HashCacheStore](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.Runner](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, discoverer, orchestrator, store, runner, reporter, log), nil
}
