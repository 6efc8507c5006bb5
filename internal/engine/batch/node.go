package batch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yango/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/yango/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/yango/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/yango/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/yango/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/yango/internal/core/ports"
)

// NodeID is the unique identifier for the batch orchestrator Graft node.
const NodeID graft.ID = "engine.batch"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			fs.HasherNodeID,
			fs.SourceStoreNodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			store, err := graft.Dep[ports.HashCacheStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			sources, err := graft.Dep[ports.SourceStore](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
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

			return NewOrchestrator(store, hasher, sources, runner, log, tracer), nil
		},
	})
}
