package config

import (
	"context"

	"github.com/grindlemire/graft"
	adapterfs "go.trai.ch/yango/internal/adapters/fs"
	"go.trai.ch/yango/internal/adapters/logger"
	"go.trai.ch/yango/internal/core/ports"
)

const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, adapterfs.CodecNodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			codec, err := graft.Dep[*adapterfs.Codec](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, codec), nil
		},
	})
}
