package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yango/internal/adapters/logger"
	"go.trai.ch/yango/internal/core/ports"
)

const (
	CodecNodeID       graft.ID = "adapter.fs.codec"
	HasherNodeID      graft.ID = "adapter.fs.hasher"
	SourceStoreNodeID graft.ID = "adapter.fs.source_store"
	DiscovererNodeID  graft.ID = "adapter.fs.discoverer"
)

func init() {
	// Codec Node (Concrete implementation shared by Hasher and SourceStore)
	graft.Register(graft.Node[*Codec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Codec, error) {
			return NewCodec(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CodecNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			codec, err := graft.Dep[*Codec](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(codec), nil
		},
	})

	graft.Register(graft.Node[ports.SourceStore]{
		ID:        SourceStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CodecNodeID},
		Run: func(ctx context.Context) (ports.SourceStore, error) {
			codec, err := graft.Dep[*Codec](ctx)
			if err != nil {
				return nil, err
			}
			return NewSourceStore(codec), nil
		},
	})

	graft.Register(graft.Node[ports.Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Discoverer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiscoverer(log), nil
		},
	})
}
