package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/yango/internal/core/ports"
)

const NodeID graft.ID = "adapter.hash_cache_store"

func init() {
	graft.Register(graft.Node[ports.HashCacheStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.HashCacheStore, error) {
			return NewStore(), nil
		},
	})
}
