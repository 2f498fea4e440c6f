package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/core/ports"
)

// NodeID is the unique identifier for the load cache Graft node.
const NodeID graft.ID = "adapter.load_cache"

func init() {
	graft.Register(graft.Node[ports.LoadCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.LoadCache, error) {
			cfg, err := graft.Dep[*config.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Extension()), nil
		},
	})
}
