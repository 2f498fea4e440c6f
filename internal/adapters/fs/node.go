package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/core/ports"
)

// NodeID is the unique identifier for the path resolver Graft node.
const NodeID graft.ID = "adapter.path_resolver"

func init() {
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PathResolver, error) {
			cfg, err := graft.Dep[*config.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cfg, HostPathFromEnv()), nil
		},
	})
}
