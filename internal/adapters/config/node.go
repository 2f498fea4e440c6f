package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/adapters/logger"
	"go.trai.ch/autoload/internal/core/ports"
)

// NodeID is the unique identifier for the config provider Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Provider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewProvider(log, cwd)
		},
	})
}
