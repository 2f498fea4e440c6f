package runtime

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/adapters/logger"
	"go.trai.ch/autoload/internal/core/ports"
)

// NodeID is the unique identifier for the runtime Graft node.
const NodeID graft.ID = "adapter.runtime"

func init() {
	graft.Register(graft.Node[ports.Runtime]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Runtime, error) {
			cfg, err := graft.Dep[*config.Provider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInterpreter(cfg.Interpreter(), log), nil
		},
	})
}
