package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoload/internal/adapters/cache"
	"go.trai.ch/autoload/internal/adapters/config"
	"go.trai.ch/autoload/internal/adapters/fs"
	"go.trai.ch/autoload/internal/adapters/logger"
	"go.trai.ch/autoload/internal/adapters/runtime"
	"go.trai.ch/autoload/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the loader Graft node.
	LoaderNodeID graft.ID = "engine.loader"
	// MonitorNodeID is the unique identifier for the reload monitor Graft node.
	MonitorNodeID graft.ID = "engine.monitor"
)

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, cache.NodeID, runtime.NodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			loadCache, err := graft.Dep[ports.LoadCache](ctx)
			if err != nil {
				return nil, err
			}
			rt, err := graft.Dep[ports.Runtime](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Provider](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(resolver, loadCache, rt, log, cfg.Extension()), nil
		},
	})

	graft.Register(graft.Node[*Monitor]{
		ID:        MonitorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, cache.NodeID, runtime.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Monitor, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			loadCache, err := graft.Dep[ports.LoadCache](ctx)
			if err != nil {
				return nil, err
			}
			rt, err := graft.Dep[ports.Runtime](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMonitor(resolver, loadCache, rt, log), nil
		},
	})
}
