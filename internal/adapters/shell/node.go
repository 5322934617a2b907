package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pyguard/internal/adapters/logger"
	"go.trai.ch/pyguard/internal/core/ports"
)

const (
	// LauncherNodeID is the unique identifier for the launcher Graft node.
	LauncherNodeID graft.ID = "adapter.launcher"
	// ProberNodeID is the unique identifier for the prober Graft node.
	ProberNodeID graft.ID = "adapter.prober"
	// LocatorNodeID is the unique identifier for the locator Graft node.
	LocatorNodeID graft.ID = "adapter.locator"
)

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Launcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})

	graft.Register(graft.Node[ports.Prober]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Prober, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(log), nil
		},
	})

	graft.Register(graft.Node[ports.Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Locator, error) {
			return NewLocator(), nil
		},
	})
}
