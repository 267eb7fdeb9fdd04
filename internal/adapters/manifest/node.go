package manifest

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/replan/internal/core/ports"
)

const (
	// ConfigNodeID is the unique identifier for the manifest config Graft node.
	ConfigNodeID graft.ID = "adapter.manifest_config"
	// OwnerNodeID is the unique identifier for the package owner Graft node.
	OwnerNodeID graft.ID = "adapter.package_owner"
)

// configPathEnv overrides the manifest location, mainly for tests and CI.
const configPathEnv = "REPLAN_CONFIG"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Config, error) {
			path := DefaultFilename
			if env := os.Getenv(configPathEnv); env != "" {
				path = env
			}
			return Load(path)
		},
	})

	graft.Register(graft.Node[ports.PackageOwner]{
		ID:        OwnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ConfigNodeID},
		Run: func(ctx context.Context) (ports.PackageOwner, error) {
			cfg, err := graft.Dep[*Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewOwner(cfg)
		},
	})
}
