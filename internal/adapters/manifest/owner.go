package manifest

import (
	"path/filepath"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/replan/internal/core/ports"
)

var _ ports.PackageOwner = (*Owner)(nil)

// ownerCacheSize bounds the per-file ownership cache. Change notifications
// tend to revisit the same files, so even a small cache absorbs most walks.
const ownerCacheSize = 1024

// Owner maps file paths to owning packages by walking up the directory tree
// to the longest recorded package root. Lookups are cached per file path.
type Owner struct {
	roots map[string]string
	names []string
	cache *lru.Cache[string, string]
}

// NewOwner creates an Owner from the manifest's package roots.
func NewOwner(cfg *Config) (*Owner, error) {
	cache, err := lru.New[string, string](ownerCacheSize)
	if err != nil {
		return nil, err
	}

	roots := cfg.PackageRoots()
	names := make([]string, 0, len(roots))
	for _, name := range roots {
		names = append(names, name)
	}
	slices.Sort(names)

	return &Owner{
		roots: roots,
		names: names,
		cache: cache,
	}, nil
}

// Owner returns the package owning the given path. The longest matching
// recorded root wins, found by walking up the parent chain.
func (o *Owner) Owner(path string) (string, bool) {
	path = filepath.Clean(path)

	if pkg, ok := o.cache.Get(path); ok {
		return pkg, true
	}

	pkg, ok := o.lookup(path)
	if ok {
		o.cache.Add(path, pkg)
	}
	return pkg, ok
}

func (o *Owner) lookup(path string) (string, bool) {
	for dir := path; ; {
		if pkg, ok := o.roots[dir]; ok {
			return pkg, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Packages returns the names of every package in the workspace, sorted.
func (o *Owner) Packages() []string {
	return slices.Clone(o.names)
}
