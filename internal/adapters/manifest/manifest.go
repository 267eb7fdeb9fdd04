// Package manifest loads the workspace manifest and answers which package
// owns a given file.
package manifest

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file looked up in the workspace root.
const DefaultFilename = "replan.yaml"

const defaultPlanPath = ".replan/plan.json"

// Config represents the structure of the replan.yaml workspace manifest.
type Config struct {
	Version string `yaml:"version"`

	// Packages maps package names to their root directories, relative to
	// the manifest location or absolute.
	Packages map[string]string `yaml:"packages"`

	// Build describes how to invoke the external build tool.
	Build BuildConfig `yaml:"build"`

	// Plan is the path of the persisted serialized plan.
	Plan string `yaml:"plan"`

	// dir is the absolute directory the manifest was loaded from.
	dir string
}

// BuildConfig is the external build tool invocation. The tool must emit the
// serialized plan document on stdout.
type BuildConfig struct {
	Program string   `yaml:"program"`
	Args    []string `yaml:"args"`
}

// Load reads and validates a manifest from the given path.
func Load(path string) (*Config, error) {
	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read workspace manifest")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to parse workspace manifest")
	}

	if len(cfg.Packages) == 0 {
		return nil, zerr.With(zerr.New("manifest declares no packages"), "path", path)
	}
	if cfg.Build.Program == "" {
		return nil, zerr.With(zerr.New("manifest declares no build tool"), "path", path)
	}

	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve manifest directory")
	}
	cfg.dir = abs

	return &cfg, nil
}

// Dir returns the absolute directory the manifest was loaded from.
func (c *Config) Dir() string {
	return c.dir
}

// PlanPath returns the absolute path of the persisted plan file.
func (c *Config) PlanPath() string {
	plan := c.Plan
	if plan == "" {
		plan = defaultPlanPath
	}
	if !filepath.IsAbs(plan) {
		plan = filepath.Join(c.dir, plan)
	}
	return plan
}

// PackageRoots returns a map from absolute package root directories to
// package names.
func (c *Config) PackageRoots() map[string]string {
	roots := make(map[string]string, len(c.Packages))
	for name, root := range c.Packages {
		if !filepath.IsAbs(root) {
			root = filepath.Join(c.dir, root)
		}
		roots[filepath.Clean(root)] = name
	}
	return roots
}
