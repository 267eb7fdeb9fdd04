package manifest_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/replan/internal/adapters/manifest"
)

func newOwner(t *testing.T) (*manifest.Owner, string) {
	t.Helper()
	path := writeManifest(t, `
packages:
  mylib: crates/mylib
  nested: crates/mylib/vendor/nested
  mybin: crates/mybin
build:
  program: cargo
`)

	cfg, err := manifest.Load(path)
	require.NoError(t, err)
	owner, err := manifest.NewOwner(cfg)
	require.NoError(t, err)
	return owner, cfg.Dir()
}

func TestOwner_LongestRootWins(t *testing.T) {
	owner, dir := newOwner(t)

	tests := []struct {
		name string
		path string
		want string
		ok   bool
	}{
		{
			name: "file in a package",
			path: filepath.Join(dir, "crates", "mylib", "src", "lib.rs"),
			want: "mylib",
			ok:   true,
		},
		{
			name: "file in the nested package",
			path: filepath.Join(dir, "crates", "mylib", "vendor", "nested", "src", "lib.rs"),
			want: "nested",
			ok:   true,
		},
		{
			name: "package root itself",
			path: filepath.Join(dir, "crates", "mybin"),
			want: "mybin",
			ok:   true,
		},
		{
			name: "file outside every package",
			path: filepath.Join(dir, "README.md"),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := owner.Owner(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOwner_CachedLookupStable(t *testing.T) {
	owner, dir := newOwner(t)
	path := filepath.Join(dir, "crates", "mylib", "src", "lib.rs")

	first, ok := owner.Owner(path)
	require.True(t, ok)
	// The second lookup is served from the cache and must agree.
	second, ok := owner.Owner(path)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestOwner_PackagesSorted(t *testing.T) {
	owner, _ := newOwner(t)

	pkgs := owner.Packages()
	assert.Equal(t, []string{"mybin", "mylib", "nested"}, pkgs)

	// The returned slice is a copy; mutating it must not leak.
	pkgs[0] = "mutated"
	assert.Equal(t, []string{"mybin", "mylib", "nested"}, owner.Packages())
}
