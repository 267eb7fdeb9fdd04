package ports

// PackageOwner maps workspace files to the packages that own them. It is
// backed by the workspace manifest and consulted only by the package-scope
// gate.
//
//go:generate go run go.uber.org/mock/mockgen -source=ownership.go -destination=mocks/mock_ownership.go -package=mocks
type PackageOwner interface {
	// Owner returns the name of the package whose root directory is the
	// longest recorded prefix of path. The boolean is false when no recorded
	// root contains the path.
	Owner(path string) (string, bool)

	// Packages returns the names of every package in the workspace, sorted.
	// This is the default scope for a full rebuild.
	Packages() []string
}
