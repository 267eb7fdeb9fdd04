package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// UnitID identifies a unit in the build graph. It is content-derived, so
// repeated constructions of the same logical build always produce the same
// identities.
type UnitID string

// String returns the identity as a plain string.
func (id UnitID) String() string { return string(id) }

// ComputeUnitID derives the identity of a unit from its invocation: program,
// ordered argument list, environment (in sorted key order) and working
// directory are hashed with explicit separators so that no two distinct
// invocations can collide by concatenation.
func ComputeUnitID(spec ProcessSpec) UnitID {
	h := xxhash.New()

	_, _ = h.WriteString(spec.Program)
	_, _ = h.Write([]byte{0})

	for _, arg := range spec.Args {
		_, _ = h.WriteString(arg)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})

	keys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{'='})
		_, _ = h.WriteString(spec.Env[k])
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})

	_, _ = h.WriteString(spec.Cwd)

	return UnitID(fmt.Sprintf("%016x", h.Sum64()))
}
