// Package planfile implements loading and persisting the serialized build
// plan: a JSON document whose invocations reference their dependencies by
// index into the same list.
package planfile

import (
	"encoding/json"
	"slices"

	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/zerr"
)

// rawPlan mirrors the on-disk plan document.
type rawPlan struct {
	Invocations []rawInvocation `json:"invocations"`
}

type rawInvocation struct {
	Deps    []int             `json:"deps"`
	Outputs []string          `json:"outputs,omitempty"`
	Links   map[string]string `json:"links,omitempty"`
	Program string            `json:"program"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
	Cwd     string            `json:"cwd,omitempty"`

	// Extensions over the base format, both optional: Kind marks
	// build-script invocations, Src records the resolved primary source
	// file for the dirty-file heuristic.
	Kind string `json:"kind,omitempty"`
	Src  string `json:"src,omitempty"`
}

// Parse decodes and validates a serialized plan and constructs the unit
// graph. Every dependency index must resolve to another element of the
// invocation list; any out-of-range index rejects the whole document and no
// partial graph is returned.
//
// Records collapsing to the same identity coalesce into a single graph node;
// the first materialized record wins.
func Parse(data []byte) (*domain.Graph, error) {
	var raw rawPlan
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, "failed to decode build plan")
	}

	for i, inv := range raw.Invocations {
		for _, dep := range inv.Deps {
			if dep < 0 || dep >= len(raw.Invocations) {
				err := zerr.With(domain.ErrInvalidPlan, "invocation", i)
				return nil, zerr.With(err, "dep_index", dep)
			}
		}
	}

	units := make([]domain.Unit, len(raw.Invocations))
	for i, inv := range raw.Invocations {
		units[i] = unitFromRaw(inv)
	}

	g := domain.NewGraph()
	for i, inv := range raw.Invocations {
		deps := make([]domain.Unit, 0, len(inv.Deps))
		for _, dep := range inv.Deps {
			deps = append(deps, units[dep])
		}
		g.Add(units[i], deps...)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Marshal serializes a graph back to the plan document. Invocations are
// emitted in sorted identity order so the output is deterministic.
func Marshal(g *domain.Graph) ([]byte, error) {
	ids := g.UnitIDs()
	index := make(map[domain.UnitID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	raw := rawPlan{Invocations: make([]rawInvocation, 0, len(ids))}
	for _, id := range ids {
		unit, _ := g.Unit(id)

		deps := make([]int, 0)
		for _, dep := range g.Deps(id) {
			deps = append(deps, index[dep])
		}
		slices.Sort(deps)

		kind := ""
		if unit.Kind == domain.KindBuildScript {
			kind = string(domain.KindBuildScript)
		}

		raw.Invocations = append(raw.Invocations, rawInvocation{
			Deps:    deps,
			Outputs: unit.Outputs,
			Links:   unit.Links,
			Program: unit.Invocation.Program,
			Args:    unit.Invocation.Args,
			Env:     unit.Invocation.Env,
			Cwd:     unit.Invocation.Cwd,
			Kind:    kind,
			Src:     unit.SrcPath,
		})
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode build plan")
	}
	return data, nil
}

func unitFromRaw(inv rawInvocation) domain.Unit {
	spec := domain.ProcessSpec{
		Program: inv.Program,
		Args:    inv.Args,
		Env:     inv.Env,
		Cwd:     inv.Cwd,
	}

	kind := domain.KindCompile
	if inv.Kind == string(domain.KindBuildScript) {
		kind = domain.KindBuildScript
	}

	return domain.Unit{
		ID:         domain.ComputeUnitID(spec),
		Kind:       kind,
		Invocation: spec,
		Outputs:    inv.Outputs,
		Links:      inv.Links,
		SrcPath:    inv.Src,
	}
}
