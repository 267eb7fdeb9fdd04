// Package planner implements the incremental rebuild planner: it owns the
// cached unit graph and the package scope, and decides per change batch
// whether cached compiler invocations can be replayed or the external build
// tool has to run.
package planner

import (
	"slices"
	"sync"

	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/replan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome is the kind of decision the package-scope gate produced.
type Outcome string

const (
	// OutcomeFullRebuild means the cache cannot answer the query; the
	// external build tool must be invoked with the decision's scope.
	OutcomeFullRebuild Outcome = "FullRebuild"
	// OutcomeExecute means the decision's job queue can be replayed directly.
	OutcomeExecute Outcome = "Execute"
)

// Decision is the result of one planner query.
type Decision struct {
	Outcome Outcome

	// Scope lists the packages to hand to the external build tool. Only set
	// for OutcomeFullRebuild.
	Scope []string

	// Queue is the ordered list of invocations to replay, dependencies
	// first. Only set for OutcomeExecute.
	Queue domain.JobQueue
}

// Planner owns the cached graph and the package scope. Queries are read-only
// and purely computational; a rebuilt graph is constructed off to the side by
// the caller and installed atomically, so concurrent readers never observe a
// partially built graph.
type Planner struct {
	owner  ports.PackageOwner
	logger ports.Logger

	mu    sync.RWMutex
	graph *domain.Graph
	scope map[string]struct{}
}

// NewPlanner creates a Planner with an empty cache and scope.
func NewPlanner(owner ports.PackageOwner, logger ports.Logger) *Planner {
	return &Planner{
		owner:  owner,
		logger: logger,
		scope:  make(map[string]struct{}),
	}
}

// Install validates the given graph and swaps it in as the current cache.
// The scope grows by the given packages; it never shrinks within a session.
func (p *Planner) Install(g *domain.Graph, packages []string) error {
	if g == nil {
		return zerr.New("cannot install a nil graph")
	}
	if err := g.Validate(); err != nil {
		return zerr.Wrap(err, "refusing to install inconsistent graph")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.graph = g
	for _, pkg := range packages {
		p.scope[pkg] = struct{}{}
	}
	return nil
}

// Reset discards the cached graph and the package scope.
func (p *Planner) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.graph = nil
	p.scope = make(map[string]struct{})
}

// Ready reports whether a graph is installed.
func (p *Planner) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.graph != nil && p.graph.Len() > 0
}

// Scope returns the current package scope, sorted.
func (p *Planner) Scope() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return sortedScope(p.scope)
}

// DirtyUnits resolves the given changed files against the cached graph and
// returns the directly affected units. Exposed for inspection tooling.
func (p *Planner) DirtyUnits(files []string) ([]domain.UnitID, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.graph == nil {
		return nil, nil
	}
	return DirtySet(p.graph, files)
}

// Decide runs the package-scope gate for a batch of changed files:
//
//  1. no cached graph: full rebuild with the default scope;
//  2. a changed file owned by a package outside the current scope: full
//     rebuild with the scope expanded by the newly seen packages;
//  3. a dirty build script: full rebuild with the current scope, since
//     build-script side effects are not safely incrementalizable;
//  4. otherwise replay the transitively closed, topologically sorted dirty
//     set, falling back to a full rebuild when any invocation is missing
//     from the cache.
func (p *Planner) Decide(files []string) (Decision, error) {
	if len(files) == 0 {
		return Decision{}, domain.ErrNoChangedFiles
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.graph == nil || p.graph.Len() == 0 {
		return p.fullRebuild(p.defaultScope()), nil
	}

	if expanded, ok := p.expandedScope(files); ok {
		return p.fullRebuild(expanded), nil
	}

	dirty, err := DirtySet(p.graph, files)
	if err != nil {
		return Decision{}, err
	}
	if len(dirty) == 0 {
		// Files are inside known packages but match no unit; the cache has
		// no answer for them.
		return p.fullRebuild(p.defaultScope()), nil
	}

	for _, id := range dirty {
		if unit, ok := p.graph.Unit(id); ok && unit.Kind == domain.KindBuildScript {
			return p.fullRebuild(sortedScope(p.scope)), nil
		}
	}

	closure := TransitiveClosure(p.graph, dirty)
	order := TopoSort(p.graph, closure)

	queue, err := BuildJobQueue(p.graph, order)
	if err != nil {
		// The cache is stale or incomplete for this sub-graph.
		p.logger.Error(zerr.Wrap(err, "cache insufficient, delegating to build tool"))
		return p.fullRebuild(p.defaultScope()), nil
	}

	return Decision{Outcome: OutcomeExecute, Queue: queue}, nil
}

// expandedScope maps every changed file to its owning package and reports
// the union of current scope and newly seen packages when any owner lies
// outside the scope.
func (p *Planner) expandedScope(files []string) ([]string, bool) {
	grew := false
	union := make(map[string]struct{}, len(p.scope))
	for pkg := range p.scope {
		union[pkg] = struct{}{}
	}

	for _, file := range files {
		pkg, ok := p.owner.Owner(file)
		if !ok {
			continue
		}
		if _, known := union[pkg]; !known {
			union[pkg] = struct{}{}
			grew = true
		}
	}

	if !grew {
		return nil, false
	}
	return sortedScope(union), true
}

func (p *Planner) fullRebuild(scope []string) Decision {
	return Decision{Outcome: OutcomeFullRebuild, Scope: scope}
}

func (p *Planner) defaultScope() []string {
	return p.owner.Packages()
}

func sortedScope(scope map[string]struct{}) []string {
	pkgs := make([]string, 0, len(scope))
	for pkg := range scope {
		pkgs = append(pkgs, pkg)
	}
	slices.Sort(pkgs)
	return pkgs
}
