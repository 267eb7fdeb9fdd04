package planner

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/replan/internal/core/domain"
	"go.trai.ch/zerr"
)

// DirtySet maps changed file paths to the units whose source they belong to.
//
// A unit matches when the changed file lies at or below the parent directory
// of the unit's resolved source file; among the matches for one file only
// the units rooted at the most specific directory are kept, and ties at the
// identical directory (e.g. a library and its test harness) are all kept.
//
// A build-script unit matches its own source path exactly, taking priority
// over the directory rule. It also participates in directory matching like
// every other unit, rooted at the script's parent: a crate-root edit that no
// more specific unit claims falls to the build script, and the gate defers
// those to the build tool.
//
// All paths must be absolute; a relative path is a contract violation and
// fails fast. A changed file matching nothing contributes nothing.
func DirtySet(g *domain.Graph, files []string) ([]domain.UnitID, error) {
	scripts := make(map[string]domain.UnitID)
	srcDirs := make(map[domain.UnitID]string)

	for _, id := range g.UnitIDs() {
		unit, _ := g.Unit(id)
		if unit.SrcPath == "" {
			continue
		}
		if !filepath.IsAbs(unit.SrcPath) {
			return nil, zerr.With(domain.ErrRelativePath, "src_path", unit.SrcPath)
		}
		if unit.Kind == domain.KindBuildScript {
			scripts[filepath.Clean(unit.SrcPath)] = id
		}
		srcDirs[id] = filepath.Dir(unit.SrcPath)
	}

	result := make(map[domain.UnitID]struct{})

	for _, file := range files {
		if !filepath.IsAbs(file) {
			return nil, zerr.With(domain.ErrRelativePath, "path", file)
		}
		file = filepath.Clean(file)

		if id, ok := scripts[file]; ok {
			result[id] = struct{}{}
			continue
		}

		markMostSpecific(file, srcDirs, result)
	}

	ids := make([]domain.UnitID, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// markMostSpecific adds every unit whose source directory is the longest
// enclosing directory of file to the result set.
func markMostSpecific(file string, srcDirs map[domain.UnitID]string, result map[domain.UnitID]struct{}) {
	fileComponents := pathComponents(file)

	best := 0
	var bestIDs []domain.UnitID

	for id, dir := range srcDirs {
		dirComponents := pathComponents(dir)
		match := matchingComponents(fileComponents, dirComponents)
		if match < len(dirComponents) {
			// The file is not at or below the unit's directory.
			continue
		}
		switch {
		case match > best:
			best = match
			bestIDs = bestIDs[:0]
			bestIDs = append(bestIDs, id)
		case match == best:
			bestIDs = append(bestIDs, id)
		}
	}

	for _, id := range bestIDs {
		result[id] = struct{}{}
	}
}

// pathComponents splits a cleaned absolute path into its components, without
// the root.
func pathComponents(p string) []string {
	p = filepath.Clean(p)
	p = strings.TrimPrefix(p, string(filepath.Separator))
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(p, string(filepath.Separator))
}

// matchingComponents counts the shared leading components of two paths.
func matchingComponents(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
