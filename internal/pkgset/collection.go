// Package pkgset collects the third-party packages declared by a tree of
// build targets and resolves them into a single install order.
//
// Every target contributes its packages at depth 0. Merging a child
// collection pushes everything it carries one level deeper, so packages
// needed by leaf targets end up with the largest depth. Resolution keeps one
// entry per package identity at its deepest depth, rejects a package name
// declared with more than one version, and orders the result deepest first.
package pkgset

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type declaration struct {
	pkg    Package
	target string
	depth  int
}

// Collection accumulates package declarations from one or more targets.
type Collection struct {
	decls []declaration
}

// NewCollection starts a collection with the packages of a single target.
func NewCollection(target string, pkgs []Package) *Collection {
	c := &Collection{decls: make([]declaration, 0, len(pkgs))}
	for _, p := range pkgs {
		c.decls = append(c.decls, declaration{pkg: p, target: target})
	}
	return c
}

// Merge appends child's declarations one level deeper than they were.
func (c *Collection) Merge(child *Collection) {
	if child == nil {
		return
	}
	for _, d := range child.decls {
		d.depth++
		c.decls = append(c.decls, d)
	}
}

// Len reports the number of declarations, duplicates included.
func (c *Collection) Len() int {
	return len(c.decls)
}

// Collect builds the collection for t and all of its descendants.
func Collect(ctx context.Context, t Target) (*Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := NewCollection(t.Name, t.Packages)
	for _, child := range t.Children {
		sub, err := Collect(ctx, child)
		if err != nil {
			return nil, err
		}
		c.Merge(sub)
	}
	return c, nil
}

// Resolved is a de-duplicated package with the depth it will be installed at.
type Resolved struct {
	Package
	Depth   int      `json:"depth"`
	Targets []string `json:"targets"`
}

// VersionConflictError reports a package declared with different versions.
type VersionConflictError struct {
	Name     string
	Versions []string
	Targets  []string
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("version conflict for %s: versions [%s] declared by [%s]",
		e.Name, strings.Join(e.Versions, ", "), strings.Join(e.Targets, ", "))
}

// Resolve de-duplicates the collection and returns packages deepest first.
// Packages at equal depth keep the order in which they were first declared.
func (c *Collection) Resolve(ctx context.Context) ([]Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.checkConflicts(); err != nil {
		return nil, err
	}

	byID := make(map[string]int)
	var out []Resolved
	for _, d := range c.decls {
		id := d.pkg.ID()
		i, seen := byID[id]
		if !seen {
			byID[id] = len(out)
			out = append(out, Resolved{Package: d.pkg, Depth: d.depth, Targets: []string{d.target}})
			continue
		}
		if d.depth > out[i].Depth {
			out[i].Depth = d.depth
		}
		out[i].Targets = appendUnique(out[i].Targets, d.target)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Depth > out[j].Depth
	})
	return out, nil
}

func (c *Collection) checkConflicts() error {
	type seen struct {
		versions []string
		targets  []string
	}
	byName := make(map[string]*seen)
	var names []string
	for _, d := range c.decls {
		s, ok := byName[d.pkg.Name]
		if !ok {
			s = &seen{}
			byName[d.pkg.Name] = s
			names = append(names, d.pkg.Name)
		}
		s.versions = appendUnique(s.versions, d.pkg.Version)
		s.targets = appendUnique(s.targets, d.target)
	}

	for _, name := range names {
		s := byName[name]
		if len(s.versions) > 1 {
			return &VersionConflictError{Name: name, Versions: s.versions, Targets: s.targets}
		}
	}
	return nil
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
