package deptree

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"fxtool/core/resource"
	"fxtool/core/servercfg"

	"go.uber.org/zap"
)

// Exports calls, the implicit dependency manifests don't declare:
//
//	exports.resource:fn / exports["foo-resource"]:fn   (Lua)
//	exports.resource.fn / exports['bar.resource']['fn'] (JS)
var (
	luaExports = regexp.MustCompile(`(?m)(?:^|[ \t])exports(?:\.(\w+)|\[\s*["']([^"']+)["']\s*\]):`)
	jsExports  = regexp.MustCompile(`(?m)(?:^|[ \t])exports(?:\.(\w+)|\[\s*["']([^"']+)["']\s*\])[.\[]`)
)

// Options configures a dependency scan.
type Options struct {
	// ConfigPath limits the scan to resources started by this server.cfg.
	// Empty means no filtering.
	ConfigPath      string
	IgnoreResources []string
	IgnorePaths     []string
}

// Service builds resource dependency trees.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new deptree service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Tree maps each resource to the resources it depends on, in discovery
// order.
type Tree struct {
	// Order lists resources with at least one dependency.
	Order []string
	Deps  map[string][]string
}

// Scan walks the resources under root and collects dependencies from
// manifests (dependency keys and @resource script refs) and from exports
// usage inside each resource's scripts.
func (s *Service) Scan(root string, opts Options) (*Tree, error) {
	scanOpts := resource.ScanOptions{
		IgnoreResources: opts.IgnoreResources,
		IgnorePaths:     opts.IgnorePaths,
	}

	if opts.ConfigPath != "" {
		cfg, err := servercfg.Load(opts.ConfigPath, s.logger)
		if err != nil {
			return nil, err
		}
		scanOpts.Config = cfg
	}

	resources, err := resource.Scan(root, scanOpts, s.logger)
	if err != nil {
		return nil, err
	}

	tree := &Tree{Deps: map[string][]string{}}

	for _, r := range resources {
		for _, dep := range r.Manifest.Dependencies() {
			tree.add(r.Name, dep)
		}

		for _, f := range r.ScriptFiles() {
			s.logger.Debug("processing script",
				zap.String("type", f.Type),
				zap.String("path", f.Path),
			)
			s.scanScript(tree, r, f)
		}
	}

	return tree, nil
}

func (s *Service) scanScript(tree *Tree, r *resource.Resource, f resource.ScriptFile) {
	contents, err := resource.ReadScript(f)
	if err != nil {
		s.logger.Error("unable to read script", zap.String("path", f.Path), zap.Error(err))
		return
	}

	pattern := luaExports
	if filepath.Ext(f.Path) == ".js" {
		pattern = jsExports
	}

	for _, match := range pattern.FindAllStringSubmatch(contents, -1) {
		dep := match[1]
		if dep == "" {
			dep = match[2]
		}

		if tree.add(r.Name, dep) {
			s.logger.Debug("found dependency",
				zap.String("resource", r.Name),
				zap.String("dependency", dep),
			)
		}
	}
}

// add records a dependency, reporting whether it was new.
func (t *Tree) add(name, dep string) bool {
	if dep == "" || dep == name {
		return false
	}

	deps, ok := t.Deps[name]
	if !ok {
		t.Order = append(t.Order, name)
	}

	for _, d := range deps {
		if d == dep {
			return false
		}
	}

	t.Deps[name] = append(deps, dep)
	return true
}

// Reversed returns the inverted tree: each dependency mapped to the
// resources that use it, sorted by dependency name.
func (t *Tree) Reversed() *Tree {
	out := &Tree{Deps: map[string][]string{}}

	for _, name := range t.Order {
		for _, dep := range t.Deps[name] {
			out.add(dep, name)
		}
	}

	sort.Strings(out.Order)
	return out
}

// Lines renders the tree as an indented list. Dependency headers are list
// items; dependent headers stand on their own.
func (t *Tree) Lines(dependents bool) []string {
	var lines []string

	for _, name := range t.Order {
		if dependents {
			lines = append(lines, name+" - dependent resources:")
		} else {
			lines = append(lines, fmt.Sprintf("- %s - depends on:", name))
		}
		for _, dep := range t.Deps[name] {
			lines = append(lines, "  - "+dep)
		}
	}

	return lines
}
