package resource

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"fxtool/core/manifest"
	"fxtool/core/servercfg"

	"go.uber.org/zap"
)

// Category folders like [essentials] group resources but are not resources
// themselves.
var categoryFolder = regexp.MustCompile(`^\[[^\]]+\]$`)

var manifestNames = func() map[string]bool {
	m := map[string]bool{}
	for _, n := range manifest.FileNames() {
		m[n] = true
	}
	return m
}()

// Resource is one scanned server resource.
type Resource struct {
	Name     string
	Root     string
	RelPath  string
	Manifest *manifest.Manifest
}

// ScriptFile is a script declared by a resource manifest that exists on
// disk.
type ScriptFile struct {
	Path string
	// Type is the script side: client, server or shared.
	Type string
}

// ScanOptions filters a resource walk.
type ScanOptions struct {
	// IgnoreResources skips resources by name (no globbing).
	IgnoreResources []string
	// IgnorePaths skips whole relative paths, folders included (no globbing).
	IgnorePaths []string
	// Config, when set, limits the scan to resources the server config
	// starts.
	Config *servercfg.ServerConfig
}

// Scan walks a resources tree and returns the resources whose manifests
// parse. Unreadable or malformed manifests are logged and skipped so one
// broken resource does not hide the rest.
func Scan(root string, opts ScanOptions, logger *zap.Logger) ([]*Resource, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var resources []*Resource

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !manifestNames[d.Name()] {
			return nil
		}

		resourceRoot := filepath.Dir(path)
		name := filepath.Base(resourceRoot)

		rel, err := filepath.Rel(absRoot, resourceRoot)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if ignoredPath(rel, opts.IgnorePaths) {
			logger.Debug("skipping ignored path", zap.String("path", rel))
			return nil
		}

		logger.Debug("found manifest", zap.String("path", rel))

		if opts.Config != nil && !opts.Config.Enabled(name) {
			logger.Debug("skipping disabled resource", zap.String("resource", name))
			return nil
		}

		if contains(opts.IgnoreResources, name) {
			logger.Debug("skipping ignored resource", zap.String("resource", name))
			return nil
		}

		if categoryFolder.MatchString(name) {
			logger.Debug("skipping category folder", zap.String("path", rel))
			return nil
		}

		m, err := manifest.Parse(path)
		if err != nil {
			logger.Error("unable to parse manifest", zap.String("path", path), zap.Error(err))
			return nil
		}

		resources = append(resources, &Resource{
			Name:     name,
			Root:     resourceRoot,
			RelPath:  rel,
			Manifest: m,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resources, nil
}

// ScriptFiles expands the manifest's script globs into the .lua and .js
// files present under the resource root. @resource references are skipped;
// they point into other resources.
func (r *Resource) ScriptFiles() []ScriptFile {
	var files []ScriptFile
	seen := map[string]bool{}

	scripts := r.Manifest.Scripts()
	for _, st := range manifest.ScriptTypes {
		for _, pattern := range scripts[st] {
			if strings.HasPrefix(pattern, "@") {
				continue
			}

			for _, path := range glob(r.Root, pattern) {
				ext := filepath.Ext(path)
				if ext != ".lua" && ext != ".js" {
					continue
				}
				// A wide glob can catch the manifest itself.
				if manifestNames[filepath.Base(path)] {
					continue
				}
				if seen[path] {
					continue
				}
				seen[path] = true
				files = append(files, ScriptFile{Path: path, Type: st})
			}
		}
	}

	return files
}

func ignoredPath(rel string, ignored []string) bool {
	for _, p := range ignored {
		p = filepath.ToSlash(p)
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// ReadScript loads a script file with its comments blanked out, preserving
// line numbers.
func ReadScript(f ScriptFile) (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return StripComments(filepath.Ext(f.Path), string(b)), nil
}

// LineAt returns the 1-based line number of a byte offset.
func LineAt(contents string, offset int) int {
	return strings.Count(contents[:offset], "\n") + 1
}
