package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// The two manifest generations, by file name. The index+1 is the major
// version.
var majorVersions = []string{
	"__resource.lua",
	"fxmanifest.lua",
}

// FileNames lists the recognized manifest file names.
func FileNames() []string {
	out := make([]string, len(majorVersions))
	copy(out, majorVersions)
	return out
}

// Entry is one manifest statement. Sub carries the secondary key of
// data_file entries and is empty otherwise.
type Entry struct {
	Key    string
	Sub    string
	Values []string
}

// Manifest is a parsed fxmanifest.lua or __resource.lua.
type Manifest struct {
	Path  string
	Major int

	entries []Entry
	index   map[[2]string]int
}

var (
	manifestKey = regexp.MustCompile(`(?m)^[ \t]*(\w+)\s*`)

	luaBlockComment = regexp.MustCompile(`(?s)--\[\[.*?\]\](?:--)?`)
	luaLineComment  = regexp.MustCompile(`--[^\n]*`)
)

// Parse reads and parses a manifest file.
func Parse(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return ParseString(abs, string(contents))
}

// ParseString parses manifest contents. The path is used for version
// detection and error reporting only.
func ParseString(path, contents string) (*Manifest, error) {
	major := 0
	for i, name := range majorVersions {
		if filepath.Base(path) == name {
			major = i + 1
		}
	}
	if major == 0 {
		return nil, fmt.Errorf("%s: not a recognized manifest file name", path)
	}

	m := &Manifest{
		Path:  path,
		Major: major,
		index: map[[2]string]int{},
	}

	contents = StripLuaComments(contents)

	lastEnd := 0
	for _, idx := range manifestKey.FindAllStringSubmatchIndex(contents, -1) {
		// Skip words that sit inside an already-consumed value.
		if idx[0] < lastEnd {
			continue
		}

		key := contents[idx[2]:idx[3]]
		start := idx[1]

		sub := ""
		if key == "data_file" || key == "data_files" {
			var n int
			var err error
			sub, n, err = readQuoted(contents[start:])
			if err != nil {
				return nil, parseError(path, contents, idx[0], key, err)
			}
			start += n
			for start < len(contents) && (contents[start] == ' ' || contents[start] == '\t') {
				start++
			}
		}

		values, n, err := parseValue(contents[start:])
		if err != nil {
			return nil, parseError(path, contents, idx[0], key, err)
		}
		lastEnd = start + n

		m.add(key, sub, values)
	}

	return m, nil
}

func parseError(path, contents string, offset int, key string, err error) error {
	line := strings.Count(contents[:offset], "\n") + 1
	return fmt.Errorf("%s:%d: key %q: %w", path, line, key, err)
}

func (m *Manifest) add(key, sub string, values []string) {
	id := [2]string{key, sub}
	if i, ok := m.index[id]; ok {
		for _, v := range values {
			if !contains(m.entries[i].Values, v) {
				m.entries[i].Values = append(m.entries[i].Values, v)
			}
		}
		return
	}

	m.index[id] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Sub: sub, Values: values})
}

func contains(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

// Entries returns all statements in source order.
func (m *Manifest) Entries() []Entry {
	return m.entries
}

// Get returns the values of all entries with the given key, ignoring
// secondary keys.
func (m *Manifest) Get(key string) []string {
	var out []string
	for _, e := range m.entries {
		if e.Key == key {
			out = append(out, e.Values...)
		}
	}
	return out
}

// Version returns the declared manifest version: fx_version for
// fxmanifest.lua, resource_manifest_version for __resource.lua.
func (m *Manifest) Version() (string, error) {
	var key string
	switch m.Major {
	case 1:
		key = "resource_manifest_version"
	case 2:
		key = "fx_version"
	default:
		return "", fmt.Errorf("%s: unmatched major version", m.Path)
	}

	vals := m.Get(key)
	if len(vals) == 0 {
		return "", fmt.Errorf("%s: no %s", m.Path, key)
	}

	return vals[0], nil
}

// ScriptTypes lists the manifest script key prefixes.
var ScriptTypes = []string{"client", "server", "shared"}

// Scripts returns the script path globs declared per script type. Entries
// starting with @ reference other resources and are included as-is.
func (m *Manifest) Scripts() map[string][]string {
	out := map[string][]string{}
	for _, st := range ScriptTypes {
		vals := append(m.Get(st+"_script"), m.Get(st+"_scripts")...)
		if len(vals) > 0 {
			out[st] = vals
		}
	}
	return out
}

// Dependencies returns declared dependencies plus the resources referenced
// through @resource/ script paths.
func (m *Manifest) Dependencies() []string {
	var out []string
	add := func(v string) {
		if v != "" && !contains(out, v) {
			out = append(out, v)
		}
	}

	for _, v := range m.Get("dependency") {
		add(v)
	}
	for _, v := range m.Get("dependencies") {
		add(v)
	}
	scripts := m.Scripts()
	for _, st := range ScriptTypes {
		for _, v := range scripts[st] {
			if strings.HasPrefix(v, "@") {
				add(strings.SplitN(v[1:], "/", 2)[0])
			}
		}
	}

	return out
}

// StripLuaComments removes Lua block and line comments while preserving line
// numbers.
func StripLuaComments(contents string) string {
	contents = luaBlockComment.ReplaceAllStringFunc(contents, func(s string) string {
		return strings.Repeat("\n", strings.Count(s, "\n"))
	})
	return luaLineComment.ReplaceAllString(contents, "")
}
