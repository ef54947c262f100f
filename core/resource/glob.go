package resource

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// glob matches a manifest script pattern against the files under root.
// Manifests use **, * and ? with / separators; filepath.Glob has no **, so
// the pattern is compiled to a regexp and matched against relative paths.
func glob(root, pattern string) []string {
	re, err := compileGlob(pattern)
	if err != nil {
		return nil
	}

	var out []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if re.MatchString(filepath.ToSlash(rel)) {
			out = append(out, path)
		}

		return nil
	})

	sort.Strings(out)
	return out
}

func compileGlob(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString(`^`)

	for i := 0; i < len(pattern); i++ {
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			// Any number of directories, including none.
			b.WriteString(`(?:[^/]+/)*`)
			i += 2
		case strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(`.*`)
			i++
		case pattern[i] == '*':
			b.WriteString(`[^/]*`)
		case pattern[i] == '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexp.QuoteMeta(string(pattern[i])))
		}
	}

	b.WriteString(`$`)
	return regexp.Compile(b.String())
}
