package resource

import (
	"regexp"
	"strings"

	"fxtool/core/manifest"
)

var (
	jsBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	jsLineComment  = regexp.MustCompile(`(?m)(^|[ \t])//[^\n]*`)
)

// StripComments blanks out comments for the language implied by the file
// extension, preserving line numbers. Unknown extensions pass through
// untouched.
func StripComments(ext, contents string) string {
	switch ext {
	case ".lua":
		return manifest.StripLuaComments(contents)
	case ".js":
		contents = jsBlockComment.ReplaceAllStringFunc(contents, func(s string) string {
			return strings.Repeat("\n", strings.Count(s, "\n"))
		})
		return jsLineComment.ReplaceAllString(contents, "$1")
	}
	return contents
}
