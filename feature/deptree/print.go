package deptree

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Print renders the tree to w with resource names highlighted.
func (t *Tree) Print(w io.Writer, dependents bool) {
	header := color.New(color.FgCyan, color.Bold)

	for _, name := range t.Order {
		if dependents {
			fmt.Fprintf(w, "%s - dependent resources:\n", header.Sprint(name))
		} else {
			fmt.Fprintf(w, "- %s - depends on:\n", header.Sprint(name))
		}
		for _, dep := range t.Deps[name] {
			fmt.Fprintf(w, "  - %s\n", dep)
		}
	}
}
