package events

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Print renders an orphan report to w with event names highlighted.
func Print(w io.Writer, orphans []*Occurrence, triggers bool) {
	if triggers {
		fmt.Fprintln(w, "Triggered events possibly without handlers:")
	} else {
		fmt.Fprintln(w, "Handled events possibly never triggered:")
	}
	fmt.Fprintln(w)

	event := color.New(color.FgYellow, color.Bold)
	for _, o := range orphans {
		fmt.Fprintf(w, "# %s\n", event.Sprint(o.Event))
		for _, loc := range o.Locations() {
			fmt.Fprintf(w, "%s [%s]\n", loc, loc.Type)
		}
		fmt.Fprintln(w)
	}
}
