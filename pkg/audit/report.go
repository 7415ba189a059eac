package audit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Report prints the findings list. With no findings it prints the
// all-clear line and nothing else.
func Report(w io.Writer, findings []Finding) {
	if len(findings) == 0 {
		color.New(color.FgGreen).Fprintln(w, "No compromised versions detected.")
		return
	}

	red := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)

	red.Fprintf(w, "Found %d compromised package version(s):\n", len(findings))
	for _, f := range findings {
		tag := "transitive"
		if f.Direct {
			tag = "direct"
		}
		fmt.Fprintf(w, "  - %s ", red.Sprint(f.Spec()))
		dim.Fprintf(w, "(%s, %s)\n", f.Lockfile, tag)
	}
}
