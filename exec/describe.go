package exec

import (
	"fmt"
	"io"
)

// describe writes the DRY:/LOG: block for the command to w.
func (c *Command) describe(w io.Writer) {
	marker := "LOG"
	if c.dryRun {
		marker = "DRY"
	}
	fmt.Fprintf(w, "%s: %s\n", marker, c.String())
	if c.dir != "" {
		fmt.Fprintf(w, "\t- executing from directory: %q\n", c.dir)
	}
	if n := len(c.env); n > 0 {
		fmt.Fprintf(w, "\t- overriding %d environment variables\n", n)
	}
}
