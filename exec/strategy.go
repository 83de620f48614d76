package exec

import "io"

// Strategy selects how a Command is launched. The set of strategies is closed:
// Captured, Terminal and Foreground.
type Strategy interface {
	name() string
	start(c *Command) (int, error)
}

// Captured runs the child with its standard output and standard error
// connected to two pipes and copies each into its own sink. The child shares
// the caller's standard input.
//
// Standard output is read to completion before standard error is read at all,
// so every byte of Stdout is delivered before the first byte of Stderr. A child
// that fills the standard error pipe buffer before closing standard output will
// block forever; use Terminal for chatty children.
type Captured struct {
	// Stdout receives the child's standard output. Nil means os.Stdout.
	Stdout io.Writer
	// Stderr receives the child's standard error. Nil means os.Stderr.
	Stderr io.Writer
}

// Terminal runs the child attached to a freshly allocated pseudo-terminal and
// copies the interleaved output into a single sink. Libraries in the child see
// an interactive terminal and the line discipline translates "\n" to "\r\n".
type Terminal struct {
	// Output receives everything the child writes to the terminal. Nil means os.Stdout.
	Output io.Writer
}

// Foreground replaces the calling process with the child, attached to the
// caller's controlling terminal. On success Run never returns.
type Foreground struct{}

func (Captured) name() string   { return "captured" }
func (Terminal) name() string   { return "terminal" }
func (Foreground) name() string { return "foreground" }
