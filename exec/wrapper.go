package exec

// Wrapper creates Commands for one program with a shared configuration.
// It is convenient for tools that are invoked often with different arguments
// (git, make, cmake):
//
//	git := exec.NewWrapper("git", exec.WithErrorPolicy(exec.PolicyReturn))
//	code, err := git.Command("fetch").Run(exec.Captured{})
type Wrapper struct {
	program string
	opts    []Option
}

// NewWrapper creates a Wrapper for program. The options are applied, in
// order, to every Command the Wrapper creates.
func NewWrapper(program string, opts ...Option) *Wrapper {
	return &Wrapper{
		program: program,
		opts:    append([]Option(nil), opts...),
	}
}

// Program returns the wrapped program.
func (w *Wrapper) Program() string {
	return w.program
}

// With returns a new Wrapper that applies opts after the existing options.
func (w *Wrapper) With(opts ...Option) *Wrapper {
	combined := make([]Option, 0, len(w.opts)+len(opts))
	combined = append(combined, w.opts...)
	combined = append(combined, opts...)
	return &Wrapper{program: w.program, opts: combined}
}

// Command returns a fresh Command running the wrapped program with args.
func (w *Wrapper) Command(args ...string) *Command {
	c := New(w.program, args...)
	for _, opt := range w.opts {
		opt(c)
	}
	return c
}
