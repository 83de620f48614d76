package repo

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/afiolmahon/glue-shell/errors"
	"github.com/afiolmahon/glue-shell/exec"
)

// cmakeListsFile marks the root of a CMake project.
const cmakeListsFile = "CMakeLists.txt"

// ErrNotRepository is returned when the working directory is not inside a
// git work tree.
var ErrNotRepository = errors.New(errors.CodeNotFound, "not in a git repo")

// GitFunc returns a runner for one git invocation with the given arguments.
// The runner must not abort on a non-zero exit.
type GitFunc func(args ...string) exec.Runner

// Repo is a git work tree.
type Repo struct {
	// Root is the absolute path of the top-level directory of the work tree.
	Root string

	fs billy.Filesystem
}

// Option configures Find.
type Option func(*options)

type options struct {
	fs func(root string) billy.Filesystem
}

// WithFilesystem makes the returned Repo read files through fs instead of
// the local filesystem rooted at Root.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *options) {
		o.fs = func(string) billy.Filesystem { return fs }
	}
}

// Git is the default GitFunc. It runs the git binary from PATH under
// exec.PolicyReturn.
func Git(args ...string) exec.Runner {
	return gitWrapper.Command(args...)
}

var gitWrapper = exec.NewWrapper("git", exec.WithErrorPolicy(exec.PolicyReturn))

// Current returns the repository enclosing the working directory using the
// git binary from PATH.
func Current(opts ...Option) (*Repo, error) {
	return Find(Git, opts...)
}

// Find returns the repository enclosing the working directory by running
// `git rev-parse --show-toplevel` through git. Standard error of git is
// discarded.
func Find(git GitFunc, opts ...Option) (*Repo, error) {
	o := &options{fs: func(root string) billy.Filesystem { return osfs.New(root) }}
	for _, opt := range opts {
		opt(o)
	}

	var stdout bytes.Buffer
	code, err := git("rev-parse", "--show-toplevel").Run(exec.Captured{Stdout: &stdout, Stderr: io.Discard})
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, ErrNotRepository
	}

	root := strings.TrimSpace(stdout.String())
	if root == "" {
		return nil, errors.New(errors.CodeInternal, "git reported an empty repository root")
	}

	return &Repo{Root: root, fs: o.fs(root)}, nil
}

// IsCMakeProject reports whether the repository root contains CMakeLists.txt.
func (r *Repo) IsCMakeProject() bool {
	fs := r.fs
	if fs == nil {
		fs = osfs.New(r.Root)
	}
	info, err := fs.Stat(cmakeListsFile)
	return err == nil && !info.IsDir()
}
