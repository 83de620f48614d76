// Package repo discovers the git repository enclosing the working directory.
//
// Discovery asks git itself through the execution engine:
//
//	r, err := repo.Current()
//	if errors.Is(err, repo.ErrNotRepository) {
//	    // not inside a work tree
//	}
//	fmt.Println(r.Root)
//
// The git invocation is injected as a GitFunc so callers and tests can
// substitute any exec.Runner. File checks on the discovered root go through a
// go-billy filesystem, the local one by default.
package repo
