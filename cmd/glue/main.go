// Command glue runs programs through the glue execution engine.
//
//	glue run -- make -j8
//	glue run --line "cmake --build build"
//	glue pty -- ls --color=auto
//	glue exec -- $SHELL
//	glue root
//	glue describe -- git commit -m "fix build"
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
