//go:build linux

package exec

import "golang.org/x/sys/unix"

// dup2 duplicates oldfd onto newfd. linux/arm64 has no dup2 syscall.
func dup2(oldfd, newfd int) error {
	if oldfd == newfd {
		return nil
	}
	return unix.Dup3(oldfd, newfd, 0)
}
