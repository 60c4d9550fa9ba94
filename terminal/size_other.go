//go:build !unix

package terminal

import "golang.org/x/term"

// Size returns the window size of the terminal behind fd
func Size(fd int) (cols, rows int, err error) {
	return term.GetSize(fd)
}
