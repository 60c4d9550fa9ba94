//go:build unix

package terminal

import "golang.org/x/sys/unix"

// Size returns the window size of the terminal behind fd
func Size(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
