//go:build unix

package terminal

import (
	"os"
	"syscall"
)

var watchedSignals = []os.Signal{syscall.SIGWINCH, os.Interrupt, syscall.SIGTERM}

func isResize(sig os.Signal) bool {
	return sig == syscall.SIGWINCH
}
