//go:build !unix

package terminal

import "os"

// No resize signal here; size is only queried at startup
var watchedSignals = []os.Signal{os.Interrupt}

func isResize(os.Signal) bool { return false }
