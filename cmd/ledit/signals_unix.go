//go:build unix

package main

import (
	"os"
	"syscall"
)

// terminationSignals end the session after restoring the terminal.
var terminationSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
