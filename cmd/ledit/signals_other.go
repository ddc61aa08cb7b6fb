//go:build !unix

package main

import (
	"os"
	"syscall"
)

var terminationSignals = []os.Signal{syscall.SIGTERM}
