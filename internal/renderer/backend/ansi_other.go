//go:build !unix

package backend

import (
	"errors"
	"os"
	"time"
)

// ANSI is unavailable on this platform.
type ANSI struct{ Backend }

// NewANSI returns a backend whose Init always fails.
func NewANSI(_, _ *os.File, _ time.Duration) *ANSI {
	return &ANSI{}
}

func (a *ANSI) Init() error {
	return errors.New("ansi backend requires a unix terminal")
}

func (a *ANSI) Shutdown() {}
