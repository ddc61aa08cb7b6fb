package app

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestOperationError(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", &OperationError{Op: "poll"}, "poll"},
		{"with target", NewOperationError("save", "/a.txt", io.ErrShortWrite), "save /a.txt: short write"},
		{"with context", NewOperationError("edit", "/a.txt", io.EOF).WithContext("Enter"), "edit /a.txt (Enter): EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	err := NewOperationError("save", "/a.txt", io.ErrShortWrite)
	if !errors.Is(err, io.ErrShortWrite) {
		t.Error("errors.Is does not reach the wrapped error")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil || nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("nil OperationError methods must be safe")
	}
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "backend", Err: io.EOF}
	if err.Error() != "init backend: EOF" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, io.EOF) {
		t.Error("InitError does not unwrap")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("boom", "")
	if err.Error() != "panic: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap() of a non-error value must be nil")
	}

	wrapped := NewRecoveredPanicError(io.ErrUnexpectedEOF, "goroutine 1")
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("panic with an error value does not unwrap")
	}
	if !strings.HasSuffix(wrapped.Error(), "\ngoroutine 1") {
		t.Errorf("Error() = %q, want the stack appended", wrapped.Error())
	}
}
