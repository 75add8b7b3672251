package toolchain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCompiler means the required compiler front-end is not on PATH.
	ErrMissingCompiler = errors.New("required compiler not found")

	// ErrInstallFailed means the cross-compilation helper could not be installed.
	ErrInstallFailed = errors.New("cross helper installation failed")
)

// MissingToolError names the tool that was not found and how to get it.
type MissingToolError struct {
	Tool string
	Hint string
}

func (e *MissingToolError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%q not found on PATH", e.Tool)
	}
	return fmt.Sprintf("%q not found on PATH: %s", e.Tool, e.Hint)
}

// Unwrap lets errors.Is match ErrMissingCompiler.
func (e *MissingToolError) Unwrap() error { return ErrMissingCompiler }

// InstallError records why the cross helper install failed.
type InstallError struct {
	Command  string
	ExitCode int
	Err      error // start failure, nil when the installer ran and exited nonzero
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("installing cross helper (%s): %v", e.Command, e.Err)
	}
	return fmt.Sprintf("installing cross helper (%s): exit status %d", e.Command, e.ExitCode)
}

// Unwrap lets errors.Is match ErrInstallFailed.
func (e *InstallError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInstallFailed, e.Err}
	}
	return []error{ErrInstallFailed}
}
