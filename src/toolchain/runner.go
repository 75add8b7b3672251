// Package toolchain locates and drives the external tools a build needs:
// the compiler front-end, an optional container engine and the optional
// cross-compilation helper. All process execution goes through Runner so
// the rest of the orchestrator can be exercised with a fake.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is a single external invocation.
type Command struct {
	Name   string
	Args   []string
	Dir    string    // working directory, empty = inherit
	Stdout io.Writer // nil = runner default
	Stderr io.Writer // nil = runner default
}

// String renders the command line for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner is the process boundary.
type Runner interface {
	// LookPath resolves an executable name on the search path.
	LookPath(name string) (string, error)
	// Run executes c, streaming its output, and returns its exit status.
	// The error is non-nil only when the process could not be started or
	// waited on; a nonzero exit is reported through the code alone.
	Run(ctx context.Context, c Command) (int, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecRunner creates an ExecRunner wired to the process's stdio.
func NewExecRunner(verbose bool) *ExecRunner {
	return &ExecRunner{
		Verbose: verbose,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run implements Runner. Output is attached directly to the writers so
// long builds show progress as it happens.
func (r *ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	stdout, stderr := c.Stdout, c.Stderr
	if stdout == nil {
		stdout = r.Stdout
	}
	if stderr == nil {
		stderr = r.Stderr
	}

	if r.Verbose {
		fmt.Fprintf(r.Stderr, "exec: %s\n", c)
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("running %s: %w", c.Name, err)
}
