package build

import (
	"fmt"
	"time"

	"github.com/sofmeright/flipfreight/src/target"
)

// Result captures the outcome of one build invocation.
type Result struct {
	Target    target.Target
	Succeeded bool
	ExitCode  int // external tool's exit status, -1 if it never ran
	Command   string
	// ArtifactPath is the expected binary path relative to the base
	// directory. Empty when the build failed or the target is run-only.
	ArtifactPath string
	Duration     time.Duration
	Err          error // start failure, nil when the tool ran
}

// Status returns "success" or "failed" for output.StatusIcon.
func (r *Result) Status() string {
	if r.Succeeded {
		return "success"
	}
	return "failed"
}

// Error returns nil on success, otherwise an *ExternalError.
func (r *Result) Error() error {
	if r.Succeeded {
		return nil
	}
	return &ExternalError{Target: r.Target.Name, Command: r.Command, Code: r.ExitCode, Err: r.Err}
}

// ExternalError is a failed external build or run.
type ExternalError struct {
	Target  string
	Command string
	Code    int
	Err     error
}

func (e *ExternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s failed: %v", e.Target, e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %s exited with status %d", e.Target, e.Command, e.Code)
}

func (e *ExternalError) Unwrap() error { return e.Err }

// ExitCode is the status a direct invocation should exit with.
func (e *ExternalError) ExitCode() int {
	if e.Code > 0 {
		return e.Code
	}
	return 1
}
