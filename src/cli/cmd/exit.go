package cmd

import (
	"errors"

	"github.com/sofmeright/flipfreight/src/build"
)

// ExitCode maps a command error to the process exit status. A failed
// external build or run keeps the tool's own status; every other failure
// exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ext *build.ExternalError
	if errors.As(err, &ext) {
		return ext.ExitCode()
	}
	return 1
}

// alreadyReported is true for errors the session prints in its report.
func alreadyReported(err error) bool {
	var ext *build.ExternalError
	return errors.As(err, &ext)
}
