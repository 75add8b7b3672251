package pack

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArtifact means the build reported success but the binary
	// is not at the expected path.
	ErrMissingArtifact = errors.New("build output missing")

	// ErrNotPackageable is returned for failed builds and run-only targets.
	ErrNotPackageable = errors.New("result is not packageable")
)

// MissingArtifactError names the path that was expected.
type MissingArtifactError struct {
	Target string
	Path   string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("%s build reported success but produced no binary at %s (check app_name and build.output_path)", e.Target, e.Path)
}

func (e *MissingArtifactError) Unwrap() error { return ErrMissingArtifact }
