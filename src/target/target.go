// Package target holds the fixed set of build targets offered on a host
// and resolves operator choices to one of them.
package target

import (
	"errors"
	"fmt"
	"strings"
)

// Platform is the operating system a target produces a binary for.
type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
)

// Kind separates the run-locally pseudo-target from release builds.
type Kind int

const (
	KindRelease Kind = iota
	KindRun
)

// RunName is the name of the run-locally pseudo-target.
const RunName = "run"

// ErrUnknownTarget is returned when a name is not in the host catalog.
var ErrUnknownTarget = errors.New("unknown target")

// Target is one buildable entry. Immutable once the catalog is built.
type Target struct {
	Name            string
	Kind            Kind
	Platform        Platform
	Triple          string
	UsesCrossHelper bool

	// OutputPathTemplate is the expected binary location, relative to the
	// base directory. Empty for the run target.
	OutputPathTemplate string
	// OutputExtension is the installable extension of the staged artifact.
	OutputExtension string
	// SourceExtension is the executable suffix the compiler emits.
	SourceExtension string
}

// IsRelease reports whether the target produces a packageable artifact.
func (t Target) IsRelease() bool { return t.Kind == KindRelease }

// OutputPath expands the output template for the given binary name and build mode.
func (t Target) OutputPath(name, mode string) string {
	if t.OutputPathTemplate == "" {
		return ""
	}
	r := strings.NewReplacer(
		"{triple}", t.Triple,
		"{mode}", mode,
		"{name}", name,
		"{exe}", t.SourceExtension,
	)
	return r.Replace(t.OutputPathTemplate)
}

// ArtifactName is the staged file name for the given binary name.
func (t Target) ArtifactName(name string) string {
	return name + t.OutputExtension
}

// Label is the menu text.
func (t Target) Label() string {
	if !t.IsRelease() {
		return "Run locally (host build)"
	}
	how := "native"
	if t.UsesCrossHelper {
		how = "cross"
	}
	return fmt.Sprintf("Build for %s (%s, %s)", t.Platform.Title(), t.Triple, how)
}

// InstallHint tells the operator what to do with the staged artifact.
func (t Target) InstallHint(artifact string) string {
	switch t.Platform {
	case Windows:
		return fmt.Sprintf("right-click %s and choose \"Install\" to register the screensaver", artifact)
	case MacOS:
		return fmt.Sprintf("run %s from Terminal, or copy it into /Applications", artifact)
	default:
		return fmt.Sprintf("run %s directly, or copy it into ~/.local/bin", artifact)
	}
}

// Title is the display name of the platform.
func (p Platform) Title() string {
	switch p {
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return string(p)
	}
}
