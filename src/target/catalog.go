package target

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sofmeright/flipfreight/src/config"
)

// Catalog is the ordered set of targets offered on one host. The first
// entry is always the run-locally pseudo-target.
type Catalog []Target

// archPrefix maps GOARCH to the leading component of a target triple.
var archPrefix = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
	"386":   "i686",
}

// ForHost builds the catalog for a host OS/arch. Windows hosts build
// Windows natively and Linux through the cross helper; macOS hosts build
// macOS natively and Windows plus Linux through the helper; every other
// host builds Linux natively and Windows through the helper.
func ForHost(goos, goarch string, cfg *config.Config) Catalog {
	arch, ok := archPrefix[goarch]
	if !ok {
		arch = "x86_64"
	}
	tmpl := cfg.Build.OutputPath

	windows := func(native bool) Target {
		t := Target{
			Name:               string(Windows),
			Platform:           Windows,
			Triple:             "x86_64-pc-windows-gnu",
			UsesCrossHelper:    !native,
			OutputPathTemplate: tmpl,
			OutputExtension:    ".scr",
			SourceExtension:    ".exe",
		}
		if native {
			t.Triple = arch + "-pc-windows-msvc"
		}
		return t
	}
	linux := func(native bool) Target {
		t := Target{
			Name:               string(Linux),
			Platform:           Linux,
			Triple:             "x86_64-unknown-linux-gnu",
			UsesCrossHelper:    !native,
			OutputPathTemplate: tmpl,
		}
		if native {
			t.Triple = arch + "-unknown-linux-gnu"
		}
		return t
	}
	macos := Target{
		Name:               string(MacOS),
		Platform:           MacOS,
		Triple:             arch + "-apple-darwin",
		OutputPathTemplate: tmpl,
	}

	run := Target{Name: RunName, Kind: KindRun}
	var cat Catalog
	switch goos {
	case "windows":
		cat = Catalog{run, windows(true), linux(false)}
	case "darwin":
		cat = Catalog{run, macos, windows(false), linux(false)}
	default:
		cat = Catalog{run, linux(true), windows(false)}
	}

	for i := range cat {
		cat[i] = applyOverride(cat[i], cfg.Targets)
	}
	return cat
}

func applyOverride(t Target, overrides map[string]config.TargetConfig) Target {
	o, ok := overrides[t.Name]
	if !ok || !t.IsRelease() {
		return t
	}
	if o.Triple != "" {
		t.Triple = o.Triple
	}
	switch o.Extension {
	case "":
	case "none":
		t.OutputExtension = ""
	default:
		t.OutputExtension = o.Extension
	}
	return t
}

// Resolve finds a target by name (case-insensitive).
func (c Catalog) Resolve(name string) (Target, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, t := range c {
		if t.Name == want {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("%w %q on this host (supported: %s)", ErrUnknownTarget, name, strings.Join(c.Names(), ", "))
}

// Names returns the target names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for _, t := range c {
		names = append(names, t.Name)
	}
	return names
}

// ReleaseNames returns the sorted names of the release targets.
func (c Catalog) ReleaseNames() []string {
	var names []string
	for _, t := range c {
		if t.IsRelease() {
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names
}

// NeedsCrossHelper reports whether any target uses the cross helper.
func (c Catalog) NeedsCrossHelper() bool {
	for _, t := range c {
		if t.UsesCrossHelper {
			return true
		}
	}
	return false
}
