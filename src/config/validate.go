package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Version ───────────────────────────────────────────────────────────

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("version: must be 1, got %d", cfg.Version))
	}

	// ── Paths ─────────────────────────────────────────────────────────────

	if strings.TrimSpace(cfg.StagingDir) == "" {
		errs = append(errs, "staging_dir: must not be empty")
	}
	if cfg.Font == "" {
		warnings = append(warnings, "font: empty, companion font will not be staged")
	} else if strings.ContainsAny(cfg.Font, `/\`) {
		errs = append(errs, fmt.Sprintf("font: %q must be a file name, not a path", cfg.Font))
	}
	if strings.ContainsAny(cfg.AppName, `/\`) {
		errs = append(errs, fmt.Sprintf("app_name: %q must not contain path separators", cfg.AppName))
	}

	// ── Toolchain ─────────────────────────────────────────────────────────

	tc := cfg.Toolchain
	for _, f := range []struct{ field, name string }{
		{"toolchain.compiler", tc.Compiler},
		{"toolchain.container_engine", tc.ContainerEngine},
		{"toolchain.cross_helper", tc.CrossHelper},
	} {
		field, name := f.field, f.name
		if name == "" {
			errs = append(errs, fmt.Sprintf("%s: is required", field))
		} else if filepath.IsAbs(name) {
			errs = append(errs, fmt.Sprintf("%s: %q must be an executable name resolved on PATH, not an absolute path", field, name))
		}
	}
	if len(tc.InstallArgs) == 0 {
		errs = append(errs, "toolchain.install_args: is required")
	}

	// ── Build ─────────────────────────────────────────────────────────────

	if !validModes[cfg.Build.Mode] {
		errs = append(errs, fmt.Sprintf("build.mode: unknown mode %q (supported: debug, release)", cfg.Build.Mode))
	}
	if len(cfg.Build.RunArgs) == 0 {
		errs = append(errs, "build.run_args: is required")
	}
	errs = append(errs, validateOutputPath(cfg.Build.OutputPath, "build.output_path")...)
	if cfg.Build.OutputPath != "" && !strings.Contains(cfg.Build.OutputPath, "{name}") {
		warnings = append(warnings, "build.output_path: has no {name} placeholder, app_name is ignored for the build output")
	}

	// ── Targets ───────────────────────────────────────────────────────────

	names := make([]string, 0, len(cfg.Targets))
	for name := range cfg.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := cfg.Targets[name]
		tpath := fmt.Sprintf("targets.%s", name)
		if !validTargetNames[name] {
			errs = append(errs, fmt.Sprintf("%s: unknown target (supported: linux, macos, windows)", tpath))
			continue
		}
		if strings.ContainsAny(t.Triple, " \t") {
			errs = append(errs, fmt.Sprintf("%s.triple: %q must not contain whitespace", tpath, t.Triple))
		}
		if t.Extension != "" && t.Extension != "none" && !strings.HasPrefix(t.Extension, ".") {
			errs = append(errs, fmt.Sprintf("%s.extension: %q must start with '.' (or be \"none\")", tpath, t.Extension))
		}
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

// validateOutputPath checks that a build output path template is safe.
func validateOutputPath(p string, field string) []string {
	var errs []string

	if p == "" {
		errs = append(errs, fmt.Sprintf("%s: output path is empty", field))
		return errs
	}

	// Absolute path
	if filepath.IsAbs(p) {
		errs = append(errs, fmt.Sprintf("%s: output path %q must be relative, not absolute", field, p))
		return errs
	}

	// Tilde
	if strings.HasPrefix(p, "~") {
		errs = append(errs, fmt.Sprintf("%s: output path %q must not start with ~", field, p))
		return errs
	}

	// Windows drive prefix
	if len(p) >= 2 && p[1] == ':' && ((p[0] >= 'A' && p[0] <= 'Z') || (p[0] >= 'a' && p[0] <= 'z')) {
		errs = append(errs, fmt.Sprintf("%s: output path %q looks like a Windows drive path", field, p))
		return errs
	}

	// Path traversal
	if strings.Contains(p, "..") {
		errs = append(errs, fmt.Sprintf("%s: output path %q must not contain '..'", field, p))
		return errs
	}

	return errs
}
