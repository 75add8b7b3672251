package toolchain

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/sofmeright/flipfreight/src/config"
)

// compilerHint is shown when the compiler front-end is missing.
const compilerHint = "install the Rust toolchain from https://rustup.rs and reopen your shell"

// Status is the toolchain snapshot taken once per run.
type Status struct {
	CompilerPresent        bool
	ContainerEnginePresent bool
	CrossHelperPresent     bool

	CompilerPath        string
	ContainerEnginePath string
	CrossHelperPath     string

	// CompilerVersion is nil when the version output could not be parsed.
	CompilerVersion *semver.Version
}

// Warner receives non-fatal findings.
type Warner interface {
	Warnf(format string, args ...any)
}

// Prober detects which tools are available.
type Prober struct {
	Runner Runner
	Tools  config.ToolchainConfig
	Warn   Warner
}

// NewProber creates a Prober.
func NewProber(r Runner, tools config.ToolchainConfig, w Warner) *Prober {
	return &Prober{Runner: r, Tools: tools, Warn: w}
}

// Probe checks the compiler, container engine and cross helper in that
// order. A missing compiler is fatal and stops the probe; the other two
// are optional.
func (p *Prober) Probe(ctx context.Context) (*Status, error) {
	st := &Status{}

	path, err := p.Runner.LookPath(p.Tools.Compiler)
	if err != nil {
		return st, &MissingToolError{Tool: p.Tools.Compiler, Hint: compilerHint}
	}
	st.CompilerPresent = true
	st.CompilerPath = path
	st.CompilerVersion = p.compilerVersion(ctx)
	p.checkMinimum(st.CompilerVersion)

	if path, err := p.Runner.LookPath(p.Tools.ContainerEngine); err == nil {
		st.ContainerEnginePresent = true
		st.ContainerEnginePath = path
	} else {
		p.warnf("%s not found: cross-compiled targets may fail, native builds still work", p.Tools.ContainerEngine)
	}

	if path, err := p.Runner.LookPath(p.Tools.CrossHelper); err == nil {
		st.CrossHelperPresent = true
		st.CrossHelperPath = path
	}

	return st, nil
}

// versionRe finds the first x.y.z in "cargo 1.75.0 (1d8b05cdd 2023-11-20)".
var versionRe = regexp.MustCompile(`(\d+\.\d+\.\d+)`)

// compilerVersion asks the compiler for its version. Any failure yields nil.
func (p *Prober) compilerVersion(ctx context.Context) *semver.Version {
	var out bytes.Buffer
	code, err := p.Runner.Run(ctx, Command{
		Name:   p.Tools.Compiler,
		Args:   []string{"--version"},
		Stdout: &out,
		Stderr: io.Discard,
	})
	if err != nil || code != 0 {
		return nil
	}
	return parseVersion(out.String())
}

func parseVersion(s string) *semver.Version {
	m := versionRe.FindString(s)
	if m == "" {
		return nil
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return nil
	}
	return v
}

func (p *Prober) checkMinimum(have *semver.Version) {
	if have == nil || p.Tools.MinCompilerVersion == "" {
		return
	}
	min, err := semver.NewVersion(p.Tools.MinCompilerVersion)
	if err != nil {
		p.warnf("ignoring min_compiler_version %q: %v", p.Tools.MinCompilerVersion, err)
		return
	}
	if have.LessThan(min) {
		p.warnf("%s %s is older than the recommended %s; run `rustup update`", p.Tools.Compiler, have, min)
	}
}

func (p *Prober) warnf(format string, args ...any) {
	if p.Warn != nil {
		p.Warn.Warnf(format, args...)
	}
}
