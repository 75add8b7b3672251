package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sofmeright/flipfreight/src/build"
	"github.com/sofmeright/flipfreight/src/gitver"
	"github.com/sofmeright/flipfreight/src/output"
	"github.com/sofmeright/flipfreight/src/pack"
	"github.com/sofmeright/flipfreight/src/session"
	"github.com/sofmeright/flipfreight/src/target"
	"github.com/sofmeright/flipfreight/src/toolchain"
)

// app is everything a build run needs, assembled after the toolchain probe.
type app struct {
	status    *toolchain.Status
	installer *toolchain.Installer
	catalog   target.Catalog
	appName   string
	session   *session.Session
}

// Process boundaries, replaced in tests.
var (
	newRunner = func(verbose bool) toolchain.Runner { return toolchain.NewExecRunner(verbose) }
	stdin     = io.Reader(os.Stdin)
	hostOS    = runtime.GOOS
	hostArch  = runtime.GOARCH
)

func hostCatalog() target.Catalog {
	return target.ForHost(hostOS, hostArch, cfg)
}

// newApp probes the toolchain and wires the session. A missing compiler is
// returned before anything else runs.
func newApp(ctx context.Context) (*app, error) {
	runner := newRunner(verbose)

	status, err := toolchain.NewProber(runner, cfg.Toolchain, report).Probe(ctx)
	if err != nil {
		return nil, err
	}

	appName, err := target.AppName(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{
		status:    status,
		installer: toolchain.NewInstaller(runner, cfg.Toolchain),
		catalog:   hostCatalog(),
		appName:   appName,
	}
	a.session = &session.Session{
		In:       stdin,
		Out:      report.Out,
		Catalog:  a.catalog,
		Builder:  build.NewDriver(runner, cfg, appName),
		Packager: pack.NewPackager(cfg, appName, report),
		Report:   report,
		Prepare:  a.prepare,
	}

	a.printContext()
	return a, nil
}

// prepare installs the cross helper the first time a target needs it.
func (a *app) prepare(ctx context.Context, t target.Target) error {
	if !t.UsesCrossHelper {
		return nil
	}
	return a.ensureCrossHelper(ctx)
}

func (a *app) ensureCrossHelper(ctx context.Context) error {
	if a.status.CrossHelperPresent {
		return nil
	}
	report.Stepf("Installing %s", cfg.Toolchain.CrossHelper)
	if err := a.installer.EnsureCrossHelper(ctx, a.status); err != nil {
		return err
	}
	report.Successf("%s installed", cfg.Toolchain.CrossHelper)
	return nil
}

func (a *app) printContext() {
	compiler := cfg.Toolchain.Compiler
	if v := a.status.CompilerVersion; v != nil {
		compiler = fmt.Sprintf("%s %s", compiler, v)
	}
	commit := "-"
	if info, err := gitver.Describe(cfg.BaseDir); err == nil {
		commit = info.String()
	}
	report.Context([]output.KV{
		{Key: "Project", Value: a.appName},
		{Key: "Host", Value: hostOS + "/" + hostArch},
		{Key: "Compiler", Value: compiler},
		{Key: "Commit", Value: commit},
		{Key: "Directory", Value: cfg.BaseDir},
		{Key: "Staging", Value: cfg.StagingPath()},
	})
}
