// Package build drives the external compiler for one target at a time.
package build

import (
	"context"
	"time"

	"github.com/sofmeright/flipfreight/src/config"
	"github.com/sofmeright/flipfreight/src/target"
	"github.com/sofmeright/flipfreight/src/toolchain"
)

// Driver invokes the native builder or the cross helper.
type Driver struct {
	Runner  toolchain.Runner
	Tools   config.ToolchainConfig
	Config  config.BuildConfig
	BaseDir string
	AppName string
}

// NewDriver creates a Driver for the given project.
func NewDriver(r toolchain.Runner, cfg *config.Config, appName string) *Driver {
	return &Driver{
		Runner:  r,
		Tools:   cfg.Toolchain,
		Config:  cfg.Build,
		BaseDir: cfg.BaseDir,
		AppName: appName,
	}
}

// Build runs the external operation for t and waits for it to exit.
// Output streams straight to the runner's writers. The returned Result is
// never nil; a nonzero exit leaves ArtifactPath unset.
func (d *Driver) Build(ctx context.Context, t target.Target) *Result {
	start := time.Now()
	cmd := Plan(t, d.Tools, d.Config, d.BaseDir)
	result := &Result{
		Target:  t,
		Command: cmd.String(),
	}

	code, err := d.Runner.Run(ctx, cmd)
	result.Duration = time.Since(start)
	result.ExitCode = code
	if err != nil {
		result.Err = err
		result.ExitCode = -1
		return result
	}
	if code != 0 {
		return result
	}

	result.Succeeded = true
	if t.IsRelease() {
		result.ArtifactPath = t.OutputPath(d.AppName, d.Config.Mode)
	}
	return result
}
