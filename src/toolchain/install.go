package toolchain

import (
	"context"

	"github.com/sofmeright/flipfreight/src/config"
)

// Installer installs the cross-compilation helper with the compiler's own
// package-installation subcommand.
type Installer struct {
	Runner Runner
	Tools  config.ToolchainConfig
}

// NewInstaller creates an Installer.
func NewInstaller(r Runner, tools config.ToolchainConfig) *Installer {
	return &Installer{Runner: r, Tools: tools}
}

// EnsureCrossHelper installs the helper unless st already reports it
// present. On success st is updated in place. Any failure is returned as
// an *InstallError matching ErrInstallFailed.
func (in *Installer) EnsureCrossHelper(ctx context.Context, st *Status) error {
	if st.CrossHelperPresent {
		return nil
	}

	cmd := Command{Name: in.Tools.Compiler, Args: in.Tools.InstallArgs}
	code, err := in.Runner.Run(ctx, cmd)
	if err != nil {
		return &InstallError{Command: cmd.String(), ExitCode: code, Err: err}
	}
	if code != 0 {
		return &InstallError{Command: cmd.String(), ExitCode: code}
	}

	st.CrossHelperPresent = true
	// cargo installs into ~/.cargo/bin, which may not be on PATH yet.
	if path, err := in.Runner.LookPath(in.Tools.CrossHelper); err == nil {
		st.CrossHelperPath = path
	} else {
		st.CrossHelperPath = in.Tools.CrossHelper
	}
	return nil
}
