package toolchain_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sofmeright/flipfreight/src/config"
	"github.com/sofmeright/flipfreight/src/toolchain"
	"github.com/sofmeright/flipfreight/src/toolchain/toolchaintest"
)

type warnings []string

func (w *warnings) Warnf(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

func TestProbeAllPresent(t *testing.T) {
	fake := toolchaintest.New("cargo", "docker", "cross").
		On("cargo --version", toolchaintest.Result{Stdout: "cargo 1.75.0 (1d8b05cdd 2023-11-20)\n"})
	var warn warnings

	st, err := toolchain.NewProber(fake, config.DefaultToolchainConfig(), &warn).Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if !st.CompilerPresent || !st.ContainerEnginePresent || !st.CrossHelperPresent {
		t.Errorf("status = %+v", st)
	}
	if st.CompilerVersion == nil || st.CompilerVersion.String() != "1.75.0" {
		t.Errorf("compiler version = %v", st.CompilerVersion)
	}
	if len(warn) != 0 {
		t.Errorf("unexpected warnings: %v", warn)
	}
}

func TestProbeMissingCompilerIsFatal(t *testing.T) {
	fake := toolchaintest.New("docker", "cross")

	_, err := toolchain.NewProber(fake, config.DefaultToolchainConfig(), nil).Probe(context.Background())
	if !errors.Is(err, toolchain.ErrMissingCompiler) {
		t.Fatalf("err = %v, want ErrMissingCompiler", err)
	}
	var mt *toolchain.MissingToolError
	if !errors.As(err, &mt) || mt.Tool != "cargo" || !strings.Contains(mt.Hint, "rustup") {
		t.Errorf("missing tool error = %#v", err)
	}
	if fake.Ran("") {
		t.Errorf("no command should run after a missing compiler, ran %s", fake)
	}
}

func TestProbeMissingContainerEngineWarnsOnly(t *testing.T) {
	fake := toolchaintest.New("cargo")
	var warn warnings

	st, err := toolchain.NewProber(fake, config.DefaultToolchainConfig(), &warn).Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if st.ContainerEnginePresent || st.CrossHelperPresent {
		t.Errorf("status = %+v", st)
	}
	if len(warn) != 1 || !strings.Contains(warn[0], "docker not found") {
		t.Errorf("warnings = %v", warn)
	}
}

func TestProbeWarnsOnOldCompiler(t *testing.T) {
	fake := toolchaintest.New("cargo", "docker", "cross").
		On("cargo --version", toolchaintest.Result{Stdout: "cargo 1.60.0 (abc 2022-04-01)\n"})
	var warn warnings

	if _, err := toolchain.NewProber(fake, config.DefaultToolchainConfig(), &warn).Probe(context.Background()); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if len(warn) != 1 || !strings.Contains(warn[0], "older than") {
		t.Errorf("warnings = %v", warn)
	}
}

func TestProbeIgnoresUnparsableVersion(t *testing.T) {
	fake := toolchaintest.New("cargo", "docker", "cross").
		On("cargo --version", toolchaintest.Result{Stdout: "cargo nightly\n"})
	var warn warnings

	st, err := toolchain.NewProber(fake, config.DefaultToolchainConfig(), &warn).Probe(context.Background())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if st.CompilerVersion != nil {
		t.Errorf("version = %v, want nil", st.CompilerVersion)
	}
	if len(warn) != 0 {
		t.Errorf("unexpected warnings: %v", warn)
	}
}

func TestEnsureCrossHelperNoopWhenPresent(t *testing.T) {
	fake := toolchaintest.New("cargo", "cross")
	st := &toolchain.Status{CompilerPresent: true, CrossHelperPresent: true}

	if err := toolchain.NewInstaller(fake, config.DefaultToolchainConfig()).EnsureCrossHelper(context.Background(), st); err != nil {
		t.Fatalf("EnsureCrossHelper: %v", err)
	}
	if fake.Ran("cargo install") {
		t.Errorf("installer ran although helper present: %s", fake)
	}
}

func TestEnsureCrossHelperInstalls(t *testing.T) {
	fake := toolchaintest.New("cargo")
	fake.On("cargo install cross", toolchaintest.Result{Do: func(toolchain.Command) {
		fake.Paths["cross"] = "/home/dev/.cargo/bin/cross"
	}})
	st := &toolchain.Status{CompilerPresent: true}

	if err := toolchain.NewInstaller(fake, config.DefaultToolchainConfig()).EnsureCrossHelper(context.Background(), st); err != nil {
		t.Fatalf("EnsureCrossHelper: %v", err)
	}
	if !st.CrossHelperPresent || st.CrossHelperPath != "/home/dev/.cargo/bin/cross" {
		t.Errorf("status not updated: %+v", st)
	}
}

func TestEnsureCrossHelperFailureIsFatal(t *testing.T) {
	fake := toolchaintest.New("cargo").On("cargo install", toolchaintest.Result{Code: 101})
	st := &toolchain.Status{CompilerPresent: true}

	err := toolchain.NewInstaller(fake, config.DefaultToolchainConfig()).EnsureCrossHelper(context.Background(), st)
	if !errors.Is(err, toolchain.ErrInstallFailed) {
		t.Fatalf("err = %v, want ErrInstallFailed", err)
	}
	if !strings.Contains(err.Error(), "exit status 101") {
		t.Errorf("error %q should carry the exit status", err)
	}
	if st.CrossHelperPresent {
		t.Error("status must stay absent after a failed install")
	}
}

func TestEnsureCrossHelperStartFailure(t *testing.T) {
	boom := errors.New("exec format error")
	fake := toolchaintest.New("cargo").On("cargo install", toolchaintest.Result{Code: -1, Err: boom})

	err := toolchain.NewInstaller(fake, config.DefaultToolchainConfig()).EnsureCrossHelper(context.Background(), &toolchain.Status{})
	if !errors.Is(err, toolchain.ErrInstallFailed) || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want both ErrInstallFailed and the cause", err)
	}
}

func TestCommandString(t *testing.T) {
	c := toolchain.Command{Name: "cross", Args: []string{"build", "--release"}}
	if got := c.String(); got != "cross build --release" {
		t.Errorf("String = %q", got)
	}
	if got := (toolchain.Command{Name: "cargo"}).String(); got != "cargo" {
		t.Errorf("String = %q", got)
	}
}
