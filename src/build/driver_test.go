package build

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sofmeright/flipfreight/src/config"
	"github.com/sofmeright/flipfreight/src/target"
	"github.com/sofmeright/flipfreight/src/toolchain/toolchaintest"
)

func newDriver(t *testing.T, fake *toolchaintest.Fake) *Driver {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.BaseDir = t.TempDir()
	return NewDriver(fake, cfg, "rust_flip_clock")
}

func resolve(t *testing.T, goos, name string) target.Target {
	t.Helper()
	cfg, _ := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	tg, err := target.ForHost(goos, "amd64", cfg).Resolve(name)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return tg
}

func TestBuildCrossTarget(t *testing.T) {
	fake := toolchaintest.New("cargo", "cross")
	d := newDriver(t, fake)

	res := d.Build(context.Background(), resolve(t, "linux", "windows"))
	if !res.Succeeded {
		t.Fatalf("build failed: %+v", res)
	}
	if !fake.Ran("cross build --release --target x86_64-pc-windows-gnu") {
		t.Errorf("cross not invoked: %s", fake)
	}
	if res.ArtifactPath != "target/x86_64-pc-windows-gnu/release/rust_flip_clock.exe" {
		t.Errorf("ArtifactPath = %q", res.ArtifactPath)
	}
	if res.Error() != nil {
		t.Errorf("Error() = %v", res.Error())
	}
}

func TestBuildNativeTarget(t *testing.T) {
	fake := toolchaintest.New("cargo")
	d := newDriver(t, fake)

	res := d.Build(context.Background(), resolve(t, "windows", "windows"))
	if !res.Succeeded {
		t.Fatalf("build failed: %+v", res)
	}
	if !fake.Ran("cargo build --release --target x86_64-pc-windows-msvc") || fake.Ran("cross") {
		t.Errorf("expected native cargo build only: %s", fake)
	}
}

func TestBuildDebugMode(t *testing.T) {
	fake := toolchaintest.New("cargo")
	d := newDriver(t, fake)
	d.Config.Mode = "debug"

	res := d.Build(context.Background(), resolve(t, "linux", "linux"))
	if !fake.Ran("cargo build --target x86_64-unknown-linux-gnu") {
		t.Errorf("debug build args wrong: %s", fake)
	}
	if res.ArtifactPath != "target/x86_64-unknown-linux-gnu/debug/rust_flip_clock" {
		t.Errorf("ArtifactPath = %q", res.ArtifactPath)
	}
}

func TestBuildFailureLeavesArtifactUnset(t *testing.T) {
	fake := toolchaintest.New("cargo", "cross").On("cross build", toolchaintest.Result{Code: 2})
	d := newDriver(t, fake)

	res := d.Build(context.Background(), resolve(t, "linux", "windows"))
	if res.Succeeded || res.ArtifactPath != "" || res.ExitCode != 2 {
		t.Fatalf("result = %+v", res)
	}
	var ext *ExternalError
	if !errors.As(res.Error(), &ext) || ext.ExitCode() != 2 {
		t.Errorf("Error() = %v", res.Error())
	}
	if res.Status() != "failed" {
		t.Errorf("Status = %q", res.Status())
	}
}

func TestBuildStartFailure(t *testing.T) {
	boom := errors.New("no such file")
	fake := toolchaintest.New("cargo").On("cargo build", toolchaintest.Result{Code: -1, Err: boom})
	d := newDriver(t, fake)

	res := d.Build(context.Background(), resolve(t, "linux", "linux"))
	if res.Succeeded || res.ExitCode != -1 {
		t.Fatalf("result = %+v", res)
	}
	var ext *ExternalError
	if !errors.As(res.Error(), &ext) || ext.ExitCode() != 1 || !errors.Is(res.Error(), boom) {
		t.Errorf("Error() = %v", res.Error())
	}
}

func TestRunTarget(t *testing.T) {
	fake := toolchaintest.New("cargo").On("cargo run", toolchaintest.Result{Code: 0})
	d := newDriver(t, fake)

	res := d.Build(context.Background(), resolve(t, "linux", "run"))
	if !res.Succeeded || res.ArtifactPath != "" {
		t.Fatalf("result = %+v", res)
	}
	if !fake.Ran("cargo run --release") {
		t.Errorf("run not invoked: %s", fake)
	}
}

func TestRunTargetMirrorsExitCode(t *testing.T) {
	fake := toolchaintest.New("cargo").On("cargo run", toolchaintest.Result{Code: 101})
	d := newDriver(t, fake)

	res := d.Build(context.Background(), resolve(t, "linux", "run"))
	if res.Succeeded || res.ExitCode != 101 {
		t.Fatalf("result = %+v", res)
	}
}
