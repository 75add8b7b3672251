package target

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sofmeright/flipfreight/src/config"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestForHostCatalogs(t *testing.T) {
	cfg := defaultConfig(t)
	cases := map[string][]string{
		"windows": {"run", "windows", "linux"},
		"darwin":  {"run", "macos", "windows", "linux"},
		"linux":   {"run", "linux", "windows"},
		"freebsd": {"run", "linux", "windows"},
	}
	for goos, want := range cases {
		if got := ForHost(goos, "amd64", cfg).Names(); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: names = %v, want %v", goos, got, want)
		}
	}
}

func TestForHostNativeVersusCross(t *testing.T) {
	cfg := defaultConfig(t)

	win := ForHost("windows", "amd64", cfg)
	w, _ := win.Resolve("windows")
	if w.UsesCrossHelper || w.Triple != "x86_64-pc-windows-msvc" {
		t.Errorf("windows on windows = %+v", w)
	}
	l, _ := win.Resolve("linux")
	if !l.UsesCrossHelper {
		t.Errorf("linux on windows should use cross: %+v", l)
	}

	lin := ForHost("linux", "arm64", cfg)
	l, _ = lin.Resolve("linux")
	if l.UsesCrossHelper || l.Triple != "aarch64-unknown-linux-gnu" {
		t.Errorf("linux on linux/arm64 = %+v", l)
	}
	w, _ = lin.Resolve("windows")
	if !w.UsesCrossHelper || w.Triple != "x86_64-pc-windows-gnu" || w.OutputExtension != ".scr" {
		t.Errorf("windows on linux = %+v", w)
	}

	mac := ForHost("darwin", "arm64", cfg)
	m, _ := mac.Resolve("macos")
	if m.UsesCrossHelper || m.Triple != "aarch64-apple-darwin" {
		t.Errorf("macos on darwin = %+v", m)
	}
}

func TestRunTargetHasNoOutput(t *testing.T) {
	run := ForHost("linux", "amd64", defaultConfig(t))[0]
	if run.IsRelease() || run.Name != RunName {
		t.Fatalf("first entry = %+v", run)
	}
	if p := run.OutputPath("clock", "release"); p != "" {
		t.Errorf("run output path = %q", p)
	}
	if run.UsesCrossHelper {
		t.Error("run target must not use the cross helper")
	}
}

func TestOutputPathExpansion(t *testing.T) {
	cfg := defaultConfig(t)
	w, _ := ForHost("linux", "amd64", cfg).Resolve("windows")

	got := w.OutputPath("rust_flip_clock", "release")
	if got != "target/x86_64-pc-windows-gnu/release/rust_flip_clock.exe" {
		t.Errorf("OutputPath = %q", got)
	}
	if name := w.ArtifactName("rust_flip_clock"); name != "rust_flip_clock.scr" {
		t.Errorf("ArtifactName = %q", name)
	}
}

func TestOverrides(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Targets = map[string]config.TargetConfig{
		"windows": {Triple: "i686-pc-windows-gnu"},
		"linux":   {Extension: ".AppImage"},
	}
	cat := ForHost("linux", "amd64", cfg)

	w, _ := cat.Resolve("windows")
	if w.Triple != "i686-pc-windows-gnu" || w.OutputExtension != ".scr" {
		t.Errorf("windows override = %+v", w)
	}
	l, _ := cat.Resolve("linux")
	if l.OutputExtension != ".AppImage" {
		t.Errorf("linux override = %+v", l)
	}

	cfg.Targets = map[string]config.TargetConfig{"windows": {Extension: "none"}}
	w, _ = ForHost("linux", "amd64", cfg).Resolve("windows")
	if w.OutputExtension != "" {
		t.Errorf("extension none = %q", w.OutputExtension)
	}
}

func TestResolve(t *testing.T) {
	cat := ForHost("windows", "amd64", defaultConfig(t))

	if tg, err := cat.Resolve(" Windows "); err != nil || tg.Name != "windows" {
		t.Errorf("Resolve Windows = %+v, %v", tg, err)
	}

	_, err := cat.Resolve("macos")
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("err = %v, want ErrUnknownTarget", err)
	}
	if !strings.Contains(err.Error(), "run, windows, linux") {
		t.Errorf("error should list supported names: %v", err)
	}
}

func TestNeedsCrossHelper(t *testing.T) {
	cfg := defaultConfig(t)
	if !ForHost("linux", "amd64", cfg).NeedsCrossHelper() {
		t.Error("linux host offers windows via cross")
	}
	only := Catalog{ForHost("linux", "amd64", cfg)[0]}
	if only.NeedsCrossHelper() {
		t.Error("run-only catalog needs no helper")
	}
}

func TestCargoBinaryName(t *testing.T) {
	dir := t.TempDir()
	if name, err := CargoBinaryName(dir); err != nil || name != "" {
		t.Errorf("no manifest = %q, %v", name, err)
	}

	manifest := "[package]\nname = \"rust_flip-rs\"\nversion = \"0.3.0\"\n"
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if name, _ := CargoBinaryName(dir); name != "rust_flip-rs" {
		t.Errorf("package name = %q", name)
	}

	manifest += "\n[[bin]]\nname = \"rust_flip_clock\"\npath = \"src/main.rs\"\n"
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if name, _ := CargoBinaryName(dir); name != "rust_flip_clock" {
		t.Errorf("bin name = %q", name)
	}
}

func TestAppNamePrecedence(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.BaseDir = t.TempDir()

	if name, _ := AppName(cfg); name != config.DefaultAppName {
		t.Errorf("fallback = %q", name)
	}

	os.WriteFile(filepath.Join(cfg.BaseDir, "Cargo.toml"), []byte("[package]\nname = \"clock\"\n"), 0o644)
	if name, _ := AppName(cfg); name != "clock" {
		t.Errorf("manifest = %q", name)
	}

	cfg.AppName = "explicit"
	if name, _ := AppName(cfg); name != "explicit" {
		t.Errorf("config = %q", name)
	}
}
