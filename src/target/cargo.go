package target

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sofmeright/flipfreight/src/config"
)

// cargoManifest is the subset of Cargo.toml needed to name the binary.
type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Bin []struct {
		Name string `toml:"name"`
	} `toml:"bin"`
}

// CargoBinaryName reads Cargo.toml in dir and returns the binary name:
// the first [[bin]] name when present, else the package name. Returns ""
// with a nil error when there is no manifest.
func CargoBinaryName(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("parse Cargo.toml: %w", err)
	}
	if len(m.Bin) > 0 && m.Bin[0].Name != "" {
		return m.Bin[0].Name, nil
	}
	return m.Package.Name, nil
}

// AppName resolves the binary base name: the configured app_name, then
// the Cargo manifest in the base directory, then config.DefaultAppName.
func AppName(cfg *config.Config) (string, error) {
	if cfg.AppName != "" {
		return cfg.AppName, nil
	}
	name, err := CargoBinaryName(cfg.BaseDir)
	if err != nil {
		return "", err
	}
	if name != "" {
		return name, nil
	}
	return config.DefaultAppName, nil
}
