package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the base directory when --config is not given.
const DefaultConfigFile = ".flipfreight.yml"

// DefaultAppName is used when neither the config nor the Cargo manifest names the binary.
const DefaultAppName = "rust_flip_clock"

// Config is the top-level flipfreight configuration.
type Config struct {
	Version int `yaml:"version"`

	// AppName is the binary base name produced by the build and used for
	// the staged artifact. Empty = read from Cargo.toml.
	AppName string `yaml:"app_name,omitempty"`

	// BaseDir is the project root. Relative output paths, the font search
	// and the staging directory are resolved against it. Set from --dir.
	BaseDir string `yaml:"-"`

	// StagingDir receives the packaged artifact. Relative to BaseDir.
	StagingDir string `yaml:"staging_dir"`

	// Font is the companion resource file name searched in BaseDir and its parent.
	Font string `yaml:"font"`

	Toolchain ToolchainConfig         `yaml:"toolchain"`
	Build     BuildConfig             `yaml:"build"`
	Targets   map[string]TargetConfig `yaml:"targets,omitempty"`
}

// Load reads configuration from a YAML file.
// Returns defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StagingPath returns the absolute-or-base-relative staging directory.
func (c *Config) StagingPath() string {
	if filepath.IsAbs(c.StagingDir) {
		return c.StagingDir
	}
	return filepath.Join(c.BaseDir, c.StagingDir)
}

func defaults() *Config {
	return &Config{
		Version:    1,
		BaseDir:    ".",
		StagingDir: "dist",
		Font:       "font.ttf",
		Toolchain:  DefaultToolchainConfig(),
		Build:      DefaultBuildConfig(),
	}
}
