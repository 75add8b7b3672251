package config

// ToolchainConfig names the external executables. Names are resolved on
// PATH, never as absolute paths.
type ToolchainConfig struct {
	Compiler        string `yaml:"compiler"`
	ContainerEngine string `yaml:"container_engine"`
	CrossHelper     string `yaml:"cross_helper"`

	// InstallArgs is the compiler subcommand that installs the cross helper.
	InstallArgs []string `yaml:"install_args,omitempty"`

	// MinCompilerVersion triggers a warning when the compiler is older.
	MinCompilerVersion string `yaml:"min_compiler_version,omitempty"`
}

// DefaultToolchainConfig returns the Rust toolchain defaults.
func DefaultToolchainConfig() ToolchainConfig {
	return ToolchainConfig{
		Compiler:           "cargo",
		ContainerEngine:    "docker",
		CrossHelper:        "cross",
		InstallArgs:        []string{"install", "cross", "--git", "https://github.com/cross-rs/cross"},
		MinCompilerVersion: "1.70.0",
	}
}
