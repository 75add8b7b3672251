package config

// BuildConfig controls how the external build is invoked and where its
// output is expected.
type BuildConfig struct {
	// Mode is the build profile: "release" or "debug".
	Mode string `yaml:"mode"`

	// RunArgs are passed to the compiler for the run-locally target.
	RunArgs []string `yaml:"run_args,omitempty"`

	// OutputPath is the expected binary location relative to the base
	// directory. Placeholders: {triple}, {mode}, {name}, {exe}.
	OutputPath string `yaml:"output_path"`

	// Checksums writes a SHA256SUMS file next to the staged artifact.
	Checksums bool `yaml:"checksums,omitempty"`
}

// DefaultBuildConfig returns the Cargo layout defaults.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Mode:       "release",
		RunArgs:    []string{"run", "--release"},
		OutputPath: "target/{triple}/{mode}/{name}{exe}",
	}
}

// validModes enumerates the recognized build profiles.
var validModes = map[string]bool{
	"release": true,
	"debug":   true,
}
