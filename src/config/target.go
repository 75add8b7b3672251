package config

// TargetConfig overrides a built-in release target, keyed by target name
// (windows, linux, macos) in Config.Targets. Empty fields keep the
// built-in value.
type TargetConfig struct {
	// Triple is the compiler target triple, e.g. x86_64-pc-windows-gnu.
	Triple string `yaml:"triple,omitempty"`

	// Extension is the installable extension of the staged artifact,
	// including the dot (".scr"). Use "none" to stage without one.
	Extension string `yaml:"extension,omitempty"`
}

// validTargetNames enumerates the release targets that can be overridden.
var validTargetNames = map[string]bool{
	"windows": true,
	"linux":   true,
	"macos":   true,
}
