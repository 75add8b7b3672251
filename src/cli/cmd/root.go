package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sofmeright/flipfreight/src/config"
	"github.com/sofmeright/flipfreight/src/output"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	baseDir string
	distDir string
	verbose bool
	noColor bool
	cfg     *config.Config
	report  *output.Reporter
)

var rootCmd = &cobra.Command{
	Use:   "flipfreight",
	Short: "Build and package the flip clock screensaver",
	Long: `flipfreight builds the flip clock for the host or a cross target and
stages the binary with its font in the dist directory.

Without a subcommand it opens an interactive menu.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		report = output.NewReporter()
		report.Out = cmd.OutOrStdout()
		report.Err = cmd.ErrOrStderr()
		if noColor {
			report.Color = false
		}

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		return loadConfig()
	},
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: <dir>/"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", ".", "project directory containing Cargo.toml")
	rootCmd.PersistentFlags().StringVar(&distDir, "dist", "", "staging directory (default: staging_dir from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "echo executed commands")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func loadConfig() error {
	dir, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("resolving --dir: %w", err)
	}
	path := cfgFile
	if path == "" {
		path = filepath.Join(dir, config.DefaultConfigFile)
	}

	cfg, err = config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.BaseDir = dir
	if distDir != "" {
		if cfg.StagingDir, err = filepath.Abs(distDir); err != nil {
			return fmt.Errorf("resolving --dist: %w", err)
		}
	}

	warnings, err := config.Validate(cfg)
	for _, w := range warnings {
		report.Warnf("%s: %s", filepath.Base(path), w)
	}
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

// Execute runs the root command. Errors the session already reported are
// not printed a second time.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !alreadyReported(err) {
		if report != nil {
			report.Errorf("%v", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return err
}
