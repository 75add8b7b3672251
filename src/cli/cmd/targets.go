package cmd

import (
	"github.com/sofmeright/flipfreight/src/output"
	"github.com/sofmeright/flipfreight/src/target"
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the targets this host can build",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appName, err := target.AppName(cfg)
		if err != nil {
			return err
		}
		cat := hostCatalog()

		sec := report.Section("Targets", 0)
		for i, t := range cat {
			if i > 0 {
				sec.Separator()
			}
			sec.KeyValue(t.Name, t.Label())
			if t.IsRelease() {
				from := t.OutputPath(appName, cfg.Build.Mode)
				sec.Row("%-16s  %s", "", output.Dimmed(from+" → "+t.ArtifactName(appName), report.Color))
			}
		}
		sec.Close()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
