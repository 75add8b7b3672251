package cmd

import (
	"github.com/sofmeright/flipfreight/src/target"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build and run the clock on this machine",
	Long: `Build and run the clock on the host with the compiler's run command.
Nothing is staged. The exit status is the tool's own.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		t, err := a.catalog.Resolve(target.RunName)
		if err != nil {
			return err
		}
		_, err = a.session.Execute(cmd.Context(), t)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
