package cmd

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose targets from an interactive menu (default)",
	Long: `Open the interactive menu. Each choice is built, packaged and reported,
then the menu is shown again. A failed build returns to the menu; a
missing compiler, a failed helper install or a missing build output ends
the session.

Menu commands: a number, a target name, "run", "build <target>", "exit".`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	// A menu session installs the helper before the first choice.
	if a.catalog.NeedsCrossHelper() {
		if err := a.ensureCrossHelper(ctx); err != nil {
			return err
		}
	}
	return a.session.Run(ctx)
}
