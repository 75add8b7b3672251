package cmd

import (
	"fmt"
	"strings"

	"github.com/sofmeright/flipfreight/src/target"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <target>",
	Short: "Build a release for one target and stage it",
	Long: `Build a release binary for the named target and copy it, with the
font, into the staging directory.

Targets available depend on the host; see "flipfreight targets". A failed
build exits with the build tool's status.`,
	ValidArgs: []string{string(target.Windows), string(target.Linux), string(target.MacOS)},
	Args:      cobra.ExactArgs(1),
	RunE:      runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	// Reject unknown targets before probing so the message names the choices.
	t, err := resolveRelease(hostCatalog(), args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	_, err = a.session.Execute(cmd.Context(), t)
	return err
}

func resolveRelease(cat target.Catalog, name string) (target.Target, error) {
	t, err := cat.Resolve(name)
	if err != nil {
		return target.Target{}, err
	}
	if !t.IsRelease() {
		return target.Target{}, fmt.Errorf("%w: %q is not a build target, use \"flipfreight run\" (build targets: %s)",
			target.ErrUnknownTarget, name, strings.Join(cat.ReleaseNames(), ", "))
	}
	return t, nil
}
