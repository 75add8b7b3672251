package cmd

import (
	"fmt"
	"time"

	"github.com/sofmeright/flipfreight/src/toolchain"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the build toolchain",
	Long: `Probe the compiler, container engine and cross helper and print what
was found. Nothing is installed or built. Exits 1 if the compiler is
missing.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	start := time.Now()
	st, err := toolchain.NewProber(newRunner(verbose), cfg.Toolchain, report).Probe(cmd.Context())

	tools := cfg.Toolchain
	sec := report.Section("Toolchain", time.Since(start))
	if err != nil {
		sec.Status(tools.Compiler, "not found", "failed")
		sec.Close()
		return err
	}

	compiler := st.CompilerPath
	if st.CompilerVersion != nil {
		compiler = fmt.Sprintf("%s (%s)", st.CompilerVersion, st.CompilerPath)
	}
	sec.Status(tools.Compiler, compiler, "success")
	sec.Status(tools.ContainerEngine, found(st.ContainerEnginePresent, st.ContainerEnginePath), present(st.ContainerEnginePresent))
	sec.Status(tools.CrossHelper, found(st.CrossHelperPresent, st.CrossHelperPath), present(st.CrossHelperPresent))
	sec.Close()

	if !st.CrossHelperPresent && hostCatalog().NeedsCrossHelper() {
		report.Infof("%s will be installed on the first cross build", tools.CrossHelper)
	}
	return nil
}

func found(ok bool, path string) string {
	if ok {
		return path
	}
	return "not found"
}

// present maps optional tools to a skipped icon rather than a failure.
func present(ok bool) string {
	if ok {
		return "success"
	}
	return "skipped"
}
