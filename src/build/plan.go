package build

import (
	"github.com/sofmeright/flipfreight/src/config"
	"github.com/sofmeright/flipfreight/src/target"
	"github.com/sofmeright/flipfreight/src/toolchain"
)

// Plan resolves the external command for a target.
//
//	run:             <compiler> <run_args...>
//	native release:  <compiler> build --<mode> --target <triple>
//	cross release:   <cross>    build --<mode> --target <triple>
//
// Debug mode omits the profile flag since it is Cargo's default.
func Plan(t target.Target, tools config.ToolchainConfig, bc config.BuildConfig, dir string) toolchain.Command {
	if !t.IsRelease() {
		return toolchain.Command{
			Name: tools.Compiler,
			Args: append([]string(nil), bc.RunArgs...),
			Dir:  dir,
		}
	}

	name := tools.Compiler
	if t.UsesCrossHelper {
		name = tools.CrossHelper
	}
	args := []string{"build"}
	if bc.Mode == "release" {
		args = append(args, "--release")
	}
	args = append(args, "--target", t.Triple)

	return toolchain.Command{Name: name, Args: args, Dir: dir}
}
