package main

import (
	"os"

	"github.com/sofmeright/flipfreight/src/cli/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
