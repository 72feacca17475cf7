// Where: cli/cmd/sls/main.go
// What: CLI entrypoint.
// Why: Execute sls commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/serverless-invoke/cli/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
