// Where: cli/cmd/sls/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/serverless-invoke/cli/internal/command"
	"github.com/poruru/serverless-invoke/cli/internal/infra/env"
	"github.com/poruru/serverless-invoke/cli/internal/infra/interaction"
)

var getwd = os.Getwd

// buildDependencies constructs the runtime dependencies: the process
// environment, terminal prompts, and standard streams.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		Prompter:    interaction.HuhPrompter{},
		CanPrompt:   interaction.CanPrompt,
		Environment: env.NewProcess(),
		Getwd:       getwd,
	}
}
