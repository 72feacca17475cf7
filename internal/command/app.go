// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/serverless-invoke/cli/internal/infra/env"
	"github.com/poruru/serverless-invoke/cli/internal/infra/interaction"
	"github.com/poruru/serverless-invoke/cli/internal/meta"
	"github.com/poruru/serverless-invoke/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Zero values fall back to the process defaults in Run.
type Dependencies struct {
	Out         io.Writer
	ErrOut      io.Writer
	Prompter    interaction.Prompter
	CanPrompt   func() bool
	Environment env.Environment
	Getwd       func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config  string     `name:"config" help:"Path to the service file (default: search for ${service_file})"`
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	Verbose bool       `short:"v" help:"Verbose diagnostic logging"`
	Invoke  InvokeCmd  `cmd:"" help:"Invoke a deployed function"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd defines the version command.
type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)

	if len(args) == 0 {
		return runNoArgs(deps.Out)
	}

	cli := CLI{}
	parser, err := kong.New(
		&cli,
		kong.Name(meta.Slug),
		kong.Description("Invoke serverless functions remotely or locally."),
		kong.Writers(deps.Out, deps.ErrOut),
		kong.Vars{"service_file": meta.ServiceFile},
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps.ErrOut)
	}

	logger := newLogger(deps.ErrOut, cli.Verbose)
	loadEnvFile(cli.EnvFile, deps, deps.ErrOut)

	command := ctx.Command()
	logger.Debug("dispatching command", "command", command)
	if exitCode, handled := dispatchCommand(command, cli, deps, session{logger: logger}); handled {
		return exitCode
	}

	commandUI(deps.ErrOut).Warn(fmt.Sprintf("unknown command: %s", command))
	return 1
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if deps.CanPrompt == nil {
		deps.CanPrompt = interaction.CanPrompt
	}
	if deps.Environment == nil {
		deps.Environment = env.NewProcess()
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	return deps
}

// loadEnvFile loads an explicit --env-file, or .env in the working directory
// when present. Variables already set are kept. Failures are reported as warnings.
func loadEnvFile(path string, deps Dependencies, out io.Writer) {
	target := deps.Environment
	if path == "" {
		cwd, err := deps.Getwd()
		if err != nil {
			return
		}
		path = filepath.Join(cwd, ".env")
		if _, err := os.Stat(path); err != nil {
			return
		}
	}
	values, err := godotenv.Read(path)
	if err != nil {
		commandUI(out).Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		return
	}
	missing := map[string]string{}
	for key, value := range values {
		if _, ok := target.Lookup(key); !ok {
			missing[key] = value
		}
	}
	if err := env.Merge(target, missing); err != nil {
		commandUI(out).Warn(fmt.Sprintf("failed to apply env file %s: %v", path, err))
	}
}

type commandHandler func(context.Context, CLI, Dependencies, session) int

func dispatchCommand(command string, cli CLI, deps Dependencies, s session) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"invoke":        runInvokeRemote,
		"invoke remote": runInvokeRemote,
		"invoke local":  runInvokeLocal,
		"version":       func(_ context.Context, _ CLI, deps Dependencies, _ session) int { return runVersion(deps.Out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(context.Background(), cli, deps, s), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	commandUI(out).Info(fmt.Sprintf("%s %s", meta.Slug, version.GetVersion()))
	return 0
}

// runNoArgs prints short usage hints when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	ui := commandUI(out)
	cmd := meta.Slug
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s invoke -f <function> [flags]", cmd))
	ui.Info(fmt.Sprintf("  %s invoke local -f <function> [-e NAME=VALUE ...] [flags]", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s invoke --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") || strings.Contains(msg, "expected a value") {
		ui := commandUI(out)
		cmd := meta.Slug
		switch {
		case strings.Contains(msg, "--function"):
			ui.Warn("`-f/--function` expects a function name.")
			ui.Info(fmt.Sprintf("Example: %s invoke local -f hello", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.local invoke local -f hello", cmd))
			return 1
		case strings.Contains(msg, "--env"):
			ui.Warn("`-e/--env` expects NAME=VALUE.")
			ui.Info(fmt.Sprintf("Example: %s invoke local -f hello -e STAGE=dev", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}
