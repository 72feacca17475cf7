// Where: cli/internal/command/invoke.go
// What: invoke and invoke local command handlers.
// Why: Translate kong flags into lifecycle options and run the plugin lifecycle.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/poruru/serverless-invoke/cli/internal/constants"
	"github.com/poruru/serverless-invoke/cli/internal/domain/lifecycle"
	domain "github.com/poruru/serverless-invoke/cli/internal/domain/service"
	"github.com/poruru/serverless-invoke/cli/internal/infra/envutil"
	"github.com/poruru/serverless-invoke/cli/internal/infra/service"
	"github.com/poruru/serverless-invoke/cli/internal/infra/ui"
	"github.com/poruru/serverless-invoke/cli/internal/meta"
	"github.com/poruru/serverless-invoke/cli/internal/plugin/invoke"
	"github.com/poruru/serverless-invoke/cli/internal/plugin/plan"
)

const (
	pathInvoke      = "invoke"
	pathInvokeLocal = "invoke local"
)

type (
	// InvokeCmd groups remote and local invocation. Without a subcommand
	// it behaves as `invoke remote`.
	InvokeCmd struct {
		Remote InvokeRemoteCmd `cmd:"" default:"withargs" help:"Invoke a deployed function"`
		Local  InvokeLocalCmd  `cmd:"" help:"Invoke function locally"`
	}

	// InvokeRemoteCmd defines the flags of `invoke`.
	InvokeRemoteCmd struct {
		Function    string `short:"f" help:"The function name"`
		Stage       string `short:"s" help:"Stage of the service"`
		Region      string `short:"r" help:"Region of the service"`
		Qualifier   string `short:"q" help:"Version number or alias to invoke"`
		Path        string `short:"p" help:"Path to JSON or YAML file holding input data"`
		Type        string `short:"t" help:"Type of invocation"`
		Log         bool   `short:"l" help:"Trigger logging data output"`
		Data        string `short:"d" help:"Input data"`
		Raw         bool   `help:"Flag to pass input data as a raw string"`
		Context     string `help:"Context of the service"`
		ContextPath string `name:"contextPath" help:"Path to JSON or YAML file holding context data"`
	}

	// InvokeLocalCmd defines the flags of `invoke local`.
	InvokeLocalCmd struct {
		Function    string   `short:"f" help:"Name of the function"`
		Path        string   `short:"p" help:"Path to JSON or YAML file holding input data"`
		Data        string   `short:"d" help:"Input data"`
		Raw         bool     `help:"Flag to pass input data as a raw string"`
		Context     string   `short:"c" help:"Context of the service"`
		ContextPath string   `name:"contextPath" short:"x" help:"Path to JSON or YAML file holding context data"`
		Env         []string `short:"e" sep:"none" help:"Override environment variables. e.g. --env VAR1=val1 --env VAR2=val2"`
		Docker      bool     `help:"Flag to turn on docker use for node/python/ruby/java"`
		DockerArg   []string `name:"docker-arg" sep:"none" help:"Arguments to docker run command. e.g. --docker-arg \"-p 9229:9229\""`
	}
)

func (c InvokeRemoteCmd) options() lifecycle.Options {
	return lifecycle.Options{
		invoke.OptFunction:    c.Function,
		invoke.OptStage:       c.Stage,
		invoke.OptRegion:      c.Region,
		invoke.OptQualifier:   c.Qualifier,
		invoke.OptPath:        c.Path,
		invoke.OptType:        c.Type,
		invoke.OptLog:         c.Log,
		invoke.OptData:        c.Data,
		invoke.OptRaw:         c.Raw,
		invoke.OptContext:     c.Context,
		invoke.OptContextPath: c.ContextPath,
	}
}

func (c InvokeLocalCmd) options() lifecycle.Options {
	return lifecycle.Options{
		invoke.OptFunction:    c.Function,
		invoke.OptPath:        c.Path,
		invoke.OptData:        c.Data,
		invoke.OptRaw:         c.Raw,
		invoke.OptContext:     c.Context,
		invoke.OptContextPath: c.ContextPath,
		invoke.OptEnv:         c.Env,
		invoke.OptDocker:      c.Docker,
		invoke.OptDockerArg:   c.DockerArg,
	}
}

func runInvokeRemote(ctx context.Context, cli CLI, deps Dependencies, s session) int {
	return runInvoke(ctx, cli, deps, s, pathInvoke, cli.Invoke.Remote.options())
}

func runInvokeLocal(ctx context.Context, cli CLI, deps Dependencies, s session) int {
	return runInvoke(ctx, cli, deps, s, pathInvokeLocal, cli.Invoke.Local.options())
}

func runInvoke(
	ctx context.Context,
	cli CLI,
	deps Dependencies,
	s session,
	path string,
	opts lifecycle.Options,
) int {
	cwd, err := deps.Getwd()
	if err != nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("get working directory: %w", err))
	}
	svc, file, err := service.Resolve(cwd, cli.Config)
	if err != nil {
		if errors.Is(err, service.ErrServiceFileNotFound) {
			return exitWithSuggestion(deps.ErrOut, err.Error(), []string{
				fmt.Sprintf("create %s in the project root", meta.ServiceFile),
				fmt.Sprintf("%s --config <path> %s ...", meta.Slug, path),
			})
		}
		return exitWithError(deps.ErrOut, err)
	}
	s.logger.Debug("loaded service", "file", file, "service", svc.Service)

	if !opts.Has(invoke.OptFunction) {
		name, err := selectFunction(svc, deps)
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		if name != "" {
			opts[invoke.OptFunction] = name
		}
	}

	manager, err := newManager(svc, deps, s)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	out := commandUI(deps.Out)
	out.Block("📦", "Service", serviceSummary(svc, file, opts))
	if err := manager.Run(ctx, path, opts); err != nil {
		if errors.Is(err, lifecycle.ErrMissingOption) {
			return exitWithSuggestionAndAvailable(
				deps.ErrOut,
				err.Error(),
				[]string{fmt.Sprintf("%s %s -f <function>", meta.Slug, path)},
				svc.FunctionNames(),
			)
		}
		return exitWithError(deps.ErrOut, err)
	}
	out.Success(fmt.Sprintf("%s %s completed for %s", meta.Slug, path, opts.String(invoke.OptFunction)))
	return 0
}

func serviceSummary(svc *domain.Config, file string, opts lifecycle.Options) []ui.KeyValue {
	rows := []ui.KeyValue{
		{Key: "Service", Value: svc.Service},
		{Key: "File", Value: file},
		{Key: "Provider", Value: svc.Provider.Name},
	}
	if fn := opts.String(invoke.OptFunction); fn != "" {
		rows = append(rows, ui.KeyValue{Key: "Function", Value: fn})
	}
	return rows
}

// newManager registers the built-in plugins over the shared service
// configuration and validates their hook bindings.
func newManager(svc *domain.Config, deps Dependencies, s session) (*lifecycle.Manager, error) {
	manager := lifecycle.NewManager(s.logger)
	plugins := []lifecycle.Plugin{
		invoke.New(svc, deps.Environment, s.logger),
		plan.New(svc, deps.Environment, commandUI(deps.Out)),
	}
	for _, p := range plugins {
		if err := manager.Register(p); err != nil {
			return nil, err
		}
	}
	if err := manager.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plugin configuration: %w", err)
	}
	return manager, nil
}

// selectFunction prompts for a function when prompting is possible.
// It returns "" when prompting is disabled or there is nothing to pick.
func selectFunction(svc *domain.Config, deps Dependencies) (string, error) {
	if envutil.HostEnvBool(constants.HostSuffixNoPrompts) || !deps.CanPrompt() {
		return "", nil
	}
	names := svc.FunctionNames()
	if len(names) == 0 {
		return "", nil
	}
	return deps.Prompter.Select("Select a function", names)
}
