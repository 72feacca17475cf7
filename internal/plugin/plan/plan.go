// Where: cli/internal/plugin/plan/plan.go
// What: Invocation plan rendering for `invoke` and `invoke local`.
// Why: Show what an executor would receive once lifecycle hooks have prepared the environment.
package plan

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/poruru/serverless-invoke/cli/internal/domain/lifecycle"
	"github.com/poruru/serverless-invoke/cli/internal/domain/service"
	"github.com/poruru/serverless-invoke/cli/internal/infra/env"
	"github.com/poruru/serverless-invoke/cli/internal/infra/ui"
	"github.com/poruru/serverless-invoke/cli/internal/plugin/invoke"
)

// Lifecycle events this plugin binds.
const (
	EventInvoke      lifecycle.Event = "invoke:invoke"
	EventInvokeLocal lifecycle.Event = "invoke:local:invoke"
)

var errFunctionNotFound = errors.New("function not found")

// Plugin renders invocation plans. It declares no commands of its own.
type Plugin struct {
	service *service.Config
	env     env.Environment
	ui      ui.UserInterface
}

// New creates the plan plugin.
func New(svc *service.Config, environment env.Environment, out ui.UserInterface) *Plugin {
	return &Plugin{service: svc, env: environment, ui: out}
}

// Name identifies the plugin in hook error messages.
func (p *Plugin) Name() string {
	return "plan"
}

// Commands returns nil: plans attach to the invoke plugin's commands.
func (p *Plugin) Commands() []lifecycle.Command {
	return nil
}

// Hooks binds plan rendering to the main invoke step of each command.
func (p *Plugin) Hooks() []lifecycle.Binding {
	return []lifecycle.Binding{
		{Event: EventInvoke, Hook: lifecycle.HookFunc(p.RenderRemote)},
		{Event: EventInvokeLocal, Hook: lifecycle.HookFunc(p.RenderLocal)},
	}
}

// LocalPlan is the data rendered for a local invocation.
type LocalPlan struct {
	Service     string
	Function    string
	Handler     string
	Runtime     string
	Input       string
	Docker      bool
	DockerArgs  []string
	Environment map[string]string
}

// RemotePlan is the data rendered for a remote invocation.
type RemotePlan struct {
	Service   string
	Function  string
	Stage     string
	Region    string
	Qualifier string
	Type      string
	Input     string
}

// RenderRemote renders the plan for `invoke`.
func (p *Plugin) RenderRemote(_ context.Context, opts lifecycle.Options) error {
	name := opts.String(invoke.OptFunction)
	if _, err := p.function(name); err != nil {
		return err
	}
	plan := RemotePlan{
		Service:   p.service.Service,
		Function:  name,
		Stage:     firstNonEmpty(opts.String(invoke.OptStage), p.service.Provider.Stage),
		Region:    firstNonEmpty(opts.String(invoke.OptRegion), p.service.Provider.Region),
		Qualifier: opts.String(invoke.OptQualifier),
		Type:      opts.String(invoke.OptType),
		Input:     describeInput(opts),
	}
	text, err := render("remote.tmpl", plan)
	if err != nil {
		return err
	}
	p.ui.Raw(text)
	return nil
}

// RenderLocal renders the plan for `invoke local`. It must run after the
// loadEnvVars step so that the environment reflects defaults and overrides.
func (p *Plugin) RenderLocal(_ context.Context, opts lifecycle.Options) error {
	name := opts.String(invoke.OptFunction)
	fn, err := p.function(name)
	if err != nil {
		return err
	}
	plan := LocalPlan{
		Service:     p.service.Service,
		Function:    name,
		Handler:     fn.Handler,
		Runtime:     p.service.RuntimeFor(fn),
		Input:       describeInput(opts),
		Docker:      opts.Bool(invoke.OptDocker),
		DockerArgs:  opts.Strings(invoke.OptDockerArg),
		Environment: p.effectiveEnvironment(fn, opts),
	}
	text, err := render("local.tmpl", plan)
	if err != nil {
		return err
	}
	p.ui.Raw(text)
	return nil
}

// effectiveEnvironment layers provider and function environments, then the
// current values of the defaults and --env names from the environment context.
func (p *Plugin) effectiveEnvironment(fn service.Function, opts lifecycle.Options) map[string]string {
	out := map[string]string{}
	maps.Copy(out, p.service.Provider.Environment)
	maps.Copy(out, fn.Environment)

	names := invoke.DefaultEnvVars()
	maps.Copy(names, invoke.EnvOverrides(opts))
	for key := range names {
		if value, ok := p.env.Lookup(key); ok {
			out[key] = value
		}
	}
	return out
}

func (p *Plugin) function(name string) (service.Function, error) {
	if p.service == nil {
		return service.Function{}, invoke.ErrServiceNotLoaded
	}
	fn, ok := p.service.Function(name)
	if !ok {
		available := p.service.FunctionNames()
		if len(available) == 0 {
			return service.Function{}, fmt.Errorf("%w: %q (service declares no functions)", errFunctionNotFound, name)
		}
		return service.Function{}, fmt.Errorf(
			"%w: %q (available: %s)",
			errFunctionNotFound,
			name,
			strings.Join(available, ", "),
		)
	}
	return fn, nil
}

func describeInput(opts lifecycle.Options) string {
	switch {
	case opts.Has(invoke.OptData):
		if opts.Bool(invoke.OptRaw) {
			return "raw data"
		}
		return "inline data"
	case opts.Has(invoke.OptPath):
		return "file " + opts.String(invoke.OptPath)
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
