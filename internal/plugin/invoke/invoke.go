// Where: cli/internal/plugin/invoke/invoke.go
// What: The invoke plugin: remote and local invocation commands.
// Why: Prepare local-invocation environment state for the downstream executor.
package invoke

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/poruru/serverless-invoke/cli/internal/domain/lifecycle"
	"github.com/poruru/serverless-invoke/cli/internal/domain/service"
	"github.com/poruru/serverless-invoke/cli/internal/infra/env"
)

// Lifecycle events this plugin binds.
const (
	EventLoadEnvVars      lifecycle.Event = "invoke:local:loadEnvVars"
	EventAfterInvoke      lifecycle.Event = "after:invoke:invoke"
	EventAfterInvokeLocal lifecycle.Event = "after:invoke:local:invoke"
)

// Plugin implements lifecycle.Plugin for the invoke commands.
type Plugin struct {
	service *service.Config
	env     env.Environment
	logger  *log.Logger
}

// New creates the plugin over the shared service configuration and the
// environment the executor will run with.
func New(svc *service.Config, environment env.Environment, logger *log.Logger) *Plugin {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Plugin{
		service: svc,
		env:     environment,
		logger:  logger,
	}
}

// Name identifies the plugin in hook error messages.
func (p *Plugin) Name() string {
	return "invoke"
}

// Hooks binds environment resolution to `invoke local` and the track
// extension points after each invocation.
func (p *Plugin) Hooks() []lifecycle.Binding {
	return []lifecycle.Binding{
		{Event: EventLoadEnvVars, Hook: lifecycle.HookFunc(p.LoadEnvVarsForLocal)},
		{Event: EventAfterInvoke, Hook: lifecycle.HookFunc(p.TrackInvoke)},
		{Event: EventAfterInvokeLocal, Hook: lifecycle.HookFunc(p.TrackInvokeLocal)},
	}
}

// TrackInvoke is an extension point after a remote invocation. It does nothing.
func (p *Plugin) TrackInvoke(context.Context, lifecycle.Options) error {
	return nil
}

// TrackInvokeLocal is an extension point after a local invocation. It does nothing.
func (p *Plugin) TrackInvokeLocal(context.Context, lifecycle.Options) error {
	return nil
}
