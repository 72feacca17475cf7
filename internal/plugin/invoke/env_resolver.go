// Where: cli/internal/plugin/invoke/env_resolver.go
// What: Environment resolution for `invoke local`.
// Why: Layer built-in defaults, provider environment, and --env overrides before execution.
package invoke

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poruru/serverless-invoke/cli/internal/constants"
	"github.com/poruru/serverless-invoke/cli/internal/domain/lifecycle"
	"github.com/poruru/serverless-invoke/cli/internal/infra/env"
)

// ErrServiceNotLoaded is returned when the shared service configuration is missing.
var ErrServiceNotLoaded = errors.New("service configuration not loaded")

// DefaultEnvVars returns the provider-independent variables set for every
// local invocation.
func DefaultEnvVars() map[string]string {
	return map[string]string{
		constants.EnvIsLocal: "true",
	}
}

// LoadEnvVarsForLocal prepares the environment for a local invocation:
//
//  1. backfill the defaults into provider.environment (existing keys win),
//  2. merge the defaults into the process environment (defaults win),
//  3. apply --env NAME=VALUE overrides in order (overrides always win).
//
// Container executors forward only the provider environment, so the defaults
// are backfilled there as well.
func (p *Plugin) LoadEnvVarsForLocal(_ context.Context, opts lifecycle.Options) error {
	if p.service == nil {
		return ErrServiceNotLoaded
	}
	defaults := DefaultEnvVars()

	added := env.Backfill(p.service.ProviderEnvironment(), defaults)
	if len(added) > 0 {
		p.logger.Debug("backfilled provider environment", "keys", added)
	}

	if err := env.Merge(p.env, defaults); err != nil {
		return fmt.Errorf("apply default env: %w", err)
	}

	for _, raw := range opts.Strings(OptEnv) {
		name, value := ParseEnvOverride(raw)
		if name == "" {
			p.logger.Warn("ignoring --env override without a name", "value", raw)
			continue
		}
		if err := p.env.Set(name, value); err != nil {
			p.logger.Warn("ignoring --env override", "name", name, "err", err)
		}
	}
	return nil
}

// ParseEnvOverride splits a NAME=VALUE override on the first "=".
// A missing "=" or empty value yields "".
func ParseEnvOverride(raw string) (string, string) {
	name, value, _ := strings.Cut(raw, "=")
	return name, value
}

// EnvOverrides returns the overrides as a map, later duplicates winning.
func EnvOverrides(opts lifecycle.Options) map[string]string {
	out := map[string]string{}
	for _, raw := range opts.Strings(OptEnv) {
		if name, value := ParseEnvOverride(raw); name != "" {
			out[name] = value
		}
	}
	return out
}
