// Where: cli/internal/plugin/invoke/commands.go
// What: Command and option descriptors for invoke and invoke local.
// Why: Let the lifecycle manager validate options and sequence events for the CLI.
package invoke

import "github.com/poruru/serverless-invoke/cli/internal/domain/lifecycle"

// Option names shared with the CLI layer.
const (
	OptFunction    = "function"
	OptStage       = "stage"
	OptRegion      = "region"
	OptQualifier   = "qualifier"
	OptPath        = "path"
	OptType        = "type"
	OptLog         = "log"
	OptData        = "data"
	OptRaw         = "raw"
	OptContext     = "context"
	OptContextPath = "contextPath"
	OptEnv         = "env"
	OptDocker      = "docker"
	OptDockerArg   = "docker-arg"
)

// Commands declares `invoke` and its `local` subcommand. Only the env option
// is read by this plugin; the rest are forwarded to the executor.
func (p *Plugin) Commands() []lifecycle.Command {
	return []lifecycle.Command{{
		Name:            "invoke",
		Usage:           "Invoke a deployed function",
		ConfigDependent: true,
		LifecycleEvents: []string{"invoke"},
		Options: []lifecycle.Option{
			{Name: OptFunction, Usage: "The function name", Required: true, Shortcut: "f"},
			{Name: OptStage, Usage: "Stage of the service", Shortcut: "s"},
			{Name: OptRegion, Usage: "Region of the service", Shortcut: "r"},
			{Name: OptQualifier, Usage: "Version number or alias to invoke", Shortcut: "q"},
			{Name: OptPath, Usage: "Path to JSON or YAML file holding input data", Shortcut: "p"},
			{Name: OptType, Usage: "Type of invocation", Shortcut: "t"},
			{Name: OptLog, Usage: "Trigger logging data output", Shortcut: "l", Flag: true},
			{Name: OptData, Usage: "Input data", Shortcut: "d"},
			{Name: OptRaw, Usage: "Flag to pass input data as a raw string", Flag: true},
			{Name: OptContext, Usage: "Context of the service"},
			{Name: OptContextPath, Usage: "Path to JSON or YAML file holding context data"},
		},
		Commands: []lifecycle.Command{{
			Name:            "local",
			Usage:           "Invoke function locally",
			LifecycleEvents: []string{"loadEnvVars", "invoke"},
			Options: []lifecycle.Option{
				{Name: OptFunction, Usage: "Name of the function", Required: true, Shortcut: "f"},
				{Name: OptPath, Usage: "Path to JSON or YAML file holding input data", Shortcut: "p"},
				{Name: OptData, Usage: "input data", Shortcut: "d"},
				{Name: OptRaw, Usage: "Flag to pass input data as a raw string", Flag: true},
				{Name: OptContext, Usage: "Context of the service", Shortcut: "c"},
				{Name: OptContextPath, Usage: "Path to JSON or YAML file holding context data", Shortcut: "x"},
				{
					Name:     OptEnv,
					Usage:    "Override environment variables. e.g. --env VAR1=val1 --env VAR2=val2",
					Shortcut: "e",
					Multiple: true,
				},
				{Name: OptDocker, Usage: "Flag to turn on docker use for node/python/ruby/java", Flag: true},
				{
					Name:     OptDockerArg,
					Usage:    `Arguments to docker run command. e.g. --docker-arg "-p 9229:9229"`,
					Multiple: true,
				},
			},
		}},
	}}
}
