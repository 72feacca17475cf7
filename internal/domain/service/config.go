// Where: cli/internal/domain/service/config.go
// What: Service definition model shared by the host and its plugins.
// Why: Give plugins a typed, pointer-shared view of serverless.yml.
package service

import (
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the decoded service definition. A single *Config is shared by the
// host and every plugin for the lifetime of a command; writers must merge into
// it rather than replace sub-structures.
type Config struct {
	Service   string              `yaml:"service"`
	Provider  Provider            `yaml:"provider"`
	Functions map[string]Function `yaml:"functions,omitempty"`
}

// Provider is the cloud-provider section of the service definition.
type Provider struct {
	Name        string `yaml:"name"`
	Runtime     string `yaml:"runtime,omitempty"`
	Stage       string `yaml:"stage,omitempty"`
	Region      string `yaml:"region,omitempty"`
	Environment EnvMap `yaml:"environment,omitempty"`
}

// Function is a single function declaration.
type Function struct {
	Handler     string `yaml:"handler"`
	Runtime     string `yaml:"runtime,omitempty"`
	Description string `yaml:"description,omitempty"`
	Timeout     int    `yaml:"timeout,omitempty"`
	MemorySize  int    `yaml:"memorySize,omitempty"`
	Environment EnvMap `yaml:"environment,omitempty"`
}

// EnvMap is an environment variable mapping. YAML scalars of any type
// (numbers, booleans) are kept as their literal text.
type EnvMap map[string]string

// UnmarshalYAML decodes a mapping of scalars, rejecting nested values.
func (e *EnvMap) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*e = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: environment must be a mapping", node.Line)
	}
	out := make(EnvMap, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: environment value for %q must be a scalar", value.Line, key.Value)
		}
		if value.Tag == "!!null" {
			out[key.Value] = ""
			continue
		}
		out[key.Value] = value.Value
	}
	*e = out
	return nil
}

// resolveAlias follows *anchor references to the anchored node.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// ProviderEnvironment returns the provider-level environment, creating an
// empty mapping when the service definition declared none.
func (c *Config) ProviderEnvironment() EnvMap {
	if c.Provider.Environment == nil {
		c.Provider.Environment = EnvMap{}
	}
	return c.Provider.Environment
}

// Function returns the named function declaration.
func (c *Config) Function(name string) (Function, bool) {
	fn, ok := c.Functions[name]
	return fn, ok
}

// FunctionNames returns the declared function names in sorted order.
func (c *Config) FunctionNames() []string {
	return slices.Sorted(maps.Keys(c.Functions))
}

// RuntimeFor returns the function runtime, falling back to the provider runtime.
func (c *Config) RuntimeFor(fn Function) string {
	if fn.Runtime != "" {
		return fn.Runtime
	}
	return c.Provider.Runtime
}
