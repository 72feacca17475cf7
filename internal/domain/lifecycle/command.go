// Where: cli/internal/domain/lifecycle/command.go
// What: Declarative command descriptors submitted by plugins.
// Why: Let the host validate options and sequence events without plugin code.
package lifecycle

import (
	"fmt"
	"strings"
)

// Command declares a command, its options, and its ordered lifecycle steps.
type Command struct {
	Name            string
	Usage           string
	ConfigDependent bool
	LifecycleEvents []string
	Options         []Option
	Commands        []Command
}

// Option declares a CLI option. Name is the long form used as the Options key.
type Option struct {
	Name     string
	Usage    string
	Shortcut string
	Required bool
	// Flag marks a boolean switch.
	Flag bool
	// Multiple marks a repeatable option collected into a []string.
	Multiple bool
}

// Option returns the declared option with the given name.
func (c Command) Option(name string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Events expands the lifecycle steps into the ordered before/on/after events
// fired for the command at path.
func (c Command) Events(path string) []Event {
	events := make([]Event, 0, len(c.LifecycleEvents)*3)
	for _, step := range c.LifecycleEvents {
		events = append(events,
			EventFor(PhaseBefore, path, step),
			EventFor(PhaseOn, path, step),
			EventFor(PhaseAfter, path, step),
		)
	}
	return events
}

// flatten returns every command in the tree keyed by its space-separated path.
func flatten(prefix string, commands []Command, out map[string]Command, order *[]string) error {
	for _, cmd := range commands {
		name := strings.TrimSpace(cmd.Name)
		if name == "" || strings.ContainsAny(name, ": ") {
			return fmt.Errorf("invalid command name %q", cmd.Name)
		}
		path := name
		if prefix != "" {
			path = prefix + " " + name
		}
		if _, exists := out[path]; exists {
			return fmt.Errorf("command %q declared twice", path)
		}
		out[path] = cmd
		*order = append(*order, path)
		if err := flatten(path, cmd.Commands, out, order); err != nil {
			return err
		}
	}
	return nil
}
