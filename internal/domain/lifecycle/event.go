// Where: cli/internal/domain/lifecycle/event.go
// What: Typed lifecycle event names.
// Why: Replace free-form hook keys with a parsed, validated event type.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

// Phase is the position of a hook relative to a lifecycle step.
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseOn     Phase = ""
	PhaseAfter  Phase = "after"
)

// Event names a point in a command's lifecycle, e.g. "invoke:local:loadEnvVars"
// or "after:invoke:invoke".
type Event string

var errInvalidEvent = errors.New("invalid lifecycle event")

// EventFor builds the event name for a phase, command path, and step.
func EventFor(phase Phase, commandPath, step string) Event {
	parts := strings.Fields(commandPath)
	parts = append(parts, step)
	name := strings.Join(parts, ":")
	if phase != PhaseOn {
		name = string(phase) + ":" + name
	}
	return Event(name)
}

// Parse splits the event into its phase, space-separated command path, and step.
func (e Event) Parse() (Phase, string, string, error) {
	parts := strings.Split(string(e), ":")
	phase := PhaseOn
	switch parts[0] {
	case string(PhaseBefore):
		phase = PhaseBefore
		parts = parts[1:]
	case string(PhaseAfter):
		phase = PhaseAfter
		parts = parts[1:]
	}
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("%w %q: want [before:|after:]<command>:<step>", errInvalidEvent, e)
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return "", "", "", fmt.Errorf("%w %q: empty segment", errInvalidEvent, e)
		}
	}
	last := len(parts) - 1
	return phase, strings.Join(parts[:last], " "), parts[last], nil
}

func (e Event) String() string {
	return string(e)
}
