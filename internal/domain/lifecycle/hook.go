// Where: cli/internal/domain/lifecycle/hook.go
// What: Hook, binding, and plugin contracts.
package lifecycle

import "context"

// Hook is a handler fired by the Manager at a lifecycle event.
type Hook interface {
	Run(ctx context.Context, opts Options) error
}

// HookFunc adapts a function to Hook.
type HookFunc func(ctx context.Context, opts Options) error

// Run calls f(ctx, opts).
func (f HookFunc) Run(ctx context.Context, opts Options) error {
	return f(ctx, opts)
}

// Binding attaches a hook to an event.
type Binding struct {
	Event Event
	Hook  Hook
}

// Plugin contributes commands and hook bindings to the Manager.
// Hooks() order is the order hooks fire in for a shared event.
type Plugin interface {
	Name() string
	Commands() []Command
	Hooks() []Binding
}
