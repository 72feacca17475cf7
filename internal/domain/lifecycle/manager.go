// Where: cli/internal/domain/lifecycle/manager.go
// What: Plugin registry and lifecycle event sequencer.
// Why: Fire plugin hooks at named points of a command, in registration order.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

var (
	// ErrUnknownCommand is returned by Run for a path no plugin declared.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingOption is returned by Run when a required option is absent.
	ErrMissingOption = errors.New("missing required option")
	// ErrUndeclaredEvent is returned by Validate for hooks on events no command fires.
	ErrUndeclaredEvent = errors.New("hook bound to undeclared event")
)

type registeredHook struct {
	plugin string
	event  Event
	hook   Hook
}

// Manager collects plugin commands and hooks and runs command lifecycles.
// It is single-threaded: hooks run synchronously on the caller's goroutine,
// and a Manager must not be used concurrently.
type Manager struct {
	commands map[string]Command
	order    []string
	plugins  []string
	hooks    []registeredHook
	logger   *log.Logger
}

// NewManager creates an empty Manager. A nil logger discards diagnostics.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		commands: map[string]Command{},
		logger:   logger,
	}
}

// Register adds the plugin's commands and appends its hooks.
func (m *Manager) Register(p Plugin) error {
	name := p.Name()
	if slices.Contains(m.plugins, name) {
		return fmt.Errorf("plugin %q registered twice", name)
	}
	if err := flatten("", p.Commands(), m.commands, &m.order); err != nil {
		return fmt.Errorf("plugin %s: %w", name, err)
	}
	for _, b := range p.Hooks() {
		if b.Hook == nil {
			return fmt.Errorf("plugin %s: nil hook for %s", name, b.Event)
		}
		m.hooks = append(m.hooks, registeredHook{plugin: name, event: b.Event, hook: b.Hook})
	}
	m.plugins = append(m.plugins, name)
	m.logger.Debug("registered plugin", "plugin", name, "hooks", len(p.Hooks()))
	return nil
}

// Validate checks that every hook is bound to an event some registered
// command fires. Call it once after all plugins are registered.
func (m *Manager) Validate() error {
	var errs []error
	for _, h := range m.hooks {
		_, path, step, err := h.event.Parse()
		if err != nil {
			errs = append(errs, fmt.Errorf("plugin %s: %w", h.plugin, err))
			continue
		}
		cmd, ok := m.commands[path]
		if !ok || !slices.Contains(cmd.LifecycleEvents, step) {
			errs = append(errs, fmt.Errorf("plugin %s: %w: %s", h.plugin, ErrUndeclaredEvent, h.event))
		}
	}
	return errors.Join(errs...)
}

// Command returns the command declared at the space-separated path.
func (m *Manager) Command(path string) (Command, bool) {
	cmd, ok := m.commands[path]
	return cmd, ok
}

// Commands returns the declared command paths in registration order.
func (m *Manager) Commands() []string {
	return append([]string(nil), m.order...)
}

// Run validates required options for the command at path and fires its
// lifecycle events. The first hook error aborts the remaining events.
func (m *Manager) Run(ctx context.Context, path string, opts Options) error {
	cmd, ok := m.commands[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, path)
	}
	if opts == nil {
		opts = Options{}
	}
	for _, opt := range cmd.Options {
		if opt.Required && !opts.Has(opt.Name) {
			return fmt.Errorf("%w: --%s", ErrMissingOption, opt.Name)
		}
	}

	for _, event := range cmd.Events(path) {
		if err := m.fire(ctx, event, opts); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) fire(ctx context.Context, event Event, opts Options) error {
	for _, h := range m.hooks {
		if h.event != event {
			continue
		}
		m.logger.Debug("running hook", "event", event, "plugin", h.plugin)
		if err := h.hook.Run(ctx, opts); err != nil {
			return fmt.Errorf("hook %s (%s): %w", h.plugin, event, err)
		}
	}
	return nil
}
