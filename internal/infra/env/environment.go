// Where: cli/internal/infra/env/environment.go
// What: Mutable environment contexts handed to lifecycle hooks and executors.
// Why: Make the write-through process environment an explicit dependency instead of ambient state.
package env

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// Environment is a mutable set of environment variables.
// Implementations only add or overwrite keys; nothing in the CLI removes them.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	// Environ returns the variables as sorted "KEY=VALUE" strings.
	Environ() []string
}

// Process writes through to the environment of the running process.
// Every child process started afterwards observes its values.
type Process struct{}

// NewProcess returns the process-wide environment.
func NewProcess() Process {
	return Process{}
}

func (Process) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (Process) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}

func (Process) Environ() []string {
	entries := os.Environ()
	slices.Sort(entries)
	return entries
}

// Map is an in-memory Environment, e.g. for a container executor that
// receives its variables explicitly.
type Map struct {
	vars map[string]string
}

// NewMap returns a Map seeded with a copy of initial.
func NewMap(initial map[string]string) *Map {
	vars := make(map[string]string, len(initial))
	maps.Copy(vars, initial)
	return &Map{vars: vars}
}

func (m *Map) Lookup(key string) (string, bool) {
	value, ok := m.vars[key]
	return value, ok
}

func (m *Map) Set(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") || strings.ContainsRune(value, 0) {
		return fmt.Errorf("set env %q: invalid argument", key)
	}
	if m.vars == nil {
		m.vars = map[string]string{}
	}
	m.vars[key] = value
	return nil
}

func (m *Map) Environ() []string {
	keys := slices.Sorted(maps.Keys(m.vars))
	entries := make([]string, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, key+"="+m.vars[key])
	}
	return entries
}

// Snapshot returns a copy of the variables.
func (m *Map) Snapshot() map[string]string {
	out := make(map[string]string, len(m.vars))
	maps.Copy(out, m.vars)
	return out
}

// Merge sets every entry of vars on target, overwriting existing values.
// Keys are applied in sorted order so failures are deterministic.
func Merge(target Environment, vars map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(vars)) {
		if err := target.Set(key, vars[key]); err != nil {
			return err
		}
	}
	return nil
}

// Backfill inserts into dst each entry of defaults whose key is absent,
// leaving existing entries untouched. It returns the keys that were added.
func Backfill(dst, defaults map[string]string) []string {
	var added []string
	for _, key := range slices.Sorted(maps.Keys(defaults)) {
		if _, ok := dst[key]; ok {
			continue
		}
		dst[key] = defaults[key]
		added = append(added, key)
	}
	return added
}
