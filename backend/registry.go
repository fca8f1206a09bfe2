package backend

import (
	"cmp"
	"slices"
	"sync"
)

// TargetFactory makes a fresh target. Each render session gets its own.
type TargetFactory func() Target

// Priorities of the built-in targets. Default prefers the highest.
const (
	PriorityRaster    = 20
	PriorityRecording = 10
)

type targetEntry struct {
	name     string
	priority int
	factory  TargetFactory
}

var (
	registryMu sync.RWMutex
	targets    = make(map[string]targetEntry)
)

// Register adds a named output target. Re-registering a name replaces its
// factory and priority. It panics on an empty name or a nil factory.
func Register(name string, priority int, factory TargetFactory) {
	if name == "" || factory == nil {
		panic("backend: Register needs a name and a factory")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	targets[name] = targetEntry{name: name, priority: priority, factory: factory}
}

// Unregister removes a target.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(targets, name)
}

// Available lists the target names in alphabetical order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether name is a known target.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := targets[name]
	return ok
}

// Get makes a target by name, or returns nil for an unknown name.
func Get(name string) Target {
	registryMu.RLock()
	e, ok := targets[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return e.factory()
}

// Lookup is Get with ErrTargetNotAvailable for unknown names.
func Lookup(name string) (Target, error) {
	if t := Get(name); t != nil {
		return t, nil
	}
	return nil, ErrTargetNotAvailable
}

// byPreference orders the registered targets by descending priority, then
// by name.
func byPreference() []targetEntry {
	registryMu.RLock()
	entries := make([]targetEntry, 0, len(targets))
	for _, e := range targets {
		entries = append(entries, e)
	}
	registryMu.RUnlock()

	slices.SortFunc(entries, func(a, b targetEntry) int {
		if c := cmp.Compare(b.priority, a.priority); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	return entries
}

// Default makes the preferred target: highest priority first, ties broken
// by name. Factories that return nil are skipped. It returns nil when no
// target can be made.
func Default() Target {
	for _, e := range byPreference() {
		if t := e.factory(); t != nil {
			return t
		}
	}
	return nil
}

// MustDefault is Default that panics when no target can be made.
func MustDefault() Target {
	t := Default()
	if t == nil {
		panic("backend: no target available")
	}
	return t
}
