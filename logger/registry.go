package logger

import (
	"maps"
	"slices"
	"sync"
)

// components holds the loggers handed out by Get. Pinned entries come from
// Register; derived entries are built from the global logger on first use
// and dropped whenever the global logger is replaced.
var components = struct {
	sync.RWMutex
	pinned  map[string]*Logger
	derived map[string]*Logger
}{
	pinned:  make(map[string]*Logger),
	derived: make(map[string]*Logger),
}

// Register pins the logger returned by Get for a component name.
func Register(name string, l *Logger) {
	components.Lock()
	defer components.Unlock()
	components.pinned[name] = l
	delete(components.derived, name)
}

// Unregister drops a pinned logger so the component falls back to the
// global logger.
func Unregister(name string) {
	components.Lock()
	defer components.Unlock()
	delete(components.pinned, name)
}

// Get returns the logger for a component: the pinned one, or the global
// logger tagged with the component name. Every queue calls Get, so the
// derived logger is built once per name.
func Get(name string) *Logger {
	components.RLock()
	l, ok := components.pinned[name]
	if !ok {
		l, ok = components.derived[name]
	}
	components.RUnlock()
	if ok {
		return l
	}

	components.Lock()
	defer components.Unlock()
	if l, ok := components.pinned[name]; ok {
		return l
	}
	if l, ok := components.derived[name]; ok {
		return l
	}
	l = GetGlobalLogger().WithComponent(name)
	components.derived[name] = l
	return l
}

// Components lists the component names Get has a logger for, sorted.
func Components() []string {
	components.RLock()
	defer components.RUnlock()
	names := slices.Collect(maps.Keys(components.pinned))
	for name := range components.derived {
		if _, ok := components.pinned[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// dropDerived forgets the loggers derived from the previous global logger.
func dropDerived() {
	components.Lock()
	defer components.Unlock()
	clear(components.derived)
}
