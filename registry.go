package stext

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
)

// Processors carry no state, so a single instance per grammar suffices for
// a whole process. The registry gives grammar variants a well-known name
// under which applications can look them up, e.g. "path" or "email".
var registry = struct {
	sync.RWMutex
	m *treemap.Map
}{m: treemap.NewWithStringComparator()}

// Register makes a processor available under the given name, replacing any
// processor previously registered under it.
func Register(name string, p Processor) {
	registry.Lock()
	defer registry.Unlock()
	registry.m.Put(name, p)
	tracer().Debugf("registered structured text processor %q", name)
}

// Lookup returns the processor registered under the given name, or
// (nil, false) if there is none.
func Lookup(name string) (Processor, bool) {
	registry.RLock()
	defer registry.RUnlock()
	p, ok := registry.m.Get(name)
	if !ok {
		return nil, false
	}
	return p.(Processor), true
}

// Names returns the names of all registered processors in lexicographic
// order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	keys := registry.m.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}
