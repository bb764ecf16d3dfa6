// Package registry stores the message descriptor of each registered Go
// type. The codec looks a type up here when it needs to serialize or
// parse a nested message.
package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry maps Go types to their message descriptors. Descriptors are
// opaque to the registry; the codec package owns their concrete type.
type Registry struct {
	mu       sync.RWMutex
	messages map[reflect.Type]interface{}
}

// Default is the registry used by codec.Register and codec.MessageOf.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register stores the descriptor for the given type. Registering the
// same type twice is an error.
func (r *Registry) Register(rt reflect.Type, descriptor interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.messages == nil {
		r.messages = make(map[reflect.Type]interface{})
	}
	if _, exists := r.messages[rt]; exists {
		return fmt.Errorf("message type already registered: %v", rt)
	}

	r.messages[rt] = descriptor
	return nil
}

// Lookup returns the descriptor registered for the given type.
func (r *Registry) Lookup(rt reflect.Type) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptor, ok := r.messages[rt]
	return descriptor, ok
}

// ListMessages returns the names of all registered message types, sorted.
func (r *Registry) ListMessages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.messages))
	for rt := range r.messages {
		names = append(names, rt.String())
	}
	sort.Strings(names)
	return names
}
