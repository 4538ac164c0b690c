package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotRegistered     = errors.New("not registered")
)

// Registry maps names to items of one kind. Names are matched without
// regard to case or surrounding spaces. Safe for concurrent use.
type Registry[T any] struct {
	kind string

	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty registry. kind names the items in error messages,
// e.g. "template engine".
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds item under name
func (r *Registry[T]) Register(name string, item T) error {
	k := key(name)
	if k == "" {
		return fmt.Errorf("%s %w", r.kind, ErrEmptyName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[k]; exists {
		return fmt.Errorf("%s %q %w", r.kind, k, ErrAlreadyRegistered)
	}
	r.items[k] = item
	return nil
}

// MustRegister is Register for init functions, where a failure is a
// programming error
func (r *Registry[T]) MustRegister(name string, item T) {
	if err := r.Register(name, item); err != nil {
		panic(err)
	}
}

// Lookup returns the item registered under name
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key(name)]
	return item, ok
}

// Get is Lookup with an error listing the known names when name is unknown
func (r *Registry[T]) Get(name string) (T, error) {
	item, ok := r.Lookup(name)
	if !ok {
		return item, fmt.Errorf("%s %q %w (available: %s)",
			r.kind, name, ErrNotRegistered, strings.Join(r.Names(), ", "))
	}
	return item, nil
}

// Names returns the registered names in sorted order
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
