package templates

import (
	"strings"
	"sync"

	"github.com/goliatone/go-builder/internal/identity"
	"github.com/google/uuid"
)

// Registry stores the built-in and host-defined template definitions.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]*Definition
	order       []string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]*Definition),
	}
}

// Register adds a definition, replacing any previous entry for the same key.
// A definition without a key or composition is rejected as a catalog bug.
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return ErrDefinitionInvalid
	}
	key := canonicalKey(def.Key)
	if key == "" {
		return ErrKeyRequired
	}
	if len(def.Composition) == 0 {
		return ErrDefinitionInvalid
	}

	def.Key = key
	if def.ID == uuid.Nil {
		def.ID = identity.TemplateUUID(key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.definitions == nil {
		r.definitions = make(map[string]*Definition)
	}
	if _, exists := r.definitions[key]; !exists {
		r.order = append(r.order, key)
	}
	r.definitions[key] = def
	return nil
}

// Get resolves a definition by key.
func (r *Registry) Get(key string) (*Definition, error) {
	key = canonicalKey(key)
	if key == "" {
		return nil, ErrKeyRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[key]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return def, nil
}

// List returns every registered definition in registration order.
func (r *Registry) List() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Definition, 0, len(r.order))
	for _, key := range r.order {
		if def, ok := r.definitions[key]; ok {
			out = append(out, def)
		}
	}
	return out
}

// FilterByMood returns the definitions carrying the given mood tag, in
// registration order. An empty tag returns everything.
func (r *Registry) FilterByMood(tag MoodTag) []*Definition {
	all := r.List()
	if tag == "" {
		return all
	}
	out := make([]*Definition, 0, len(all))
	for _, def := range all {
		if def.HasMood(tag) {
			out = append(out, def)
		}
	}
	return out
}

func canonicalKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
