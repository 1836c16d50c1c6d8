package sections

import (
	"strings"
	"sync"

	"github.com/goliatone/go-builder/internal/identity"
	"github.com/google/uuid"
)

// Registry stores the built-in and host-defined section manifests. Manifests
// are static data: once registered they must not be mutated.
type Registry struct {
	mu        sync.RWMutex
	manifests map[Type]*Manifest
	order     []Type
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		manifests: make(map[Type]*Manifest),
	}
}

// Register adds a manifest to the registry, replacing any previous entry for
// the same type. A manifest missing its type, default variant, or variant
// membership is rejected as a catalog bug.
func (r *Registry) Register(manifest *Manifest) error {
	if manifest == nil {
		return ErrManifestInvalid
	}
	key := canonicalType(manifest.Type)
	if key == "" {
		return ErrTypeRequired
	}
	if len(manifest.SupportedVariants) == 0 {
		return ErrManifestInvalid
	}
	if manifest.DefaultVariant == "" || !manifest.SupportsVariant(manifest.DefaultVariant) {
		return &VariantUnsupportedError{Type: key, Variant: manifest.DefaultVariant}
	}

	manifest.Type = key
	if manifest.ID == uuid.Nil {
		manifest.ID = identity.SectionManifestUUID(string(key))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.manifests == nil {
		r.manifests = make(map[Type]*Manifest)
	}
	if _, exists := r.manifests[key]; !exists {
		r.order = append(r.order, key)
	}
	r.manifests[key] = manifest
	return nil
}

// Get resolves the manifest for a type. An unregistered type is a
// programming error, reported via UnknownTypeError.
func (r *Registry) Get(sectionType Type) (*Manifest, error) {
	key := canonicalType(sectionType)
	if key == "" {
		return nil, ErrTypeRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	manifest, ok := r.manifests[key]
	if !ok {
		return nil, &UnknownTypeError{Type: key}
	}
	return manifest, nil
}

// Has reports whether a manifest is registered for the type.
func (r *Registry) Has(sectionType Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.manifests[canonicalType(sectionType)]
	return ok
}

// List returns every registered manifest in registration order.
func (r *Registry) List() []*Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Manifest, 0, len(r.order))
	for _, key := range r.order {
		if manifest, ok := r.manifests[key]; ok {
			out = append(out, manifest)
		}
	}
	return out
}

// SupportsVariant reports whether variant is legal for the section type.
// Unknown types support nothing.
func (r *Registry) SupportsVariant(sectionType Type, variant string) bool {
	manifest, err := r.Get(sectionType)
	if err != nil {
		return false
	}
	return manifest.SupportsVariant(variant)
}

func canonicalType(sectionType Type) Type {
	return Type(strings.ToLower(strings.TrimSpace(string(sectionType))))
}
