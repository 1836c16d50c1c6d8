package sections

import (
	"strings"

	"github.com/google/uuid"
)

// NewInstance factory-creates a section instance for the given type.
//
// Variant defaults to the manifest's default variant when empty; a variant
// outside the manifest's supported set is rejected at this point and never
// re-validated globally. Settings are seeded with every schema field that
// declares a default (plus the showTitle convention) so inspectors never
// observe an unset value for a field with a stated default.
func NewInstance(registry *Registry, sectionType Type, variant string, orderIndex int) (*Instance, error) {
	manifest, err := registry.Get(sectionType)
	if err != nil {
		return nil, err
	}

	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = manifest.DefaultVariant
	}
	if !manifest.SupportsVariant(variant) {
		return nil, &VariantUnsupportedError{Type: manifest.Type, Variant: variant}
	}

	settings := map[string]any{"showTitle": true}
	for key, value := range manifest.FieldDefaults() {
		settings[key] = value
	}

	now := NowISO()
	return &Instance{
		ID:         NewInstanceID(),
		Type:       manifest.Type,
		Variant:    variant,
		Enabled:    true,
		Locked:     false,
		OrderIndex: orderIndex,
		Settings:   settings,
		Meta: Meta{
			CreatedAtISO: now,
			UpdatedAtISO: now,
		},
	}, nil
}

// NewInstanceID generates a fresh section instance identifier. Ids are never
// recycled within a page's lifetime, so stale external references (pending
// picker callbacks) fail safely instead of addressing a different section.
func NewInstanceID() string {
	return "sec_" + uuid.NewString()
}
