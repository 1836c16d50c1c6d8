package templates

import (
	"github.com/goliatone/go-builder/sections"
)

// BuildSections materializes a template's composition into fresh section
// instances, in composition order. Every instance goes through the section
// factory so variant validation and settings defaults apply; slot settings
// then layer on top of the factory defaults.
func BuildSections(registry *sections.Registry, def *Definition) ([]*sections.Instance, error) {
	if def == nil {
		return nil, ErrDefinitionInvalid
	}

	out := make([]*sections.Instance, 0, len(def.Composition))
	for i, slot := range def.Composition {
		instance, err := sections.NewInstance(registry, slot.Type, slot.Variant, i)
		if err != nil {
			return nil, err
		}
		instance.Enabled = slot.Enabled
		instance.Locked = slot.Locked
		for key, value := range slot.Settings {
			instance.Settings[key] = value
		}
		out = append(out, instance)
	}
	return out, nil
}
