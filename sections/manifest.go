package sections

import "github.com/google/uuid"

// FieldType enumerates the editable field kinds a settings schema can declare.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldToggle   FieldType = "toggle"
	FieldSelect   FieldType = "select"
	FieldColor    FieldType = "color"
	FieldImage    FieldType = "image"
	FieldNumber   FieldType = "number"
)

// DataSource names an external wedding-data collection a binding slot reads from.
type DataSource string

const (
	SourceVenues   DataSource = "venues"
	SourceSchedule DataSource = "schedule"
	SourceRegistry DataSource = "registry"
	SourceFAQ      DataSource = "faq"
	SourceMedia    DataSource = "media"
	SourceNone     DataSource = "none"
)

// Manifest is the immutable static catalog entry for a section type. It is
// the single source of truth for variant membership, legal settings keys,
// binding slots, and capability gating.
type Manifest struct {
	ID                uuid.UUID      `json:"id"`
	Type              Type           `json:"type"`
	Label             string         `json:"label"`
	Icon              string         `json:"icon"`
	DefaultVariant    string         `json:"defaultVariant"`
	SupportedVariants []string       `json:"supportedVariants"`
	VariantMeta       []VariantMeta  `json:"variantMeta,omitempty"`
	SettingsSchema    SettingsSchema `json:"settingsSchema"`
	BindingsSchema    BindingsSchema `json:"bindingsSchema"`
	Capabilities      Capabilities   `json:"capabilities"`
	PreviewImagePath  string         `json:"previewImagePath,omitempty"`
}

// VariantMeta describes one named visual alternative within a section type.
type VariantMeta struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// SettingsSchema declares the typed editable fields for a section type.
type SettingsSchema struct {
	Fields []SettingsField `json:"fields"`
}

// SettingsField declares one editable field. Default must be a JSON scalar
// (string, bool, float64) so seeded settings survive a document round-trip.
type SettingsField struct {
	Key         string        `json:"key"`
	Label       string        `json:"label"`
	Type        FieldType     `json:"type"`
	Default     any           `json:"defaultValue,omitempty"`
	Placeholder string        `json:"placeholder,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
}

// FieldOption is one choice for a select field.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BindingsSchema declares the named binding slots a section type exposes.
type BindingsSchema struct {
	Slots []BindingSlot `json:"slots"`
}

// BindingSlot names one external data source and whether it accepts
// multiple ids.
type BindingSlot struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	DataSource DataSource `json:"dataSource"`
	Multiple   bool       `json:"multiple"`
}

// Capabilities gates what the command layer allows for instances of a type.
type Capabilities struct {
	Draggable  bool `json:"draggable"`
	Duplicable bool `json:"duplicable"`
	Deletable  bool `json:"deletable"`
	Lockable   bool `json:"lockable"`
	MediaAware bool `json:"mediaAware"`
}

// SupportsVariant reports whether variant belongs to the manifest's
// supported set.
func (m *Manifest) SupportsVariant(variant string) bool {
	if m == nil {
		return false
	}
	for _, candidate := range m.SupportedVariants {
		if candidate == variant {
			return true
		}
	}
	return false
}

// FieldDefaults returns the declared defaults keyed by field key. Fields
// without a declared default are omitted so inspectors can distinguish
// "unset" from "defaulted".
func (m *Manifest) FieldDefaults() map[string]any {
	if m == nil || len(m.SettingsSchema.Fields) == 0 {
		return nil
	}
	defaults := make(map[string]any)
	for _, field := range m.SettingsSchema.Fields {
		if field.Default != nil {
			defaults[field.Key] = field.Default
		}
	}
	if len(defaults) == 0 {
		return nil
	}
	return defaults
}
