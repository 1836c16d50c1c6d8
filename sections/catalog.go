package sections

// defaultCapabilities is the baseline capability set most section types share.
var defaultCapabilities = Capabilities{
	Draggable:  true,
	Duplicable: true,
	Deletable:  true,
	Lockable:   true,
	MediaAware: false,
}

func withCapabilities(mutate func(*Capabilities)) Capabilities {
	caps := defaultCapabilities
	if mutate != nil {
		mutate(&caps)
	}
	return caps
}

// BuiltinManifests returns the built-in wedding-site section catalog. Hosts
// can register additional types (countdown, wedding-party, dress-code, ...)
// on top of these.
func BuiltinManifests() []*Manifest {
	return []*Manifest{
		{
			Type:              TypeHero,
			Label:             "Hero",
			Icon:              "Image",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "minimal", "fullbleed"},
			VariantMeta: []VariantMeta{
				{ID: "default", Label: "Default", Description: "Full-width hero with overlay text"},
				{ID: "minimal", Label: "Minimal", Description: "Names and date only, no imagery"},
				{ID: "fullbleed", Label: "Full Bleed", Description: "Edge-to-edge background photo"},
			},
			Capabilities: withCapabilities(func(c *Capabilities) {
				c.MediaAware = true
				c.Deletable = false
			}),
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "title", Label: "Headline", Type: FieldText, Placeholder: "Your names"},
				{Key: "subtitle", Label: "Subheadline", Type: FieldText, Placeholder: "Wedding date & location"},
				{Key: "backgroundImage", Label: "Background Image", Type: FieldImage},
				{Key: "overlayOpacity", Label: "Overlay Opacity", Type: FieldNumber, Default: float64(40)},
				{Key: "showCountdown", Label: "Show Countdown", Type: FieldToggle, Default: true},
			}},
			PreviewImagePath: "/previews/hero.jpg",
		},
		{
			Type:              TypeStory,
			Label:             "Our Story",
			Icon:              "Heart",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "centered", "split"},
			Capabilities: withCapabilities(func(c *Capabilities) {
				c.MediaAware = true
			}),
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "Our Story"},
				{Key: "storyText", Label: "Story Text", Type: FieldTextarea},
				{Key: "photo", Label: "Couple Photo", Type: FieldImage},
			}},
			PreviewImagePath: "/previews/story.jpg",
		},
		{
			Type:              TypeVenue,
			Label:             "Venue",
			Icon:              "MapPin",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "card"},
			Capabilities: withCapabilities(func(c *Capabilities) {
				c.MediaAware = true
			}),
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "Venue"},
				{Key: "showMap", Label: "Show Map", Type: FieldToggle, Default: true},
			}},
			BindingsSchema: BindingsSchema{Slots: []BindingSlot{
				{Key: "venueIds", Label: "Venues", DataSource: SourceVenues, Multiple: true},
			}},
			PreviewImagePath: "/previews/venue.jpg",
		},
		{
			Type:              TypeSchedule,
			Label:             "Schedule",
			Icon:              "Clock",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "timeline"},
			Capabilities:      defaultCapabilities,
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "Schedule"},
				{Key: "showIcons", Label: "Show Icons", Type: FieldToggle, Default: true},
			}},
			BindingsSchema: BindingsSchema{Slots: []BindingSlot{
				{Key: "scheduleItemIds", Label: "Schedule Items", DataSource: SourceSchedule, Multiple: true},
			}},
			PreviewImagePath: "/previews/schedule.jpg",
		},
		{
			Type:              TypeTravel,
			Label:             "Travel & Hotels",
			Icon:              "Plane",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "cards"},
			Capabilities:      defaultCapabilities,
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "Travel"},
				{Key: "showParking", Label: "Show Parking Info", Type: FieldToggle, Default: true},
			}},
			PreviewImagePath: "/previews/travel.jpg",
		},
		{
			Type:              TypeRegistry,
			Label:             "Registry",
			Icon:              "Gift",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "grid"},
			Capabilities:      defaultCapabilities,
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "Registry"},
				{Key: "message", Label: "Custom Message", Type: FieldTextarea},
			}},
			BindingsSchema: BindingsSchema{Slots: []BindingSlot{
				{Key: "linkIds", Label: "Registry Links", DataSource: SourceRegistry, Multiple: true},
			}},
			PreviewImagePath: "/previews/registry.jpg",
		},
		{
			Type:              TypeFAQ,
			Label:             "FAQ",
			Icon:              "HelpCircle",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "accordion"},
			Capabilities:      defaultCapabilities,
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "FAQ"},
				{Key: "expandAll", Label: "Expand All by Default", Type: FieldToggle, Default: false},
			}},
			BindingsSchema: BindingsSchema{Slots: []BindingSlot{
				{Key: "faqIds", Label: "FAQ Items", DataSource: SourceFAQ, Multiple: true},
			}},
			PreviewImagePath: "/previews/faq.jpg",
		},
		{
			Type:              TypeRSVP,
			Label:             "RSVP",
			Icon:              "Mail",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "inline"},
			Capabilities: withCapabilities(func(c *Capabilities) {
				c.Deletable = false
			}),
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "RSVP"},
				{Key: "deadlineText", Label: "Deadline Text", Type: FieldText},
				{Key: "confirmationMessage", Label: "Confirmation Message", Type: FieldTextarea},
			}},
			PreviewImagePath: "/previews/rsvp.jpg",
		},
		{
			Type:              TypeGallery,
			Label:             "Photo Gallery",
			Icon:              "Images",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default", "masonry"},
			Capabilities: withCapabilities(func(c *Capabilities) {
				c.MediaAware = true
			}),
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "Gallery"},
				{Key: "columns", Label: "Columns", Type: FieldSelect, Default: "3", Options: []FieldOption{
					{Label: "2 Columns", Value: "2"},
					{Label: "3 Columns", Value: "3"},
					{Label: "4 Columns", Value: "4"},
				}},
			}},
			BindingsSchema: BindingsSchema{Slots: []BindingSlot{
				{Key: "mediaAssetIds", Label: "Gallery Photos", DataSource: SourceMedia, Multiple: true},
			}},
			PreviewImagePath: "/previews/gallery.jpg",
		},
		{
			Type:              TypeCustom,
			Label:             "Custom Section",
			Icon:              "Layout",
			DefaultVariant:    "default",
			SupportedVariants: []string{"default"},
			Capabilities:      defaultCapabilities,
			SettingsSchema: SettingsSchema{Fields: []SettingsField{
				{Key: "showTitle", Label: "Show Title", Type: FieldToggle, Default: true},
				{Key: "title", Label: "Section Title", Type: FieldText, Default: "Custom"},
				{Key: "body", Label: "Body", Type: FieldTextarea},
			}},
			PreviewImagePath: "/previews/custom.jpg",
		},
	}
}

// DefaultRegistry returns a registry preloaded with the built-in catalog.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, manifest := range BuiltinManifests() {
		if err := registry.Register(manifest); err != nil {
			// Built-in manifests are static data validated by tests; a
			// registration failure here is a catalog bug.
			panic(err)
		}
	}
	return registry
}
