package templates

import "github.com/goliatone/go-builder/sections"

// BuiltinDefinitions returns the built-in template packs shown in the
// gallery. Compositions reference built-in section types and variants only;
// host-defined templates can go beyond that through Registry.Register.
func BuiltinDefinitions() []*Definition {
	return []*Definition{
		{
			Key:            "modern-luxe",
			DisplayName:    "Modern Luxe",
			Description:    "Editorial modern layout with clean spacing and soft serif accents.",
			MoodTags:       []MoodTag{MoodModern, MoodMinimal, MoodEditorial, MoodLuxe},
			StyleTags:      []string{"Modern", "Minimal"},
			SeasonTags:     []string{"Summer", "Fall"},
			ColorwayID:     "ivory-ink",
			PreviewImage:   "https://images.pexels.com/photos/1024993/pexels-photo-1024993.jpeg",
			DefaultThemeID: "modern",
			SuggestedFonts: SuggestedFonts{Heading: "Cormorant Garamond", Body: "Inter"},
			SpacingProfile: SpacingSpacious,
			Composition: []SectionSlot{
				{Type: sections.TypeHero, Variant: "fullbleed", Enabled: true},
				{Type: sections.TypeStory, Variant: "split", Enabled: true},
				{Type: sections.TypeVenue, Variant: "card", Enabled: true},
				{Type: sections.TypeSchedule, Variant: "timeline", Enabled: true},
				{Type: sections.TypeRSVP, Variant: "inline", Enabled: true},
				{Type: sections.TypeRegistry, Variant: "grid", Enabled: true},
			},
		},
		{
			Key:            "garden-romance",
			DisplayName:    "Garden Romance",
			Description:    "Soft floral-forward design with warm romantic typography.",
			MoodTags:       []MoodTag{MoodRomantic, MoodFloral, MoodGarden},
			StyleTags:      []string{"Floral", "Romantic"},
			SeasonTags:     []string{"Spring", "Summer"},
			ColorwayID:     "blush-sage",
			PreviewImage:   "https://images.pexels.com/photos/169193/pexels-photo-169193.jpeg",
			DefaultThemeID: "romantic",
			SuggestedFonts: SuggestedFonts{Heading: "Playfair Display", Body: "Lora"},
			SpacingProfile: SpacingBalanced,
			Composition: []SectionSlot{
				{Type: sections.TypeHero, Variant: "default", Enabled: true},
				{Type: sections.TypeStory, Variant: "centered", Enabled: true},
				{Type: sections.TypeVenue, Variant: "default", Enabled: true},
				{Type: sections.TypeSchedule, Variant: "default", Enabled: true},
				{Type: sections.TypeTravel, Variant: "default", Enabled: true},
				{Type: sections.TypeRSVP, Variant: "default", Enabled: true},
				{Type: sections.TypeFAQ, Variant: "accordion", Enabled: true},
			},
		},
		{
			Key:            "coastal-breeze",
			DisplayName:    "Coastal Breeze",
			Description:    "Airy destination aesthetic with clean sections and map-friendly blocks.",
			MoodTags:       []MoodTag{MoodDestination, MoodMinimal},
			StyleTags:      []string{"Destination", "Minimal"},
			SeasonTags:     []string{"Summer"},
			ColorwayID:     "seafoam-sand",
			PreviewImage:   "https://images.pexels.com/photos/1468379/pexels-photo-1468379.jpeg",
			DefaultThemeID: "coastal",
			SuggestedFonts: SuggestedFonts{Heading: "Libre Baskerville", Body: "Source Sans Pro"},
			SpacingProfile: SpacingSpacious,
			Composition: []SectionSlot{
				{Type: sections.TypeHero, Variant: "fullbleed", Enabled: true},
				{Type: sections.TypeTravel, Variant: "cards", Enabled: true},
				{Type: sections.TypeVenue, Variant: "card", Enabled: true},
				{Type: sections.TypeSchedule, Variant: "default", Enabled: true},
				{Type: sections.TypeRSVP, Variant: "default", Enabled: true},
				{Type: sections.TypeFAQ, Variant: "default", Enabled: true},
			},
		},
		{
			Key:            "classic-elegance",
			DisplayName:    "Classic Elegance",
			Description:    "Timeless wedding style with formal typography and structured flow.",
			MoodTags:       []MoodTag{MoodClassic, MoodRomantic},
			StyleTags:      []string{"Classic", "Formal"},
			SeasonTags:     []string{"Fall", "Winter"},
			ColorwayID:     "ivory-black-gold",
			PreviewImage:   "https://images.pexels.com/photos/3171837/pexels-photo-3171837.jpeg",
			DefaultThemeID: "classic",
			SuggestedFonts: SuggestedFonts{Heading: "Cormorant", Body: "EB Garamond"},
			SpacingProfile: SpacingBalanced,
			Composition: []SectionSlot{
				{Type: sections.TypeHero, Variant: "minimal", Enabled: true},
				{Type: sections.TypeStory, Variant: "default", Enabled: true},
				{Type: sections.TypeVenue, Variant: "default", Enabled: true},
				{Type: sections.TypeSchedule, Variant: "timeline", Enabled: true},
				{Type: sections.TypeTravel, Variant: "default", Enabled: true},
				{Type: sections.TypeRegistry, Variant: "default", Enabled: true},
				{Type: sections.TypeRSVP, Variant: "default", Enabled: true},
			},
		},
		{
			Key:            "rustic-warmth",
			DisplayName:    "Rustic Warmth",
			Description:    "Organic textures and warm tones for barn, vineyard, and outdoors weddings.",
			MoodTags:       []MoodTag{MoodRomantic, MoodGarden},
			StyleTags:      []string{"Rustic", "Boho"},
			SeasonTags:     []string{"Fall"},
			ColorwayID:     "terracotta-cream",
			PreviewImage:   "https://images.pexels.com/photos/265947/pexels-photo-265947.jpeg",
			DefaultThemeID: "rustic",
			SuggestedFonts: SuggestedFonts{Heading: "Amatic SC", Body: "Karla"},
			SpacingProfile: SpacingCompact,
			Composition: []SectionSlot{
				{Type: sections.TypeHero, Variant: "default", Enabled: true},
				{Type: sections.TypeStory, Variant: "split", Enabled: true},
				{Type: sections.TypeSchedule, Variant: "default", Enabled: true},
				{Type: sections.TypeVenue, Variant: "default", Enabled: true},
				{Type: sections.TypeGallery, Variant: "masonry", Enabled: true},
				{Type: sections.TypeRSVP, Variant: "default", Enabled: true},
			},
		},
		{
			Key:            "bold-minimal",
			DisplayName:    "Bold Minimal",
			Description:    "High-contrast layout with statement headlines and sharp section breaks.",
			MoodTags:       []MoodTag{MoodBold, MoodModern, MoodMinimal},
			StyleTags:      []string{"Bold", "Modern"},
			SeasonTags:     []string{"Spring", "Winter"},
			ColorwayID:     "mono-contrast",
			PreviewImage:   "https://images.pexels.com/photos/2253842/pexels-photo-2253842.jpeg",
			DefaultThemeID: "mono",
			SuggestedFonts: SuggestedFonts{Heading: "Archivo Black", Body: "Inter"},
			SpacingProfile: SpacingCompact,
			Composition: []SectionSlot{
				{Type: sections.TypeHero, Variant: "minimal", Enabled: true},
				{Type: sections.TypeSchedule, Variant: "default", Enabled: true},
				{Type: sections.TypeVenue, Variant: "card", Enabled: true},
				{Type: sections.TypeRSVP, Variant: "inline", Enabled: true},
				{Type: sections.TypeRegistry, Variant: "grid", Enabled: true},
			},
		},
	}
}

// DefaultRegistry returns a registry preloaded with the built-in packs.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, def := range BuiltinDefinitions() {
		if err := registry.Register(def); err != nil {
			panic(err)
		}
	}
	return registry
}
