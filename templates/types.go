package templates

import (
	"github.com/goliatone/go-builder/sections"
	"github.com/google/uuid"
)

// MoodTag classifies a template for gallery filtering.
type MoodTag string

const (
	MoodRomantic    MoodTag = "romantic"
	MoodModern      MoodTag = "modern"
	MoodMinimal     MoodTag = "minimal"
	MoodEditorial   MoodTag = "editorial"
	MoodClassic     MoodTag = "classic"
	MoodDestination MoodTag = "destination"
	MoodFloral      MoodTag = "floral"
	MoodLuxe        MoodTag = "luxe"
	MoodGarden      MoodTag = "garden"
	MoodBold        MoodTag = "bold"
	MoodPhoto       MoodTag = "photo"
)

// SpacingProfile hints how generous the vertical rhythm should be.
type SpacingProfile string

const (
	SpacingCompact  SpacingProfile = "compact"
	SpacingBalanced SpacingProfile = "balanced"
	SpacingSpacious SpacingProfile = "spacious"
)

// SectionSlot is one entry in a template's section composition: which type
// goes where, with which variant, plus settings to seed on top of the
// factory defaults.
type SectionSlot struct {
	Type     sections.Type  `json:"type" yaml:"type"`
	Variant  string         `json:"variant" yaml:"variant"`
	Enabled  bool           `json:"enabled" yaml:"enabled"`
	Locked   bool           `json:"locked" yaml:"locked"`
	Settings map[string]any `json:"settings,omitempty" yaml:"settings"`
}

// SuggestedFonts pairs a heading and body font for the template.
type SuggestedFonts struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

// Definition describes one template pack: identity, gallery metadata, and
// the section composition applied to the home page.
type Definition struct {
	ID              uuid.UUID      `json:"uuid"`
	Key             string         `json:"id" yaml:"id"`
	DisplayName     string         `json:"displayName" yaml:"display_name"`
	Description     string         `json:"description" yaml:"description"`
	DescriptionHTML string         `json:"descriptionHtml,omitempty" yaml:"-"`
	MoodTags        []MoodTag      `json:"moodTags" yaml:"mood_tags"`
	StyleTags       []string       `json:"styleTags,omitempty" yaml:"style_tags"`
	SeasonTags      []string       `json:"seasonTags,omitempty" yaml:"season_tags"`
	ColorwayID      string         `json:"colorwayId,omitempty" yaml:"colorway_id"`
	PreviewImage    string         `json:"previewImage" yaml:"preview_image"`
	DefaultThemeID  string         `json:"defaultThemeId" yaml:"default_theme_id"`
	Composition     []SectionSlot  `json:"sectionComposition" yaml:"composition"`
	SuggestedFonts  SuggestedFonts `json:"suggestedFonts" yaml:"suggested_fonts"`
	SpacingProfile  SpacingProfile `json:"spacingProfile" yaml:"spacing_profile"`
	IsNew           bool           `json:"isNew,omitempty" yaml:"is_new"`
	IsPremium       bool           `json:"isPremium,omitempty" yaml:"is_premium"`
}

// HasMood reports whether the template carries the given mood tag.
func (d *Definition) HasMood(tag MoodTag) bool {
	for _, candidate := range d.MoodTags {
		if candidate == tag {
			return true
		}
	}
	return false
}
