package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/goliatone/go-builder/sections"
)

// definitionEnvelope is the YAML frontmatter shape of a template file. The
// Markdown body below the frontmatter is the long-form description shown in
// the gallery detail view.
type definitionEnvelope struct {
	ID             string              `yaml:"id"`
	DisplayName    string              `yaml:"display_name"`
	Description    string              `yaml:"description"`
	MoodTags       []string            `yaml:"mood_tags"`
	StyleTags      []string            `yaml:"style_tags"`
	SeasonTags     []string            `yaml:"season_tags"`
	ColorwayID     string              `yaml:"colorway_id"`
	PreviewImage   string              `yaml:"preview_image"`
	DefaultThemeID string              `yaml:"default_theme_id"`
	Composition    []sectionSlotYAML   `yaml:"composition"`
	SuggestedFonts SuggestedFonts      `yaml:"suggested_fonts"`
	SpacingProfile string              `yaml:"spacing_profile"`
	IsNew          bool                `yaml:"is_new"`
	IsPremium      bool                `yaml:"is_premium"`
}

// sectionSlotYAML mirrors SectionSlot with an optional enabled flag: pack
// authors rarely write `enabled: true`, so an omitted flag means enabled.
type sectionSlotYAML struct {
	Type     sections.Type  `yaml:"type"`
	Variant  string         `yaml:"variant"`
	Enabled  *bool          `yaml:"enabled"`
	Locked   bool           `yaml:"locked"`
	Settings map[string]any `yaml:"settings"`
}

func (s sectionSlotYAML) slot() SectionSlot {
	enabled := true
	if s.Enabled != nil {
		enabled = *s.Enabled
	}
	return SectionSlot{
		Type:     s.Type,
		Variant:  s.Variant,
		Enabled:  enabled,
		Locked:   s.Locked,
		Settings: s.Settings,
	}
}

// ParseDefinition parses one template file: YAML frontmatter for the
// structured definition, Markdown body for the long description.
func ParseDefinition(source []byte) (*Definition, error) {
	var env definitionEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return nil, fmt.Errorf("templates: parse frontmatter: %w", err)
	}

	def := &Definition{
		Key:            env.ID,
		DisplayName:    env.DisplayName,
		Description:    env.Description,
		StyleTags:      env.StyleTags,
		SeasonTags:     env.SeasonTags,
		ColorwayID:     env.ColorwayID,
		PreviewImage:   env.PreviewImage,
		DefaultThemeID: env.DefaultThemeID,
		SuggestedFonts: env.SuggestedFonts,
		SpacingProfile: SpacingProfile(env.SpacingProfile),
		IsNew:          env.IsNew,
		IsPremium:      env.IsPremium,
	}
	for _, slot := range env.Composition {
		def.Composition = append(def.Composition, slot.slot())
	}
	for _, tag := range env.MoodTags {
		def.MoodTags = append(def.MoodTags, MoodTag(strings.ToLower(strings.TrimSpace(tag))))
	}
	if def.SpacingProfile == "" {
		def.SpacingProfile = SpacingBalanced
	}

	if body = bytes.TrimSpace(body); len(body) > 0 {
		html, err := renderDescription(body)
		if err != nil {
			return nil, err
		}
		def.DescriptionHTML = html
	}
	return def, nil
}

// LoadDir parses every .md file under dir in fsys and registers the
// definitions, in file-name order so loads are deterministic.
func LoadDir(registry *Registry, fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("templates: read dir %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		source, err := fs.ReadFile(fsys, filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("templates: read %q: %w", name, err)
		}
		def, err := ParseDefinition(source)
		if err != nil {
			return fmt.Errorf("templates: parse %q: %w", name, err)
		}
		if err := registry.Register(def); err != nil {
			return fmt.Errorf("templates: register %q: %w", name, err)
		}
	}
	return nil
}

func renderDescription(body []byte) (string, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
	)
	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("templates: render description: %w", err)
	}
	return buf.String(), nil
}
