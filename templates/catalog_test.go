package templates

import (
	"testing"

	"github.com/goliatone/go-builder/sections"
)

func TestBuiltinDefinitionsComposeAgainstBuiltinSections(t *testing.T) {
	sectionRegistry := sections.DefaultRegistry()

	for _, def := range BuiltinDefinitions() {
		t.Run(def.Key, func(t *testing.T) {
			if def.DisplayName == "" || def.PreviewImage == "" || def.DefaultThemeID == "" {
				t.Fatal("builtin packs carry full gallery metadata")
			}
			if len(def.MoodTags) == 0 {
				t.Fatal("builtin packs carry at least one mood tag")
			}

			built, err := BuildSections(sectionRegistry, def)
			if err != nil {
				t.Fatalf("compose: %v", err)
			}
			if len(built) != len(def.Composition) {
				t.Fatalf("expected %d sections, got %d", len(def.Composition), len(built))
			}
			if built[0].Type != sections.TypeHero {
				t.Fatalf("packs open with a hero, got %q", built[0].Type)
			}
			for i, instance := range built {
				if instance.OrderIndex != i {
					t.Fatalf("section %d has order index %d", i, instance.OrderIndex)
				}
				if !instance.Enabled {
					t.Fatalf("builtin slot %d must be enabled", i)
				}
			}
		})
	}
}

func TestDefaultRegistryContainsBuiltins(t *testing.T) {
	registry := DefaultRegistry()

	if got, want := len(registry.List()), len(BuiltinDefinitions()); got != want {
		t.Fatalf("expected %d builtin templates, got %d", want, got)
	}
	if _, err := registry.Get("garden-romance"); err != nil {
		t.Fatalf("garden-romance missing: %v", err)
	}
}

func TestBuildSectionsSeedsSlotSettings(t *testing.T) {
	def := sampleDefinition("with-settings")
	def.Composition[0].Settings = map[string]any{"showTitle": false, "align": "left"}
	def.Composition[0].Locked = true

	built, err := BuildSections(sections.DefaultRegistry(), def)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if got := built[0].Settings["showTitle"]; got != false {
		t.Fatalf("slot settings must override factory defaults, got %v", got)
	}
	if got := built[0].Settings["align"]; got != "left" {
		t.Fatalf("expected slot-only setting to survive, got %v", got)
	}
	if !built[0].Locked {
		t.Fatal("locked slots produce locked sections")
	}
}

func TestBuildSectionsRejectsBadSlots(t *testing.T) {
	registry := sections.DefaultRegistry()

	if _, err := BuildSections(registry, nil); err == nil {
		t.Fatal("nil definition must fail")
	}

	def := sampleDefinition("bad-variant")
	def.Composition[0].Variant = "holographic"
	if _, err := BuildSections(registry, def); err == nil {
		t.Fatal("unsupported variant must fail")
	}
}
