package templates

import (
	"errors"
	"testing"

	"github.com/goliatone/go-builder/sections"
	"github.com/google/uuid"
)

func sampleDefinition(key string, moods ...MoodTag) *Definition {
	return &Definition{
		Key:         key,
		DisplayName: key,
		MoodTags:    moods,
		Composition: []SectionSlot{
			{Type: sections.TypeHero, Variant: "default", Enabled: true},
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(sampleDefinition("Modern-Luxe ")); err != nil {
		t.Fatalf("register: %v", err)
	}

	def, err := registry.Get("modern-luxe")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if def.Key != "modern-luxe" {
		t.Fatalf("expected canonical key, got %q", def.Key)
	}
	if def.ID == uuid.Nil {
		t.Fatal("registration must assign a stable id")
	}

	// Keys resolve case-insensitively.
	if _, err := registry.Get("  MODERN-LUXE  "); err != nil {
		t.Fatalf("canonical lookup: %v", err)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("missing")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatal("expected error to unwrap to ErrTemplateNotFound")
	}
}

func TestRegistryRejectsInvalidDefinitions(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); !errors.Is(err, ErrDefinitionInvalid) {
		t.Fatalf("nil definition: expected ErrDefinitionInvalid, got %v", err)
	}
	if err := registry.Register(&Definition{Composition: []SectionSlot{{Type: sections.TypeHero}}}); !errors.Is(err, ErrKeyRequired) {
		t.Fatalf("missing key: expected ErrKeyRequired, got %v", err)
	}
	if err := registry.Register(&Definition{Key: "empty"}); !errors.Is(err, ErrDefinitionInvalid) {
		t.Fatalf("empty composition: expected ErrDefinitionInvalid, got %v", err)
	}
}

func TestRegistryListOrderAndFilter(t *testing.T) {
	registry := NewRegistry()
	for _, def := range []*Definition{
		sampleDefinition("one", MoodRomantic, MoodFloral),
		sampleDefinition("two", MoodModern),
		sampleDefinition("three", MoodRomantic),
	} {
		if err := registry.Register(def); err != nil {
			t.Fatalf("register %s: %v", def.Key, err)
		}
	}

	all := registry.List()
	if len(all) != 3 || all[0].Key != "one" || all[2].Key != "three" {
		t.Fatalf("expected registration order, got %v", keysOf(all))
	}

	romantic := registry.FilterByMood(MoodRomantic)
	if len(romantic) != 2 || romantic[0].Key != "one" || romantic[1].Key != "three" {
		t.Fatalf("expected romantic templates one,three, got %v", keysOf(romantic))
	}

	if got := registry.FilterByMood(""); len(got) != 3 {
		t.Fatalf("empty mood filter returns everything, got %d", len(got))
	}
	if got := registry.FilterByMood(MoodDestination); len(got) != 0 {
		t.Fatalf("expected no destination templates, got %v", keysOf(got))
	}
}

func keysOf(defs []*Definition) []string {
	out := make([]string, len(defs))
	for i, def := range defs {
		out[i] = def.Key
	}
	return out
}
