package projects

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-builder/internal/schema"
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryProjectRepository())
}

func sampleProject(t *testing.T) *project.Project {
	t.Helper()

	doc := project.New("wed_1", "garden-romance")
	instance, err := sections.NewInstance(sections.DefaultRegistry(), sections.TypeHero, "default", 0)
	if err != nil {
		t.Fatalf("new instance: %v", err)
	}
	doc.Pages[0].Sections = append(doc.Pages[0].Sections, instance)
	return doc
}

func TestServiceSaveLoadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	doc := sampleProject(t)

	if err := svc.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := svc.Load(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(doc, loaded) {
		t.Fatal("loaded document must equal the saved document")
	}
}

func TestServiceSaveUpserts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	doc := sampleProject(t)

	if err := svc.Save(ctx, doc); err != nil {
		t.Fatalf("first save: %v", err)
	}
	doc.ThemeID = "classic"
	if err := svc.Save(ctx, doc); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := svc.Load(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ThemeID != "classic" {
		t.Fatalf("expected updated theme, got %q", loaded.ThemeID)
	}
}

func TestServiceSaveRejectsInvalidDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc := sampleProject(t)
	doc.WeddingID = ""

	err := svc.Save(ctx, doc)
	if err == nil {
		t.Fatal("expected schema validation to reject a document without a wedding id")
	}
	if !errors.Is(err, schema.ErrDocumentInvalid) {
		t.Fatalf("expected ErrDocumentInvalid, got %v", err)
	}

	if _, loadErr := svc.Load(ctx, doc.ID); loadErr == nil {
		t.Fatal("invalid documents must never reach storage")
	}
}

func TestServiceSaveNilProject(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Save(context.Background(), nil); !errors.Is(err, project.ErrProjectRequired) {
		t.Fatalf("expected ErrProjectRequired, got %v", err)
	}
}

func TestServicePublishPromotesDraft(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	doc := sampleProject(t)

	if err := svc.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	version, err := svc.Publish(ctx, doc.ID)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if version != 1 {
		t.Fatalf("first publish promotes draft 1, got %d", version)
	}

	loaded, err := svc.Load(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.PublishedVersion == nil || *loaded.PublishedVersion != 1 {
		t.Fatalf("expected published version 1, got %v", loaded.PublishedVersion)
	}
	if loaded.DraftVersion != 2 {
		t.Fatalf("publish opens the next draft, got %d", loaded.DraftVersion)
	}
	if loaded.PublishStatus != project.StatusPublished {
		t.Fatalf("expected published status, got %q", loaded.PublishStatus)
	}
	if loaded.LastPublishedAt == nil || *loaded.LastPublishedAt == "" {
		t.Fatal("expected a publish timestamp")
	}

	version, err = svc.Publish(ctx, doc.ID)
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if version != 2 {
		t.Fatalf("second publish promotes draft 2, got %d", version)
	}
}

func TestServicePublishUnknownProject(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Publish(context.Background(), "bld_missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestServiceListByWedding(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := sampleProject(t)
	second := sampleProject(t)
	other := project.New("wed_other", "")

	for _, doc := range []*project.Project{first, second, other} {
		if err := svc.Save(ctx, doc); err != nil {
			t.Fatalf("save %s: %v", doc.ID, err)
		}
	}

	listed, err := svc.ListByWedding(ctx, "wed_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 projects for wed_1, got %d", len(listed))
	}
	for _, doc := range listed {
		if doc.WeddingID != "wed_1" {
			t.Fatalf("listed a project for the wrong wedding: %q", doc.WeddingID)
		}
	}
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	doc := sampleProject(t)

	if err := svc.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := svc.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Load(ctx, doc.ID); err == nil {
		t.Fatal("deleted projects must not load")
	}

	var notFound *NotFoundError
	if err := svc.Delete(ctx, doc.ID); !errors.As(err, &notFound) {
		t.Fatalf("deleting twice reports not found, got %v", err)
	}
}
