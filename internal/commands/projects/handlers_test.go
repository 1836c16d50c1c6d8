package projectscmd

import (
	"context"
	"testing"

	"github.com/goliatone/go-builder/internal/projects"
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
	goerrors "github.com/goliatone/go-errors"
)

func newTestService() *projects.Service {
	return projects.NewService(projects.NewMemoryProjectRepository())
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

func TestSaveProjectHandler(t *testing.T) {
	service := newTestService()
	handler := NewSaveProjectHandler(service, nil)
	ctx := context.Background()
	doc := sampleProject(t)

	if err := handler.Execute(ctx, SaveProjectCommand{Project: doc}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	loaded, err := service.Load(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if loaded.WeddingID != "wed_1" {
		t.Fatalf("unexpected document: %+v", loaded)
	}
}

func TestSaveProjectHandlerValidation(t *testing.T) {
	handler := NewSaveProjectHandler(newTestService(), nil)

	err := handler.Execute(context.Background(), SaveProjectCommand{})
	if err == nil {
		t.Fatal("expected validation error for missing project")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	err = handler.Execute(context.Background(), SaveProjectCommand{Project: &project.Project{}})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category for blank id, got %v", err)
	}
}

func TestPublishProjectHandler(t *testing.T) {
	service := newTestService()
	ctx := context.Background()
	doc := sampleProject(t)
	if err := service.Save(ctx, doc); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	handler := NewPublishProjectHandler(service, nil)
	if err := handler.Execute(ctx, PublishProjectCommand{ProjectID: doc.ID}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	loaded, err := service.Load(ctx, doc.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.PublishStatus != project.StatusPublished {
		t.Fatalf("expected published status, got %q", loaded.PublishStatus)
	}

	if err := handler.Execute(ctx, PublishProjectCommand{}); !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestDeleteProjectHandler(t *testing.T) {
	service := newTestService()
	ctx := context.Background()
	doc := sampleProject(t)
	if err := service.Save(ctx, doc); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	handler := NewDeleteProjectHandler(service, nil)
	if err := handler.Execute(ctx, DeleteProjectCommand{ProjectID: doc.ID}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := service.Load(ctx, doc.ID); err == nil {
		t.Fatal("deleted project must not load")
	}

	// Unknown ids surface as command failures, not validation ones.
	err := handler.Execute(ctx, DeleteProjectCommand{ProjectID: doc.ID})
	if err == nil {
		t.Fatal("expected error for missing project")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
