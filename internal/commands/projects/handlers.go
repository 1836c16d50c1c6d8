package projectscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-builder/internal/commands"
	"github.com/goliatone/go-builder/internal/projects"
	"github.com/goliatone/go-builder/pkg/interfaces"
	"github.com/goliatone/go-builder/project"
)

const (
	saveProjectMessageType    = "builder.project.save"
	publishProjectMessageType = "builder.project.publish"
	deleteProjectMessageType  = "builder.project.delete"
)

// SaveProjectCommand requests persistence of a project's draft document.
type SaveProjectCommand struct {
	Project *project.Project `json:"project"`
}

// Type implements command.Message.
func (SaveProjectCommand) Type() string { return saveProjectMessageType }

// Validate ensures the message carries the required fields before reaching
// handlers.
func (m SaveProjectCommand) Validate() error {
	errs := validation.Errors{}
	if m.Project == nil {
		errs["project"] = validation.NewError("builder.project.save.project_required", "project is required")
	} else if strings.TrimSpace(m.Project.ID) == "" {
		errs["project"] = validation.NewError("builder.project.save.project_id_required", "project id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveProjectHandler persists drafts via the project service using the
// shared command handler foundation.
type SaveProjectHandler struct {
	inner *commands.Handler[SaveProjectCommand]
}

// NewSaveProjectHandler constructs a handler wired to the provided project
// service.
func NewSaveProjectHandler(service *projects.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SaveProjectCommand]) *SaveProjectHandler {
	exec := func(ctx context.Context, msg SaveProjectCommand) error {
		return service.Save(ctx, msg.Project)
	}

	handlerOpts := []commands.HandlerOption[SaveProjectCommand]{
		commands.WithLogger[SaveProjectCommand](logger),
		commands.WithOperation[SaveProjectCommand]("project.save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SaveProjectHandler{
		inner: commands.NewHandler[SaveProjectCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SaveProjectCommand].Execute.
func (h *SaveProjectHandler) Execute(ctx context.Context, msg SaveProjectCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PublishProjectCommand requests promotion of a project's current draft.
type PublishProjectCommand struct {
	ProjectID string `json:"project_id"`
}

// Type implements command.Message.
func (PublishProjectCommand) Type() string { return publishProjectMessageType }

// Validate ensures the message carries the required fields.
func (m PublishProjectCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ProjectID) == "" {
		errs["project_id"] = validation.NewError("builder.project.publish.project_id_required", "project_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PublishProjectHandler promotes drafts via the project service.
type PublishProjectHandler struct {
	inner *commands.Handler[PublishProjectCommand]
}

// NewPublishProjectHandler constructs a handler wired to the provided
// project service.
func NewPublishProjectHandler(service *projects.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PublishProjectCommand]) *PublishProjectHandler {
	exec := func(ctx context.Context, msg PublishProjectCommand) error {
		_, err := service.Publish(ctx, msg.ProjectID)
		return err
	}

	handlerOpts := []commands.HandlerOption[PublishProjectCommand]{
		commands.WithLogger[PublishProjectCommand](logger),
		commands.WithOperation[PublishProjectCommand]("project.publish"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishProjectHandler{
		inner: commands.NewHandler[PublishProjectCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishProjectCommand].Execute.
func (h *PublishProjectHandler) Execute(ctx context.Context, msg PublishProjectCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteProjectCommand requests removal of a stored project.
type DeleteProjectCommand struct {
	ProjectID string `json:"project_id"`
}

// Type implements command.Message.
func (DeleteProjectCommand) Type() string { return deleteProjectMessageType }

// Validate ensures the message carries the required fields.
func (m DeleteProjectCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ProjectID) == "" {
		errs["project_id"] = validation.NewError("builder.project.delete.project_id_required", "project_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteProjectHandler removes stored projects via the project service.
type DeleteProjectHandler struct {
	inner *commands.Handler[DeleteProjectCommand]
}

// NewDeleteProjectHandler constructs a handler wired to the provided
// project service.
func NewDeleteProjectHandler(service *projects.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteProjectCommand]) *DeleteProjectHandler {
	exec := func(ctx context.Context, msg DeleteProjectCommand) error {
		return service.Delete(ctx, msg.ProjectID)
	}

	handlerOpts := []commands.HandlerOption[DeleteProjectCommand]{
		commands.WithLogger[DeleteProjectCommand](logger),
		commands.WithOperation[DeleteProjectCommand]("project.delete"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteProjectHandler{
		inner: commands.NewHandler[DeleteProjectCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[DeleteProjectCommand].Execute.
func (h *DeleteProjectHandler) Execute(ctx context.Context, msg DeleteProjectCommand) error {
	return h.inner.Execute(ctx, msg)
}
