package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-builder/internal/identity"
	"github.com/goliatone/go-builder/internal/logging"
	"github.com/goliatone/go-builder/internal/schema"
	"github.com/goliatone/go-builder/pkg/interfaces"
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
)

// Service persists builder project documents. Every save validates the
// serialized document against the persisted document schema first, so
// storage never holds a document the loader cannot read back.
type Service struct {
	repo   ProjectRepository
	logger interfaces.Logger
}

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// WithLogger injects the service logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a project persistence service.
func NewService(repo ProjectRepository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save upserts the project's draft document.
func (s *Service) Save(ctx context.Context, p *project.Project) error {
	if p == nil {
		return project.ErrProjectRequired
	}

	document, err := project.Marshal(p)
	if err != nil {
		return fmt.Errorf("projects: marshal document: %w", err)
	}
	if err := schema.ValidateDocument(document); err != nil {
		s.logger.Error("projects.save.invalid_document", "project_id", p.ID, "error", err)
		return err
	}

	now := time.Now().UTC()
	record := &Record{
		ID:               identity.ProjectRecordUUID(p.ID),
		ProjectID:        p.ID,
		WeddingID:        p.WeddingID,
		TemplateID:       p.TemplateID,
		ThemeID:          p.ThemeID,
		DraftVersion:     p.DraftVersion,
		PublishedVersion: p.PublishedVersion,
		PublishStatus:    string(p.PublishStatus),
		Document:         document,
		UpdatedAt:        &now,
	}
	if p.LastPublishedAt != nil {
		if at, parseErr := time.Parse(time.RFC3339Nano, *p.LastPublishedAt); parseErr == nil {
			record.LastPublishedAt = &at
		}
	}

	existing, err := s.repo.GetByProjectID(ctx, p.ID)
	var notFound *NotFoundError
	switch {
	case err == nil:
		record.CreatedAt = existing.CreatedAt
		_, err = s.repo.Update(ctx, record)
	case errors.As(err, &notFound):
		record.CreatedAt = &now
		_, err = s.repo.Create(ctx, record)
	}
	if err != nil {
		s.logger.Error("projects.save.failed", "project_id", p.ID, "error", err)
		return fmt.Errorf("projects: save %q: %w", p.ID, err)
	}

	s.logger.Debug("projects.save", "project_id", p.ID, "draft_version", p.DraftVersion)
	return nil
}

// Load reads a project document back from storage.
func (s *Service) Load(ctx context.Context, projectID string) (*project.Project, error) {
	record, err := s.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	// Other writers share the table, so imports are re-checked on the way in.
	if err := schema.ValidateDocument(record.Document); err != nil {
		s.logger.Error("projects.load.invalid_document", "project_id", projectID, "error", err)
		return nil, err
	}
	p, err := project.Unmarshal(record.Document)
	if err != nil {
		return nil, fmt.Errorf("projects: unmarshal %q: %w", projectID, err)
	}
	return p, nil
}

// ListByWedding loads every project document for a wedding.
func (s *Service) ListByWedding(ctx context.Context, weddingID string) ([]*project.Project, error) {
	records, err := s.repo.ListByWedding(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	out := make([]*project.Project, 0, len(records))
	for _, record := range records {
		p, err := project.Unmarshal(record.Document)
		if err != nil {
			return nil, fmt.Errorf("projects: unmarshal %q: %w", record.ProjectID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Publish promotes the current draft: the draft version becomes the
// published version, the publish timestamp updates, and the next draft
// version opens. It returns the version that went live.
func (s *Service) Publish(ctx context.Context, projectID string) (int, error) {
	p, err := s.Load(ctx, projectID)
	if err != nil {
		return 0, err
	}

	published := p.DraftVersion
	now := sections.NowISO()
	p.PublishedVersion = &published
	p.PublishStatus = project.StatusPublished
	p.LastPublishedAt = &now
	p.DraftVersion = published + 1

	if err := s.Save(ctx, p); err != nil {
		return 0, err
	}
	s.logger.Info("projects.publish", "project_id", projectID, "version", published)
	return published, nil
}

// Delete removes a project record.
func (s *Service) Delete(ctx context.Context, projectID string) error {
	record, err := s.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, record.ID)
}
