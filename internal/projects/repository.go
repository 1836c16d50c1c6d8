package projects

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ProjectRepository exposes persistence operations for builder projects.
type ProjectRepository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	Update(ctx context.Context, record *Record) (*Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	GetByProjectID(ctx context.Context, projectID string) (*Record, error)
	ListByWedding(ctx context.Context, weddingID string) ([]*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError is returned when a project record cannot be located.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return "builder project not found"
	}
	return fmt.Sprintf("builder project %q not found", e.Key)
}

// NewProjectRepository creates the bun-backed repository for project records.
func NewProjectRepository(db *bun.DB) repository.Repository[*Record] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Record]{
		NewRecord:          func() *Record { return &Record{} },
		GetID:              func(record *Record) uuid.UUID { return record.ID },
		SetID:              func(record *Record, id uuid.UUID) { record.ID = id },
		GetIdentifier:      func() string { return "project_id" },
		GetIdentifierValue: func(record *Record) string { return record.ProjectID },
	})
}
