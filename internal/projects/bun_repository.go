package projects

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunProjectRepository implements ProjectRepository with optional caching.
type BunProjectRepository struct {
	repo repository.Repository[*Record]
}

// NewBunProjectRepository creates a project repository without caching.
func NewBunProjectRepository(db *bun.DB) *BunProjectRepository {
	return NewBunProjectRepositoryWithCache(db, nil, nil)
}

// NewBunProjectRepositoryWithCache creates a project repository with caching
// support.
func NewBunProjectRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunProjectRepository {
	base := NewProjectRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunProjectRepository{repo: base}
}

func (r *BunProjectRepository) Create(ctx context.Context, record *Record) (*Record, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunProjectRepository) Update(ctx context.Context, record *Record) (*Record, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.ProjectID)
	}
	return updated, nil
}

func (r *BunProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

func (r *BunProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*Record, error) {
	record, err := r.repo.GetByIdentifier(ctx, projectID)
	if err != nil {
		return nil, mapRepositoryError(err, projectID)
	}
	return record, nil
}

func (r *BunProjectRepository) ListByWedding(ctx context.Context, weddingID string) ([]*Record, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.wedding_id = ?", weddingID)
	}))
	return records, err
}

func (r *BunProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Record{ID: id})
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("builder project repository error: %w", err)
}
