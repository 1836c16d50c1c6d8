package projects

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryProjectRepository provides an in-memory ProjectRepository for tests
// and hosts without a database.
type MemoryProjectRepository struct {
	mu          sync.RWMutex
	byID        map[uuid.UUID]*Record
	byProjectID map[string]uuid.UUID
}

// NewMemoryProjectRepository constructs an empty memory-backed repository.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{
		byID:        make(map[uuid.UUID]*Record),
		byProjectID: make(map[string]uuid.UUID),
	}
}

func (r *MemoryProjectRepository) Create(_ context.Context, record *Record) (*Record, error) {
	if record == nil {
		return nil, nil
	}
	cloned := cloneRecord(record)
	if cloned.ID == uuid.Nil {
		cloned.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[cloned.ID] = cloned
	r.byProjectID[cloned.ProjectID] = cloned.ID

	return cloneRecord(cloned), nil
}

func (r *MemoryProjectRepository) Update(_ context.Context, record *Record) (*Record, error) {
	if record == nil {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[record.ID]; !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}

	cloned := cloneRecord(record)
	r.byID[cloned.ID] = cloned
	r.byProjectID[cloned.ProjectID] = cloned.ID

	return cloneRecord(cloned), nil
}

func (r *MemoryProjectRepository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return cloneRecord(record), nil
}

func (r *MemoryProjectRepository) GetByProjectID(_ context.Context, projectID string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byProjectID[projectID]
	if !ok {
		return nil, &NotFoundError{Key: projectID}
	}
	return cloneRecord(r.byID[id]), nil
}

func (r *MemoryProjectRepository) ListByWedding(_ context.Context, weddingID string) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Record, 0)
	for _, record := range r.byID {
		if record.WeddingID == weddingID {
			out = append(out, cloneRecord(record))
		}
	}
	return out, nil
}

func (r *MemoryProjectRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return &NotFoundError{Key: id.String()}
	}
	delete(r.byProjectID, record.ProjectID)
	delete(r.byID, id)
	return nil
}

func cloneRecord(record *Record) *Record {
	if record == nil {
		return nil
	}
	cloned := *record
	if record.Document != nil {
		cloned.Document = append([]byte(nil), record.Document...)
	}
	if record.PublishedVersion != nil {
		version := *record.PublishedVersion
		cloned.PublishedVersion = &version
	}
	if record.LastPublishedAt != nil {
		at := *record.LastPublishedAt
		cloned.LastPublishedAt = &at
	}
	if record.CreatedAt != nil {
		at := *record.CreatedAt
		cloned.CreatedAt = &at
	}
	if record.UpdatedAt != nil {
		at := *record.UpdatedAt
		cloned.UpdatedAt = &at
	}
	return &cloned
}
