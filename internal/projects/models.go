package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Record is the persisted row for one builder project. The full document
// lives in the jsonb column; the remaining columns exist for listing and
// publish bookkeeping without parsing the document.
type Record struct {
	bun.BaseModel `bun:"table:builder_projects,alias:bp"`

	ID               uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	ProjectID        string     `bun:"project_id,notnull,unique" json:"project_id"`
	WeddingID        string     `bun:"wedding_id,notnull" json:"wedding_id"`
	TemplateID       string     `bun:"template_id" json:"template_id"`
	ThemeID          string     `bun:"theme_id" json:"theme_id"`
	DraftVersion     int        `bun:"draft_version,notnull" json:"draft_version"`
	PublishedVersion *int       `bun:"published_version" json:"published_version"`
	PublishStatus    string     `bun:"publish_status,notnull" json:"publish_status"`
	Document         []byte     `bun:"document,type:jsonb,notnull" json:"document"`
	LastPublishedAt  *time.Time `bun:"last_published_at" json:"last_published_at"`
	CreatedAt        *time.Time `bun:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `bun:"updated_at" json:"updated_at"`
}
