package project

import (
	"encoding/json"

	"github.com/goliatone/go-builder/sections"
	"github.com/google/uuid"
)

// PublishStatus tracks where a project sits in the publish lifecycle. The
// core forwards it without interpreting the transitions.
type PublishStatus string

const (
	StatusDraft      PublishStatus = "draft"
	StatusPublishing PublishStatus = "publishing"
	StatusPublished  PublishStatus = "published"
	StatusFailed     PublishStatus = "failed"
)

// Project is the persisted aggregate: the page collection plus project-level
// concerns (theme tokens, template identity, publish status) treated as
// opaque payload by the editing core.
type Project struct {
	ID               string         `json:"id"`
	WeddingID        string         `json:"weddingId"`
	TemplateID       string         `json:"templateId"`
	ThemeID          string         `json:"themeId"`
	ThemeTokens      map[string]any `json:"themeTokens,omitempty"`
	Pages            []*Page        `json:"pages"`
	DraftVersion     int            `json:"draftVersion"`
	PublishedVersion *int           `json:"publishedVersion"`
	PublishStatus    PublishStatus  `json:"publishStatus"`
	LastPublishedAt  *string        `json:"lastPublishedAt"`
	Meta             sections.Meta  `json:"meta"`
}

// Page is an ordered collection of section instances plus page identity.
type Page struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Slug       string               `json:"slug"`
	OrderIndex int                  `json:"orderIndex"`
	Sections   []*sections.Instance `json:"sections"`
	Meta       PageMeta             `json:"meta"`
}

// PageMeta carries page-level flags the guest-facing render consults.
type PageMeta struct {
	IsHome   bool `json:"isHome"`
	IsHidden bool `json:"isHidden"`
}

// New creates an empty project seeded with a single home page.
func New(weddingID, templateID string) *Project {
	now := sections.NowISO()
	return &Project{
		ID:            NewID(),
		WeddingID:     weddingID,
		TemplateID:    templateID,
		ThemeID:       "romantic",
		Pages:         []*Page{NewPage("Home", 0, true)},
		DraftVersion:  1,
		PublishStatus: StatusDraft,
		Meta: sections.Meta{
			CreatedAtISO: now,
			UpdatedAtISO: now,
		},
	}
}

// NewPage creates an empty page. The slug is derived from the title.
func NewPage(title string, orderIndex int, isHome bool) *Page {
	return &Page{
		ID:         NewID(),
		Title:      title,
		Slug:       Slugify(title),
		OrderIndex: orderIndex,
		Sections:   []*sections.Instance{},
		Meta:       PageMeta{IsHome: isHome},
	}
}

// NewID generates a fresh project/page identifier.
func NewID() string {
	return "bld_" + uuid.NewString()
}

// FindPage returns the page with the given id, or nil.
func (p *Project) FindPage(pageID string) *Page {
	if p == nil {
		return nil
	}
	for _, page := range p.Pages {
		if page.ID == pageID {
			return page
		}
	}
	return nil
}

// FindSection returns the section with the given id on the page, or nil.
func (pg *Page) FindSection(sectionID string) *sections.Instance {
	if pg == nil {
		return nil
	}
	for _, section := range pg.Sections {
		if section.ID == sectionID {
			return section
		}
	}
	return nil
}

// Clone deep-copies the project so history snapshots and duplicated
// structures never share mutable state with the live document.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cloned := *p
	if p.ThemeTokens != nil {
		cloned.ThemeTokens = make(map[string]any, len(p.ThemeTokens))
		for key, value := range p.ThemeTokens {
			cloned.ThemeTokens[key] = value
		}
	}
	if p.PublishedVersion != nil {
		version := *p.PublishedVersion
		cloned.PublishedVersion = &version
	}
	if p.LastPublishedAt != nil {
		at := *p.LastPublishedAt
		cloned.LastPublishedAt = &at
	}
	cloned.Pages = make([]*Page, len(p.Pages))
	for i, page := range p.Pages {
		cloned.Pages[i] = page.Clone()
	}
	return &cloned
}

// Clone deep-copies the page and its sections.
func (pg *Page) Clone() *Page {
	if pg == nil {
		return nil
	}
	cloned := *pg
	cloned.Sections = make([]*sections.Instance, len(pg.Sections))
	for i, section := range pg.Sections {
		cloned.Sections[i] = section.Clone()
	}
	return &cloned
}

// Marshal serializes the project to its persisted JSON document.
func Marshal(p *Project) ([]byte, error) {
	if p == nil {
		return nil, ErrProjectRequired
	}
	return json.Marshal(p)
}

// Unmarshal parses a persisted project document. Structural validation
// beyond JSON shape is the caller's concern (see internal/schema).
func Unmarshal(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
