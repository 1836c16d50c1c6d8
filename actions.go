package builder

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
)

// Actions form the closed intent set of the command layer. Each action is a
// go-command message: Type() identifies it and Validate() rejects malformed
// payloads before the reducer ever sees them. Stale references (a page or
// section id that no longer exists) are not validation failures — the
// reducer treats those as silent no-ops because async picker callbacks can
// legitimately land after a deletion.

// documentAction marks actions that mutate the persisted document. Only
// these are recorded into history and dirty the project; pure view-state
// actions (select, hover, mode, panels) are excluded.
type documentAction interface {
	historyLabel() string
}

// LoadProject replaces the working document, resetting view state and
// history. Dispatched once on builder mount.
type LoadProject struct {
	Project *project.Project `json:"project"`
}

func (LoadProject) Type() string { return "builder.project.load" }

func (m LoadProject) Validate() error {
	errs := validation.Errors{}
	if m.Project == nil {
		errs["project"] = validation.NewError("builder.project.load.project_required", "project is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetActivePage switches which page the canvas and panels edit.
type SetActivePage struct {
	PageID string `json:"page_id"`
}

func (SetActivePage) Type() string { return "builder.pages.activate" }

func (m SetActivePage) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.PageID) == "" {
		errs["page_id"] = validation.NewError("builder.pages.activate.page_id_required", "page_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SelectSection sets the selected section. An empty id clears selection;
// select-clear is idempotent.
type SelectSection struct {
	SectionID string `json:"section_id"`
}

func (SelectSection) Type() string { return "builder.ui.select" }

func (SelectSection) Validate() error { return nil }

// HoverSection sets the hovered section. An empty id clears the hover.
type HoverSection struct {
	SectionID string `json:"section_id"`
}

func (HoverSection) Type() string { return "builder.ui.hover" }

func (HoverSection) Validate() error { return nil }

// SetMode toggles between editing and read-only preview.
type SetMode struct {
	Mode Mode `json:"mode"`
}

func (SetMode) Type() string { return "builder.ui.mode" }

func (m SetMode) Validate() error {
	errs := validation.Errors{}
	switch m.Mode {
	case ModeEdit, ModePreview:
	default:
		errs["mode"] = validation.NewError("builder.ui.mode.invalid", "mode must be edit or preview")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetPreviewViewport selects the simulated device width for preview mode.
type SetPreviewViewport struct {
	Viewport Viewport `json:"viewport"`
}

func (SetPreviewViewport) Type() string { return "builder.ui.viewport" }

func (m SetPreviewViewport) Validate() error {
	errs := validation.Errors{}
	switch m.Viewport {
	case ViewportDesktop, ViewportTablet, ViewportMobile:
	default:
		errs["viewport"] = validation.NewError("builder.ui.viewport.invalid", "viewport must be desktop, tablet, or mobile")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AddSection appends (or inserts at Position) an already-built instance.
// Never idempotent: every dispatch places the given instance.
type AddSection struct {
	PageID   string             `json:"page_id"`
	Section  *sections.Instance `json:"section"`
	Position *int               `json:"position,omitempty"`
}

func (AddSection) Type() string { return "builder.sections.add" }

func (m AddSection) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.PageID) == "" {
		errs["page_id"] = validation.NewError("builder.sections.add.page_id_required", "page_id is required")
	}
	if m.Section == nil {
		errs["section"] = validation.NewError("builder.sections.add.section_required", "section is required")
	} else if strings.TrimSpace(m.Section.ID) == "" {
		errs["section"] = validation.NewError("builder.sections.add.section_id_required", "section id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (AddSection) historyLabel() string { return "Add section" }

// AddSectionByType factory-creates an instance of the given type and places
// it. Unknown types surface as errors (catalog bug), unlike stale page ids.
type AddSectionByType struct {
	PageID      string        `json:"page_id"`
	SectionType sections.Type `json:"section_type"`
	Variant     string        `json:"variant,omitempty"`
	Position    *int          `json:"position,omitempty"`
}

func (AddSectionByType) Type() string { return "builder.sections.add_by_type" }

func (m AddSectionByType) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.PageID) == "" {
		errs["page_id"] = validation.NewError("builder.sections.add_by_type.page_id_required", "page_id is required")
	}
	if strings.TrimSpace(string(m.SectionType)) == "" {
		errs["section_type"] = validation.NewError("builder.sections.add_by_type.type_required", "section_type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (AddSectionByType) historyLabel() string { return "Add section" }

// RemoveSection deletes a section. The core performs the deletion
// unconditionally once called — confirmation belongs to the UI boundary.
// Locked and non-deletable sections are left untouched.
type RemoveSection struct {
	PageID    string `json:"page_id"`
	SectionID string `json:"section_id"`
}

func (RemoveSection) Type() string { return "builder.sections.remove" }

func (m RemoveSection) Validate() error {
	return validateSectionRef("builder.sections.remove", m.PageID, m.SectionID)
}

func (RemoveSection) historyLabel() string { return "Remove section" }

// DuplicateSection clones a section with a fresh id, inserted immediately
// after the source. The clone shares no references with the source.
type DuplicateSection struct {
	PageID    string `json:"page_id"`
	SectionID string `json:"section_id"`
}

func (DuplicateSection) Type() string { return "builder.sections.duplicate" }

func (m DuplicateSection) Validate() error {
	return validateSectionRef("builder.sections.duplicate", m.PageID, m.SectionID)
}

func (DuplicateSection) historyLabel() string { return "Duplicate section" }

// ReorderSections reassigns section order by position in OrderedIDs. Inputs
// that are not a permutation of the page's current ids are reconciled
// conservatively: ids missing from the input are retained at their prior
// relative position, never dropped.
type ReorderSections struct {
	PageID     string   `json:"page_id"`
	OrderedIDs []string `json:"ordered_ids"`
}

func (ReorderSections) Type() string { return "builder.sections.reorder" }

func (m ReorderSections) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.PageID) == "" {
		errs["page_id"] = validation.NewError("builder.sections.reorder.page_id_required", "page_id is required")
	}
	if len(m.OrderedIDs) == 0 {
		errs["ordered_ids"] = validation.NewError("builder.sections.reorder.ordered_ids_required", "ordered_ids is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (ReorderSections) historyLabel() string { return "Reorder sections" }

// SectionPatch captures a partial section update. Settings, bindings, and
// style overrides merge one level deep into the existing values; nil fields
// are left untouched.
type SectionPatch struct {
	Variant        *string                  `json:"variant,omitempty"`
	Enabled        *bool                    `json:"enabled,omitempty"`
	Locked         *bool                    `json:"locked,omitempty"`
	Settings       map[string]any           `json:"settings,omitempty"`
	Bindings       *sections.Bindings       `json:"bindings,omitempty"`
	StyleOverrides *sections.StyleOverrides `json:"styleOverrides,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (p SectionPatch) IsZero() bool {
	return p.Variant == nil && p.Enabled == nil && p.Locked == nil &&
		len(p.Settings) == 0 && p.Bindings == nil && p.StyleOverrides == nil
}

// UpdateSection shallow-merges a patch into a section. Content edits are
// allowed on locked sections; only reordering and deletion are gated.
type UpdateSection struct {
	PageID    string       `json:"page_id"`
	SectionID string       `json:"section_id"`
	Patch     SectionPatch `json:"patch"`
}

func (UpdateSection) Type() string { return "builder.sections.update" }

func (m UpdateSection) Validate() error {
	return validateSectionRef("builder.sections.update", m.PageID, m.SectionID)
}

func (UpdateSection) historyLabel() string { return "Update section" }

// ToggleSectionVisibility flips a section's enabled flag: the soft delete.
// Applying it twice restores the original value.
type ToggleSectionVisibility struct {
	PageID    string `json:"page_id"`
	SectionID string `json:"section_id"`
}

func (ToggleSectionVisibility) Type() string { return "builder.sections.toggle_visibility" }

func (m ToggleSectionVisibility) Validate() error {
	return validateSectionRef("builder.sections.toggle_visibility", m.PageID, m.SectionID)
}

func (ToggleSectionVisibility) historyLabel() string { return "Toggle visibility" }

// ApplyTemplate merges a template's section composition into the home page:
// sections of a type already present keep their settings, bindings, and
// style overrides while adopting the incoming variant and order.
type ApplyTemplate struct {
	TemplateID string               `json:"template_id"`
	Sections   []*sections.Instance `json:"sections"`
}

func (ApplyTemplate) Type() string { return "builder.templates.apply" }

func (m ApplyTemplate) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.TemplateID) == "" {
		errs["template_id"] = validation.NewError("builder.templates.apply.template_id_required", "template_id is required")
	}
	if len(m.Sections) == 0 {
		errs["sections"] = validation.NewError("builder.templates.apply.sections_required", "sections composition is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (ApplyTemplate) historyLabel() string { return "Apply template" }

// ApplyTheme switches the project theme. Tokens are opaque payload the core
// forwards without interpreting.
type ApplyTheme struct {
	ThemeID string         `json:"theme_id"`
	Tokens  map[string]any `json:"tokens,omitempty"`
}

func (ApplyTheme) Type() string { return "builder.themes.apply" }

func (m ApplyTheme) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ThemeID) == "" {
		errs["theme_id"] = validation.NewError("builder.themes.apply.theme_id_required", "theme_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (ApplyTheme) historyLabel() string { return "Apply theme" }

// OpenTemplateGallery opens the template gallery panel.
type OpenTemplateGallery struct{}

func (OpenTemplateGallery) Type() string { return "builder.ui.template_gallery.open" }

func (OpenTemplateGallery) Validate() error { return nil }

// CloseTemplateGallery closes the template gallery panel.
type CloseTemplateGallery struct{}

func (CloseTemplateGallery) Type() string { return "builder.ui.template_gallery.close" }

func (CloseTemplateGallery) Validate() error { return nil }

// OpenMediaLibrary opens the media picker, optionally targeting a section.
// The picker completes asynchronously by dispatching a regular
// UpdateSection once a URL is known; the core tracks no pending state.
type OpenMediaLibrary struct {
	TargetSectionID string `json:"target_section_id,omitempty"`
}

func (OpenMediaLibrary) Type() string { return "builder.ui.media_library.open" }

func (OpenMediaLibrary) Validate() error { return nil }

// CloseMediaLibrary closes the media picker and clears its target.
type CloseMediaLibrary struct{}

func (CloseMediaLibrary) Type() string { return "builder.ui.media_library.close" }

func (CloseMediaLibrary) Validate() error { return nil }

// OpenThemePanel opens the theme palette panel.
type OpenThemePanel struct{}

func (OpenThemePanel) Type() string { return "builder.ui.theme_panel.open" }

func (OpenThemePanel) Validate() error { return nil }

// CloseThemePanel closes the theme palette panel.
type CloseThemePanel struct{}

func (CloseThemePanel) Type() string { return "builder.ui.theme_panel.close" }

func (CloseThemePanel) Validate() error { return nil }

// MarkSaved acknowledges a completed save. Dispatched by the persistence
// collaborator, not by panels.
type MarkSaved struct {
	SavedAtISO string `json:"saved_at_iso"`
}

func (MarkSaved) Type() string { return "builder.project.mark_saved" }

func (m MarkSaved) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.SavedAtISO) == "" {
		errs["saved_at_iso"] = validation.NewError("builder.project.mark_saved.timestamp_required", "saved_at_iso is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkPublished records the outcome of a completed publish.
type MarkPublished struct {
	Version        int    `json:"version"`
	PublishedAtISO string `json:"published_at_iso"`
}

func (MarkPublished) Type() string { return "builder.project.mark_published" }

func (m MarkPublished) Validate() error {
	errs := validation.Errors{}
	if m.Version <= 0 {
		errs["version"] = validation.NewError("builder.project.mark_published.version_invalid", "version must be greater than zero")
	}
	if strings.TrimSpace(m.PublishedAtISO) == "" {
		errs["published_at_iso"] = validation.NewError("builder.project.mark_published.timestamp_required", "published_at_iso is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetError surfaces a collaborator failure (save, upload) to panels. An
// empty message clears the error.
type SetError struct {
	Message string `json:"message"`
}

func (SetError) Type() string { return "builder.ui.error" }

func (SetError) Validate() error { return nil }

func validateSectionRef(prefix, pageID, sectionID string) error {
	errs := validation.Errors{}
	if strings.TrimSpace(pageID) == "" {
		errs["page_id"] = validation.NewError(prefix+".page_id_required", "page_id is required")
	}
	if strings.TrimSpace(sectionID) == "" {
		errs["section_id"] = validation.NewError(prefix+".section_id_required", "section_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
