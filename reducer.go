package builder

import (
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
	"github.com/goliatone/go-command"
)

// Reducer is the single state transition function. Given the current state
// and a validated action it returns the next state; the input state is never
// mutated. Stale page or section references are silent no-ops so async
// callbacks landing after a deletion cannot corrupt the document. Catalog
// misuse (unknown section type, unsupported variant) is an error.
type Reducer struct {
	registry *sections.Registry
}

// NewReducer constructs a reducer over the given manifest registry.
func NewReducer(registry *sections.Registry) *Reducer {
	if registry == nil {
		registry = sections.DefaultRegistry()
	}
	return &Reducer{registry: registry}
}

// Registry exposes the manifest registry the reducer validates against.
func (r *Reducer) Registry() *sections.Registry {
	return r.registry
}

// Apply computes the next state for one action.
func (r *Reducer) Apply(st State, msg command.Message) (State, error) {
	switch m := msg.(type) {
	case LoadProject:
		return r.loadProject(st, m), nil
	case SetActivePage:
		return r.setActivePage(st, m), nil
	case SelectSection:
		st.SelectedSectionID = m.SectionID
		return st, nil
	case HoverSection:
		st.HoveredSectionID = m.SectionID
		return st, nil
	case SetMode:
		st.Mode = m.Mode
		if m.Mode == ModePreview {
			st.SelectedSectionID = ""
			st.HoveredSectionID = ""
		}
		return st, nil
	case SetPreviewViewport:
		st.PreviewViewport = m.Viewport
		return st, nil
	case AddSection:
		return r.addSection(st, m)
	case AddSectionByType:
		return r.addSectionByType(st, m)
	case RemoveSection:
		return r.removeSection(st, m)
	case DuplicateSection:
		return r.duplicateSection(st, m)
	case ReorderSections:
		return r.reorderSections(st, m)
	case UpdateSection:
		return r.updateSection(st, m)
	case ToggleSectionVisibility:
		return r.toggleVisibility(st, m)
	case ApplyTemplate:
		return r.applyTemplate(st, m)
	case ApplyTheme:
		return r.applyTheme(st, m)
	case OpenTemplateGallery:
		st.TemplateGalleryOpen = true
		return st, nil
	case CloseTemplateGallery:
		st.TemplateGalleryOpen = false
		return st, nil
	case OpenMediaLibrary:
		st.MediaLibraryOpen = true
		st.MediaPickerTargetSectionID = m.TargetSectionID
		return st, nil
	case CloseMediaLibrary:
		st.MediaLibraryOpen = false
		st.MediaPickerTargetSectionID = ""
		return st, nil
	case OpenThemePanel:
		st.ThemePanelOpen = true
		return st, nil
	case CloseThemePanel:
		st.ThemePanelOpen = false
		return st, nil
	case MarkSaved:
		st.IsDirty = false
		st.LastSavedAtISO = m.SavedAtISO
		st.Err = ""
		return st, nil
	case MarkPublished:
		return r.markPublished(st, m), nil
	case SetError:
		st.Err = m.Message
		return st, nil
	}
	return st, ErrUnknownAction
}

func (r *Reducer) loadProject(st State, m LoadProject) State {
	next := NewState()
	next.Project = m.Project.Clone()

	for _, page := range next.Project.Pages {
		if page.Meta.IsHome {
			next.ActivePageID = page.ID
			break
		}
	}
	if next.ActivePageID == "" && len(next.Project.Pages) > 0 {
		next.ActivePageID = next.Project.Pages[0].ID
	}
	return next
}

func (r *Reducer) setActivePage(st State, m SetActivePage) State {
	if st.Project == nil || st.Project.FindPage(m.PageID) == nil {
		return st
	}
	st.ActivePageID = m.PageID
	st.SelectedSectionID = ""
	st.HoveredSectionID = ""
	return st
}

func (r *Reducer) addSection(st State, m AddSection) (State, error) {
	if _, err := r.registry.Get(m.Section.Type); err != nil {
		return st, err
	}

	instance := m.Section.Clone()
	next, ok := r.mutatePage(st, m.PageID, func(pg *project.Page) {
		insertSection(pg, instance, m.Position)
	})
	if !ok {
		return st, nil
	}
	next.SelectedSectionID = instance.ID
	return next, nil
}

func (r *Reducer) addSectionByType(st State, m AddSectionByType) (State, error) {
	instance, err := sections.NewInstance(r.registry, m.SectionType, m.Variant, 0)
	if err != nil {
		return st, err
	}

	next, ok := r.mutatePage(st, m.PageID, func(pg *project.Page) {
		insertSection(pg, instance, m.Position)
	})
	if !ok {
		return st, nil
	}
	next.SelectedSectionID = instance.ID
	return next, nil
}

func (r *Reducer) removeSection(st State, m RemoveSection) (State, error) {
	target := r.findSection(st, m.PageID, m.SectionID)
	if target == nil {
		return st, nil
	}
	if target.Locked || !r.deletable(target.Type) {
		return st, nil
	}

	next, _ := r.mutatePage(st, m.PageID, func(pg *project.Page) {
		kept := pg.Sections[:0]
		for _, section := range pg.Sections {
			if section.ID != m.SectionID {
				kept = append(kept, section)
			}
		}
		pg.Sections = kept
	})
	if next.SelectedSectionID == m.SectionID {
		next.SelectedSectionID = ""
	}
	if next.HoveredSectionID == m.SectionID {
		next.HoveredSectionID = ""
	}
	if next.MediaPickerTargetSectionID == m.SectionID {
		next.MediaPickerTargetSectionID = ""
	}
	return next, nil
}

func (r *Reducer) duplicateSection(st State, m DuplicateSection) (State, error) {
	source := r.findSection(st, m.PageID, m.SectionID)
	if source == nil {
		return st, nil
	}
	if !r.duplicable(source.Type) {
		return st, nil
	}

	clone := source.Clone()
	clone.ID = sections.NewInstanceID()
	clone.Locked = false
	now := sections.NowISO()
	clone.Meta.CreatedAtISO = now
	clone.Meta.UpdatedAtISO = now

	next, _ := r.mutatePage(st, m.PageID, func(pg *project.Page) {
		at := len(pg.Sections)
		for i, section := range pg.Sections {
			if section.ID == m.SectionID {
				at = i + 1
				break
			}
		}
		pg.Sections = append(pg.Sections, nil)
		copy(pg.Sections[at+1:], pg.Sections[at:])
		pg.Sections[at] = clone
		renumber(pg)
	})
	next.SelectedSectionID = clone.ID
	return next, nil
}

func (r *Reducer) reorderSections(st State, m ReorderSections) (State, error) {
	next, ok := r.mutatePage(st, m.PageID, func(pg *project.Page) {
		pg.Sections = reconcileOrder(pg.Sections, m.OrderedIDs)
		renumber(pg)
	})
	if !ok {
		return st, nil
	}
	return next, nil
}

func (r *Reducer) updateSection(st State, m UpdateSection) (State, error) {
	target := r.findSection(st, m.PageID, m.SectionID)
	if target == nil {
		return st, nil
	}
	if m.Patch.IsZero() {
		return st, nil
	}
	if m.Patch.Variant != nil && !r.registry.SupportsVariant(target.Type, *m.Patch.Variant) {
		return st, &sections.VariantUnsupportedError{Type: target.Type, Variant: *m.Patch.Variant}
	}

	next, _ := r.mutatePage(st, m.PageID, func(pg *project.Page) {
		section := pg.FindSection(m.SectionID)
		applyPatch(section, m.Patch)
		section.Touch()
	})
	return next, nil
}

func (r *Reducer) toggleVisibility(st State, m ToggleSectionVisibility) (State, error) {
	if r.findSection(st, m.PageID, m.SectionID) == nil {
		return st, nil
	}
	next, _ := r.mutatePage(st, m.PageID, func(pg *project.Page) {
		section := pg.FindSection(m.SectionID)
		section.Enabled = !section.Enabled
		section.Touch()
	})
	return next, nil
}

// applyTemplate merges the template composition into the home page. Existing
// sections whose type appears in the template keep their identity and
// content while adopting the template's variant and position; non-deletable
// existing sections absent from the template survive at the tail. Everything
// else is replaced by the template's sections.
func (r *Reducer) applyTemplate(st State, m ApplyTemplate) (State, error) {
	if st.Project == nil {
		return st, nil
	}
	homeID := ""
	for _, page := range st.Project.Pages {
		if page.Meta.IsHome {
			homeID = page.ID
			break
		}
	}
	if homeID == "" && len(st.Project.Pages) > 0 {
		homeID = st.Project.Pages[0].ID
	}
	if homeID == "" {
		return st, nil
	}
	for _, incoming := range m.Sections {
		if incoming == nil {
			continue
		}
		if _, err := r.registry.Get(incoming.Type); err != nil {
			return st, err
		}
	}

	next, _ := r.mutatePage(st, homeID, func(pg *project.Page) {
		consumed := make(map[string]bool, len(pg.Sections))
		merged := make([]*sections.Instance, 0, len(m.Sections))

		for _, incoming := range m.Sections {
			if incoming == nil {
				continue
			}
			existing := firstUnconsumed(pg.Sections, incoming.Type, consumed)
			if existing != nil {
				consumed[existing.ID] = true
				kept := existing.Clone()
				kept.Variant = incoming.Variant
				kept.Touch()
				merged = append(merged, kept)
				continue
			}
			fresh := incoming.Clone()
			if fresh.ID == "" {
				fresh.ID = sections.NewInstanceID()
			}
			merged = append(merged, fresh)
		}

		for _, existing := range pg.Sections {
			if consumed[existing.ID] {
				continue
			}
			if !r.deletable(existing.Type) {
				merged = append(merged, existing)
			}
		}

		pg.Sections = merged
		renumber(pg)
	})

	next.Project.TemplateID = m.TemplateID
	if next.SelectedSectionID != "" {
		if page := next.Project.FindPage(homeID); page != nil && page.FindSection(next.SelectedSectionID) == nil {
			next.SelectedSectionID = ""
		}
	}
	return next, nil
}

func (r *Reducer) applyTheme(st State, m ApplyTheme) (State, error) {
	if st.Project == nil {
		return st, nil
	}
	cloned := st.Project.Clone()
	cloned.ThemeID = m.ThemeID
	if m.Tokens != nil {
		if cloned.ThemeTokens == nil {
			cloned.ThemeTokens = make(map[string]any, len(m.Tokens))
		}
		for key, value := range m.Tokens {
			cloned.ThemeTokens[key] = value
		}
	}
	cloned.Meta.UpdatedAtISO = sections.NowISO()
	st.Project = cloned
	st.IsDirty = true
	return st, nil
}

func (r *Reducer) markPublished(st State, m MarkPublished) State {
	if st.Project == nil {
		return st
	}
	cloned := st.Project.Clone()
	version := m.Version
	at := m.PublishedAtISO
	cloned.PublishedVersion = &version
	cloned.LastPublishedAt = &at
	cloned.PublishStatus = project.StatusPublished
	st.Project = cloned
	return st
}

// mutatePage clones the document, applies fn to the addressed page, and
// stamps the result dirty. A stale page id leaves the state untouched.
func (r *Reducer) mutatePage(st State, pageID string, fn func(pg *project.Page)) (State, bool) {
	if st.Project == nil || st.Project.FindPage(pageID) == nil {
		return st, false
	}

	cloned := st.Project.Clone()
	fn(cloned.FindPage(pageID))
	cloned.Meta.UpdatedAtISO = sections.NowISO()

	st.Project = cloned
	st.IsDirty = true
	return st, true
}

func (r *Reducer) findSection(st State, pageID, sectionID string) *sections.Instance {
	if st.Project == nil {
		return nil
	}
	return st.Project.FindPage(pageID).FindSection(sectionID)
}

func (r *Reducer) deletable(sectionType sections.Type) bool {
	manifest, err := r.registry.Get(sectionType)
	if err != nil {
		return true
	}
	return manifest.Capabilities.Deletable
}

func (r *Reducer) duplicable(sectionType sections.Type) bool {
	manifest, err := r.registry.Get(sectionType)
	if err != nil {
		return true
	}
	return manifest.Capabilities.Duplicable
}

// insertSection places the instance at position (clamped to the section
// count) or appends when position is nil, then renumbers contiguously.
func insertSection(pg *project.Page, instance *sections.Instance, position *int) {
	at := len(pg.Sections)
	if position != nil {
		at = *position
		if at < 0 {
			at = 0
		}
		if at > len(pg.Sections) {
			at = len(pg.Sections)
		}
	}
	pg.Sections = append(pg.Sections, nil)
	copy(pg.Sections[at+1:], pg.Sections[at:])
	pg.Sections[at] = instance
	renumber(pg)
}

// reconcileOrder reorders current by the position of each id in orderedIDs.
// Duplicate ids keep their first occurrence, unknown ids are dropped, and
// current sections missing from the input are re-inserted at their original
// index (clamped) in ascending original-index order so no section is ever
// lost to a stale drag payload.
func reconcileOrder(current []*sections.Instance, orderedIDs []string) []*sections.Instance {
	byID := make(map[string]*sections.Instance, len(current))
	originalIndex := make(map[string]int, len(current))
	for i, section := range current {
		byID[section.ID] = section
		originalIndex[section.ID] = i
	}

	seen := make(map[string]bool, len(orderedIDs))
	next := make([]*sections.Instance, 0, len(current))
	for _, id := range orderedIDs {
		section, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		next = append(next, section)
	}

	for _, section := range current {
		if seen[section.ID] {
			continue
		}
		at := originalIndex[section.ID]
		if at > len(next) {
			at = len(next)
		}
		next = append(next, nil)
		copy(next[at+1:], next[at:])
		next[at] = section
	}
	return next
}

// applyPatch shallow-merges the patch into the section: scalar pointers
// overwrite, settings merge key by key, binding slots replace when non-nil,
// and style overrides merge field by field.
func applyPatch(section *sections.Instance, patch SectionPatch) {
	if patch.Variant != nil {
		section.Variant = *patch.Variant
	}
	if patch.Enabled != nil {
		section.Enabled = *patch.Enabled
	}
	if patch.Locked != nil {
		section.Locked = *patch.Locked
	}
	if len(patch.Settings) > 0 {
		if section.Settings == nil {
			section.Settings = make(map[string]any, len(patch.Settings))
		}
		for key, value := range patch.Settings {
			section.Settings[key] = value
		}
	}
	if patch.Bindings != nil {
		if patch.Bindings.VenueIDs != nil {
			section.Bindings.VenueIDs = append([]string(nil), patch.Bindings.VenueIDs...)
		}
		if patch.Bindings.ScheduleItemIDs != nil {
			section.Bindings.ScheduleItemIDs = append([]string(nil), patch.Bindings.ScheduleItemIDs...)
		}
		if patch.Bindings.LinkIDs != nil {
			section.Bindings.LinkIDs = append([]string(nil), patch.Bindings.LinkIDs...)
		}
		if patch.Bindings.FAQIDs != nil {
			section.Bindings.FAQIDs = append([]string(nil), patch.Bindings.FAQIDs...)
		}
		if patch.Bindings.MediaAssetIDs != nil {
			section.Bindings.MediaAssetIDs = append([]string(nil), patch.Bindings.MediaAssetIDs...)
		}
	}
	if patch.StyleOverrides != nil {
		mergeStyleOverrides(&section.StyleOverrides, *patch.StyleOverrides)
	}
}

// mergeStyleOverrides merges the patch one field deep: set fields overwrite,
// empty fields leave the existing override in place.
func mergeStyleOverrides(dst *sections.StyleOverrides, src sections.StyleOverrides) {
	if src.BackgroundColor != "" {
		dst.BackgroundColor = src.BackgroundColor
	}
	if src.TextColor != "" {
		dst.TextColor = src.TextColor
	}
	if src.PaddingTop != "" {
		dst.PaddingTop = src.PaddingTop
	}
	if src.PaddingBottom != "" {
		dst.PaddingBottom = src.PaddingBottom
	}
	if src.FontFamily != "" {
		dst.FontFamily = src.FontFamily
	}
	if src.CustomCSS != "" {
		dst.CustomCSS = src.CustomCSS
	}
	if src.SideImage != "" {
		dst.SideImage = src.SideImage
	}
	if src.SideImagePosition != "" {
		dst.SideImagePosition = src.SideImagePosition
	}
	if src.SideImageSize != "" {
		dst.SideImageSize = src.SideImageSize
	}
	if src.SideImageFit != "" {
		dst.SideImageFit = src.SideImageFit
	}
}

func renumber(pg *project.Page) {
	for i, section := range pg.Sections {
		section.OrderIndex = i
	}
}

func firstUnconsumed(list []*sections.Instance, sectionType sections.Type, consumed map[string]bool) *sections.Instance {
	for _, section := range list {
		if section.Type == sectionType && !consumed[section.ID] {
			return section
		}
	}
	return nil
}
