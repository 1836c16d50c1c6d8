package builder

import (
	"sort"

	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
)

// Selectors are the read API over State. Panels derive everything they
// render from these instead of walking the document themselves, so the
// canvas, the layers list, and the inspector always agree on what they
// show.

// ActivePage returns the page being edited, or nil before a project loads.
func ActivePage(st State) *project.Page {
	if st.Project == nil {
		return nil
	}
	return st.Project.FindPage(st.ActivePageID)
}

// ActiveSections returns the active page's sections sorted by order index.
// The document keeps sections sorted already; re-sorting here means a
// corrupted order field degrades to a stable rendering instead of a
// scrambled one.
func ActiveSections(st State) []*sections.Instance {
	page := ActivePage(st)
	if page == nil {
		return nil
	}
	out := make([]*sections.Instance, len(page.Sections))
	copy(out, page.Sections)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// EnabledSections returns the active page's enabled sections in render
// order. This is what preview mode and the guest-facing render consume.
func EnabledSections(st State) []*sections.Instance {
	all := ActiveSections(st)
	out := make([]*sections.Instance, 0, len(all))
	for _, section := range all {
		if section.Enabled {
			out = append(out, section)
		}
	}
	return out
}

// SelectedSection resolves the selected section instance, or nil when
// nothing is selected or the selection went stale.
func SelectedSection(st State) *sections.Instance {
	if st.SelectedSectionID == "" {
		return nil
	}
	return ActivePage(st).FindSection(st.SelectedSectionID)
}

// HoveredSection resolves the hovered section instance, or nil.
func HoveredSection(st State) *sections.Instance {
	if st.HoveredSectionID == "" {
		return nil
	}
	return ActivePage(st).FindSection(st.HoveredSectionID)
}

// IsPreviewMode reports whether the builder is in read-only preview.
func IsPreviewMode(st State) bool {
	return st.Mode == ModePreview
}

// IsDirty reports whether the document has unsaved changes.
func IsDirty(st State) bool {
	return st.IsDirty
}
