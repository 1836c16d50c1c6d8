package builder

import (
	"errors"
	"testing"

	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
)

func newTestReducer() *Reducer {
	return NewReducer(sections.DefaultRegistry())
}

func loadedState(t *testing.T, r *Reducer, types ...sections.Type) State {
	t.Helper()

	doc := project.New("wed_1", "")
	st, err := r.Apply(NewState(), LoadProject{Project: doc})
	if err != nil {
		t.Fatalf("load project: %v", err)
	}
	for _, sectionType := range types {
		st, err = r.Apply(st, AddSectionByType{PageID: st.ActivePageID, SectionType: sectionType})
		if err != nil {
			t.Fatalf("add %s: %v", sectionType, err)
		}
	}
	return st
}

func sectionIDs(st State) []string {
	out := []string{}
	for _, section := range ActiveSections(st) {
		out = append(out, section.ID)
	}
	return out
}

func TestLoadProjectResetsViewState(t *testing.T) {
	r := newTestReducer()
	doc := project.New("wed_1", "")

	dirty := NewState()
	dirty.Mode = ModePreview
	dirty.SelectedSectionID = "sec_stale"
	dirty.IsDirty = true

	st, err := r.Apply(dirty, LoadProject{Project: doc})
	if err != nil {
		t.Fatalf("load project: %v", err)
	}

	if st.ActivePageID != doc.Pages[0].ID {
		t.Fatalf("expected home page active, got %q", st.ActivePageID)
	}
	if st.Mode != ModeEdit || st.SelectedSectionID != "" || st.IsDirty {
		t.Fatal("load must reset view state")
	}
	if st.Project == doc {
		t.Fatal("loaded document must be cloned, not shared")
	}
}

func TestAddSectionByTypeAppendsAndSelects(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeHero, sections.TypeStory)

	all := ActiveSections(st)
	if len(all) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(all))
	}
	for i, section := range all {
		if section.OrderIndex != i {
			t.Fatalf("expected contiguous order, got %d at %d", section.OrderIndex, i)
		}
	}
	if st.SelectedSectionID != all[1].ID {
		t.Fatal("adding selects the new section")
	}
	if !st.IsDirty {
		t.Fatal("adding dirties the document")
	}
}

func TestAddSectionByTypeAtPosition(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeHero, sections.TypeRSVP)

	position := 1
	st, err := r.Apply(st, AddSectionByType{
		PageID:      st.ActivePageID,
		SectionType: sections.TypeStory,
		Position:    &position,
	})
	if err != nil {
		t.Fatalf("insert story at 1: %v", err)
	}

	all := ActiveSections(st)
	if all[1].Type != sections.TypeStory {
		t.Fatalf("expected story at index 1, got %q", all[1].Type)
	}
	for i, section := range all {
		if section.OrderIndex != i {
			t.Fatalf("expected renumbered order, got %d at %d", section.OrderIndex, i)
		}
	}
}

func TestAddSectionByTypeUnknownTypeFails(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r)

	_, err := r.Apply(st, AddSectionByType{PageID: st.ActivePageID, SectionType: "carousel"})
	if !errors.Is(err, sections.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestAddSectionStalePageIsNoOp(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r)

	next, err := r.Apply(st, AddSectionByType{PageID: "bld_gone", SectionType: sections.TypeStory})
	if err != nil {
		t.Fatalf("stale page dispatch: %v", err)
	}
	if next.IsDirty {
		t.Fatal("stale page reference must be a silent no-op")
	}
	if len(ActiveSections(next)) != 0 {
		t.Fatal("no section may be added to a missing page")
	}
}

func TestRemoveSection(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory, sections.TypeFAQ)

	ids := sectionIDs(st)
	st, err := r.Apply(st, SelectSection{SectionID: ids[0]})
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	st, err = r.Apply(st, RemoveSection{PageID: st.ActivePageID, SectionID: ids[0]})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	remaining := ActiveSections(st)
	if len(remaining) != 1 || remaining[0].ID != ids[1] {
		t.Fatal("expected only the second section to remain")
	}
	if st.SelectedSectionID != "" {
		t.Fatal("removing the selected section clears selection")
	}
}

func TestRemoveSectionGuards(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeHero, sections.TypeStory)
	ids := sectionIDs(st)

	// hero is non-deletable
	next, err := r.Apply(st, RemoveSection{PageID: st.ActivePageID, SectionID: ids[0]})
	if err != nil {
		t.Fatalf("remove hero: %v", err)
	}
	if len(ActiveSections(next)) != 2 {
		t.Fatal("non-deletable sections must survive removal")
	}

	locked := true
	st, err = r.Apply(st, UpdateSection{PageID: st.ActivePageID, SectionID: ids[1], Patch: SectionPatch{Locked: &locked}})
	if err != nil {
		t.Fatalf("lock story: %v", err)
	}
	next, err = r.Apply(st, RemoveSection{PageID: st.ActivePageID, SectionID: ids[1]})
	if err != nil {
		t.Fatalf("remove locked: %v", err)
	}
	if len(ActiveSections(next)) != 2 {
		t.Fatal("locked sections must survive removal")
	}

	// stale id
	next, err = r.Apply(st, RemoveSection{PageID: st.ActivePageID, SectionID: "sec_gone"})
	if err != nil {
		t.Fatalf("remove stale: %v", err)
	}
	if len(ActiveSections(next)) != 2 {
		t.Fatal("stale section id must be a silent no-op")
	}
}

func TestDuplicateSection(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory, sections.TypeFAQ)
	ids := sectionIDs(st)

	st, err := r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: ids[0],
		Patch:     SectionPatch{Settings: map[string]any{"storyText": "How we met"}},
	})
	if err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	st, err = r.Apply(st, DuplicateSection{PageID: st.ActivePageID, SectionID: ids[0]})
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	all := ActiveSections(st)
	if len(all) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(all))
	}
	clone := all[1]
	if clone.ID == ids[0] {
		t.Fatal("duplicate must mint a fresh id")
	}
	if clone.Type != sections.TypeStory {
		t.Fatalf("duplicate must keep the type, got %q", clone.Type)
	}
	if clone.Settings["storyText"] != "How we met" {
		t.Fatal("duplicate must copy settings")
	}
	if st.SelectedSectionID != clone.ID {
		t.Fatal("duplicating selects the clone")
	}

	// deep isolation between source and clone
	st, err = r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: clone.ID,
		Patch:     SectionPatch{Settings: map[string]any{"storyText": "Changed"}},
	})
	if err != nil {
		t.Fatalf("edit clone: %v", err)
	}
	source := ActivePage(st).FindSection(ids[0])
	if source.Settings["storyText"] != "How we met" {
		t.Fatal("editing the clone must not touch the source")
	}
}

func TestReorderSectionsPermutation(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeHero, sections.TypeStory, sections.TypeFAQ)
	ids := sectionIDs(st)

	st, err := r.Apply(st, ReorderSections{
		PageID:     st.ActivePageID,
		OrderedIDs: []string{ids[2], ids[0], ids[1]},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	got := sectionIDs(st)
	want := []string{ids[2], ids[0], ids[1]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	for i, section := range ActiveSections(st) {
		if section.OrderIndex != i {
			t.Fatalf("expected contiguous order indexes after reorder")
		}
	}
}

func TestReorderSectionsReconcilesPartialInput(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeHero, sections.TypeStory, sections.TypeFAQ)
	ids := sectionIDs(st) // [A, B, C]

	st, err := r.Apply(st, ReorderSections{
		PageID:     st.ActivePageID,
		OrderedIDs: []string{ids[2], ids[0]}, // [C, A]: B missing
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	got := sectionIDs(st)
	want := []string{ids[2], ids[1], ids[0]} // B retained at its prior index
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestReorderSectionsDropsUnknownAndDuplicateIDs(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeHero, sections.TypeStory)
	ids := sectionIDs(st)

	st, err := r.Apply(st, ReorderSections{
		PageID:     st.ActivePageID,
		OrderedIDs: []string{ids[1], "sec_gone", ids[1], ids[0]},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	got := sectionIDs(st)
	if len(got) != 2 || got[0] != ids[1] || got[1] != ids[0] {
		t.Fatalf("expected [%s %s], got %v", ids[1], ids[0], got)
	}
}

func TestUpdateSectionMergesPatch(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeVenue)
	id := sectionIDs(st)[0]

	st, err := r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: id,
		Patch: SectionPatch{
			Settings: map[string]any{"title": "Reception"},
			Bindings: &sections.Bindings{VenueIDs: []string{"ven_1"}},
		},
	})
	if err != nil {
		t.Fatalf("first update: %v", err)
	}

	variant := "card"
	st, err = r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: id,
		Patch: SectionPatch{
			Variant:  &variant,
			Settings: map[string]any{"showMap": false},
		},
	})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	section := ActivePage(st).FindSection(id)
	if section.Variant != "card" {
		t.Fatalf("expected variant card, got %q", section.Variant)
	}
	if section.Settings["title"] != "Reception" {
		t.Fatal("patch must merge settings, not replace them")
	}
	if section.Settings["showMap"] != false {
		t.Fatal("patched settings key must overwrite")
	}
	if len(section.Bindings.VenueIDs) != 1 || section.Bindings.VenueIDs[0] != "ven_1" {
		t.Fatal("bindings from the earlier patch must survive")
	}
	if section.Meta.UpdatedAtISO == section.Meta.CreatedAtISO {
		t.Fatal("updates must refresh the update timestamp")
	}
}

func TestUpdateSectionMergesStyleOverrides(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory)
	id := sectionIDs(st)[0]

	st, err := r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: id,
		Patch: SectionPatch{
			StyleOverrides: &sections.StyleOverrides{
				BackgroundColor: "#f6efe9",
				PaddingTop:      "4rem",
			},
		},
	})
	if err != nil {
		t.Fatalf("first patch: %v", err)
	}

	st, err = r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: id,
		Patch: SectionPatch{
			StyleOverrides: &sections.StyleOverrides{TextColor: "#2f2a26"},
		},
	})
	if err != nil {
		t.Fatalf("second patch: %v", err)
	}

	got := ActivePage(st).FindSection(id).StyleOverrides
	if got.BackgroundColor != "#f6efe9" || got.PaddingTop != "4rem" {
		t.Fatalf("later patches must not clear earlier overrides, got %+v", got)
	}
	if got.TextColor != "#2f2a26" {
		t.Fatalf("patched fields must overwrite, got %+v", got)
	}
}

func TestUpdateSectionRejectsUnsupportedVariant(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeVenue)
	id := sectionIDs(st)[0]

	variant := "sidebar"
	_, err := r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: id,
		Patch:     SectionPatch{Variant: &variant},
	})
	var unsupported *sections.VariantUnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected VariantUnsupportedError, got %v", err)
	}
}

func TestUpdateSectionLockedStillEditable(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory)
	id := sectionIDs(st)[0]

	locked := true
	st, err := r.Apply(st, UpdateSection{PageID: st.ActivePageID, SectionID: id, Patch: SectionPatch{Locked: &locked}})
	if err != nil {
		t.Fatalf("lock: %v", err)
	}

	st, err = r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: id,
		Patch:     SectionPatch{Settings: map[string]any{"title": "Still editable"}},
	})
	if err != nil {
		t.Fatalf("edit locked: %v", err)
	}
	if ActivePage(st).FindSection(id).Settings["title"] != "Still editable" {
		t.Fatal("locking gates structure, not content edits")
	}
}

func TestToggleSectionVisibilityRoundTrip(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory)
	id := sectionIDs(st)[0]

	st, err := r.Apply(st, ToggleSectionVisibility{PageID: st.ActivePageID, SectionID: id})
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if ActivePage(st).FindSection(id).Enabled {
		t.Fatal("expected section disabled after toggle")
	}
	if len(EnabledSections(st)) != 0 {
		t.Fatal("disabled sections must not appear in the enabled selector")
	}

	st, err = r.Apply(st, ToggleSectionVisibility{PageID: st.ActivePageID, SectionID: id})
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !ActivePage(st).FindSection(id).Enabled {
		t.Fatal("double toggle must restore the original value")
	}
}

func TestViewActionsDoNotDirty(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory)
	st.IsDirty = false
	id := sectionIDs(st)[0]

	msgs := []interface {
		Type() string
		Validate() error
	}{
		SelectSection{SectionID: id},
		HoverSection{SectionID: id},
		SetMode{Mode: ModePreview},
		SetPreviewViewport{Viewport: ViewportMobile},
		OpenTemplateGallery{},
		CloseTemplateGallery{},
		OpenMediaLibrary{TargetSectionID: id},
		CloseMediaLibrary{},
		OpenThemePanel{},
		CloseThemePanel{},
	}
	for _, msg := range msgs {
		var err error
		st, err = r.Apply(st, msg)
		if err != nil {
			t.Fatalf("%s: %v", msg.Type(), err)
		}
		if st.IsDirty {
			t.Fatalf("%s must not dirty the document", msg.Type())
		}
	}
}

func TestPreviewModeClearsSelection(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory)

	st, err := r.Apply(st, SetMode{Mode: ModePreview})
	if err != nil {
		t.Fatalf("set preview: %v", err)
	}
	if st.SelectedSectionID != "" || st.HoveredSectionID != "" {
		t.Fatal("entering preview clears selection and hover")
	}
	if !IsPreviewMode(st) {
		t.Fatal("expected preview mode")
	}
}

func TestApplyTemplateMergesExistingSections(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeHero, sections.TypeRSVP, sections.TypeStory)

	all := ActiveSections(st)
	heroID, rsvpID, storyID := all[0].ID, all[1].ID, all[2].ID

	// Customize the hero so the merge has content worth preserving.
	st, err := r.Apply(st, UpdateSection{
		PageID:    st.ActivePageID,
		SectionID: heroID,
		Patch: SectionPatch{
			Settings:       map[string]any{"title": "Em & Jay"},
			StyleOverrides: &sections.StyleOverrides{BackgroundColor: "#f6efe9"},
		},
	})
	if err != nil {
		t.Fatalf("customize hero: %v", err)
	}

	incoming := make([]*sections.Instance, 0, 2)
	for i, slot := range []struct {
		sectionType sections.Type
		variant     string
	}{
		{sections.TypeHero, "fullbleed"},
		{sections.TypeGallery, "masonry"},
	} {
		instance, err := sections.NewInstance(r.Registry(), slot.sectionType, slot.variant, i)
		if err != nil {
			t.Fatalf("build slot %d: %v", i, err)
		}
		incoming = append(incoming, instance)
	}

	st, err = r.Apply(st, ApplyTemplate{TemplateID: "modern-luxe", Sections: incoming})
	if err != nil {
		t.Fatalf("apply template: %v", err)
	}

	merged := ActiveSections(st)
	if len(merged) != 3 {
		t.Fatalf("expected hero+gallery+rsvp, got %d sections", len(merged))
	}

	hero := merged[0]
	if hero.ID != heroID {
		t.Fatal("same-type sections must keep their identity across a merge")
	}
	if hero.Variant != "fullbleed" {
		t.Fatalf("merged sections adopt the incoming variant, got %q", hero.Variant)
	}
	if got := hero.Settings["title"]; got != "Em & Jay" {
		t.Fatalf("merged sections keep their settings, got %v", got)
	}
	if hero.StyleOverrides.BackgroundColor != "#f6efe9" {
		t.Fatal("merged sections keep their style overrides")
	}

	if merged[1].Type != sections.TypeGallery || merged[1].ID == "" {
		t.Fatalf("new composition types get fresh sections, got %+v", merged[1])
	}

	rsvp := merged[2]
	if rsvp.ID != rsvpID {
		t.Fatal("non-deletable sections absent from the composition survive at the tail")
	}

	for _, section := range merged {
		if section.ID == storyID {
			t.Fatal("deletable types absent from the composition must be dropped")
		}
	}
	for i, section := range merged {
		if section.OrderIndex != i {
			t.Fatalf("merge must renumber contiguously, got %d at %d", section.OrderIndex, i)
		}
	}
	if st.Project.TemplateID != "modern-luxe" {
		t.Fatalf("expected template id on the document, got %q", st.Project.TemplateID)
	}
}

func TestApplyThemeMergesTokens(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r)

	st, err := r.Apply(st, ApplyTheme{ThemeID: "mono", Tokens: map[string]any{"accent": "#111"}})
	if err != nil {
		t.Fatalf("apply theme: %v", err)
	}
	st, err = r.Apply(st, ApplyTheme{ThemeID: "mono", Tokens: map[string]any{"radius": "4px"}})
	if err != nil {
		t.Fatalf("apply theme tokens: %v", err)
	}

	if st.Project.ThemeID != "mono" {
		t.Fatalf("expected theme mono, got %q", st.Project.ThemeID)
	}
	if st.Project.ThemeTokens["accent"] != "#111" || st.Project.ThemeTokens["radius"] != "4px" {
		t.Fatal("theme tokens must merge across applies")
	}
	if !st.IsDirty {
		t.Fatal("theme change dirties the document")
	}
}

func TestMarkSavedAndPublished(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r, sections.TypeStory)

	st, err := r.Apply(st, MarkSaved{SavedAtISO: "2026-08-31T12:00:00Z"})
	if err != nil {
		t.Fatalf("mark saved: %v", err)
	}
	if st.IsDirty || st.LastSavedAtISO != "2026-08-31T12:00:00Z" {
		t.Fatal("mark saved clears dirty and records the timestamp")
	}

	st, err = r.Apply(st, MarkPublished{Version: 3, PublishedAtISO: "2026-08-31T12:05:00Z"})
	if err != nil {
		t.Fatalf("mark published: %v", err)
	}
	if st.Project.PublishedVersion == nil || *st.Project.PublishedVersion != 3 {
		t.Fatal("mark published records the live version")
	}
	if st.Project.PublishStatus != project.StatusPublished {
		t.Fatalf("expected published status, got %q", st.Project.PublishStatus)
	}
}

func TestUnknownActionFails(t *testing.T) {
	r := newTestReducer()
	st := loadedState(t, r)

	_, err := r.Apply(st, fakeMessage{})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

type fakeMessage struct{}

func (fakeMessage) Type() string    { return "builder.fake" }
func (fakeMessage) Validate() error { return nil }
