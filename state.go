package builder

import (
	"github.com/goliatone/go-builder/project"
)

// Mode is the builder's top-level editing mode.
type Mode string

const (
	ModeEdit    Mode = "edit"
	ModePreview Mode = "preview"
)

// Viewport selects the simulated device width in preview mode.
type Viewport string

const (
	ViewportDesktop Viewport = "desktop"
	ViewportTablet  Viewport = "tablet"
	ViewportMobile  Viewport = "mobile"
)

// State is the transient builder state: the loaded document plus the view
// state every panel derives from. It is constructed on builder mount,
// mutated exclusively through the command layer, and torn down on
// navigation away. It is never persisted.
//
// Panels must treat State as immutable: every dispatch produces a new value
// with structurally-shared unchanged parts, so readers always observe a
// fully-formed state, never a partially-mutated one.
type State struct {
	Project *project.Project

	ActivePageID      string
	SelectedSectionID string
	HoveredSectionID  string

	Mode            Mode
	PreviewViewport Viewport

	TemplateGalleryOpen        bool
	MediaLibraryOpen           bool
	ThemePanelOpen             bool
	MediaPickerTargetSectionID string

	IsDirty        bool
	LastSavedAtISO string
	Err            string
}

// NewState returns the initial state used on builder mount, before a
// project is loaded.
func NewState() State {
	return State{
		Mode:            ModeEdit,
		PreviewViewport: ViewportDesktop,
	}
}
