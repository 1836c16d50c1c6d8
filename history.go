package builder

import (
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
	"github.com/google/uuid"
)

// DefaultHistoryDepth caps how many document snapshots the history retains.
// The oldest entry is evicted once the cap is reached, so very old edits
// become unreachable rather than the log growing without bound.
const DefaultHistoryDepth = 50

// HistoryEntry is one recorded document state plus the label panels show in
// undo menus. The snapshot is private: history hands out clones, never the
// stored document.
type HistoryEntry struct {
	ID           string
	Label        string
	TimestampISO string

	snapshot *project.Project
}

// History is a linear undo log: a bounded slice of snapshots plus a cursor
// pointing at the current one. Recording while undone truncates the redo
// tail; there is no branching.
type History struct {
	entries  []HistoryEntry
	cursor   int
	maxDepth int
}

// NewHistory constructs an empty history. A non-positive depth falls back
// to DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{cursor: -1, maxDepth: depth}
}

// Reset drops all entries and records the given document as the initial
// snapshot, so undoing every subsequent edit returns to it.
func (h *History) Reset(doc *project.Project) {
	h.entries = h.entries[:0]
	h.cursor = -1
	if doc != nil {
		h.Record("Load project", doc)
	}
}

// Record appends a snapshot of doc after discarding any redo tail. The
// stored copy is a deep clone; later mutations of doc do not rewrite
// history.
func (h *History) Record(label string, doc *project.Project) {
	if doc == nil {
		return
	}
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, HistoryEntry{
		ID:           uuid.NewString(),
		Label:        label,
		TimestampISO: sections.NowISO(),
		snapshot:     doc.Clone(),
	})
	if len(h.entries) > h.maxDepth {
		overflow := len(h.entries) - h.maxDepth
		h.entries = append(h.entries[:0], h.entries[overflow:]...)
	}
	h.cursor = len(h.entries) - 1
}

// CanUndo reports whether a step back exists.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a previously undone step can be reapplied.
func (h *History) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

// Undo steps the cursor back and returns a clone of that snapshot. It
// returns nil when already at the initial entry.
func (h *History) Undo() *project.Project {
	if !h.CanUndo() {
		return nil
	}
	h.cursor--
	return h.entries[h.cursor].snapshot.Clone()
}

// Redo steps the cursor forward and returns a clone of that snapshot, or
// nil when there is nothing to redo.
func (h *History) Redo() *project.Project {
	if !h.CanRedo() {
		return nil
	}
	h.cursor++
	return h.entries[h.cursor].snapshot.Clone()
}

// UndoLabel returns the label of the entry Undo would leave behind, for
// "Undo <label>" affordances. Empty when undo is unavailable.
func (h *History) UndoLabel() string {
	if !h.CanUndo() {
		return ""
	}
	return h.entries[h.cursor].Label
}

// RedoLabel returns the label of the entry Redo would restore. Empty when
// redo is unavailable.
func (h *History) RedoLabel() string {
	if !h.CanRedo() {
		return ""
	}
	return h.entries[h.cursor+1].Label
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}
