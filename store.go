package builder

import (
	"context"
	"sync"

	"github.com/goliatone/go-builder/internal/logging"
	"github.com/goliatone/go-builder/pkg/interfaces"
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
	command "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"
)

const (
	actionValidationCode = "BUILDER_ACTION_VALIDATION_FAILED"
	actionApplyCode      = "BUILDER_ACTION_FAILED"
)

// Saver persists the draft document. The store invokes it after document
// mutations; view-state changes never trigger a save.
type Saver interface {
	Save(ctx context.Context, p *project.Project) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, p *project.Project) error

// Save satisfies Saver.
func (f SaverFunc) Save(ctx context.Context, p *project.Project) error {
	return f(ctx, p)
}

// Subscriber receives the state after every accepted dispatch, undo, and
// redo. Subscribers must treat the state as read-only.
type Subscriber func(State)

// Store owns the builder state. All mutation funnels through Dispatch,
// which serializes concurrent callers, so panels never observe a
// half-applied action. History records document snapshots; view-state
// actions pass through unrecorded.
type Store struct {
	mu          sync.Mutex
	state       State
	reducer     *Reducer
	history     *History
	logger      interfaces.Logger
	saver       Saver
	subscribers map[int]Subscriber
	nextSubID   int
}

// StoreOption configures a Store instance.
type StoreOption func(*Store)

// WithRegistry overrides the manifest registry. Defaults to the built-in
// catalog.
func WithRegistry(registry *sections.Registry) StoreOption {
	return func(s *Store) {
		if registry != nil {
			s.reducer = NewReducer(registry)
		}
	}
}

// WithStoreLogger injects the logger used for dispatch tracing. Defaults to
// a no-op logger.
func WithStoreLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSaver wires the persistence collaborator invoked after document
// mutations. Save failures surface through the state error field, never as
// dispatch errors.
func WithSaver(saver Saver) StoreOption {
	return func(s *Store) {
		s.saver = saver
	}
}

// WithHistoryDepth overrides the undo depth cap.
func WithHistoryDepth(depth int) StoreOption {
	return func(s *Store) {
		s.history = NewHistory(depth)
	}
}

// NewStore constructs a store with the initial pre-load state.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state:       NewState(),
		reducer:     NewReducer(nil),
		history:     NewHistory(DefaultHistoryDepth),
		logger:      logging.NoOp(),
		subscribers: make(map[int]Subscriber),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state. The document it references is
// copy-on-write; readers must not mutate it.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Registry exposes the manifest registry dispatches validate against.
func (s *Store) Registry() *sections.Registry {
	return s.reducer.Registry()
}

// Dispatch validates and applies one action. Malformed payloads and catalog
// misuse return categorized errors and leave the state untouched; stale
// references inside well-formed actions are silent no-ops by design.
func (s *Store) Dispatch(ctx context.Context, msg command.Message) error {
	if err := command.ValidateMessage(msg); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "action validation failed").
			WithTextCode(actionValidationCode)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "dispatch context error").
			WithTextCode(actionApplyCode)
	}

	s.mu.Lock()
	next, err := s.reducer.Apply(s.state, msg)
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("builder.dispatch.failed", "action", msg.Type(), "error", err)
		return goerrors.Wrap(err, goerrors.CategoryCommand, "action failed").
			WithTextCode(actionApplyCode)
	}

	// Document mutations always clone the project, so a changed pointer is
	// the reliable "something actually happened" signal. A document action
	// the reducer no-opped (stale id, zero patch) must not enter history or
	// trigger a save.
	mutated := next.Project != nil && next.Project != s.state.Project

	if _, ok := msg.(LoadProject); ok {
		s.history.Reset(next.Project)
	} else if doc, ok := msg.(documentAction); ok && mutated {
		s.history.Record(doc.historyLabel(), next.Project)
	}

	s.state = next
	subscribers := s.snapshotSubscribers()
	var saveDoc *project.Project
	if mutated {
		saveDoc = s.pendingSave(msg)
	}
	s.mu.Unlock()

	s.logger.Debug("builder.dispatch", "action", msg.Type())
	for _, fn := range subscribers {
		fn(next)
	}
	if saveDoc != nil {
		go s.save(saveDoc)
	}
	return nil
}

// Undo restores the previous document snapshot. It reports whether a step
// was taken.
func (s *Store) Undo() bool {
	return s.restore((*History).Undo)
}

// Redo reapplies the next document snapshot. It reports whether a step was
// taken.
func (s *Store) Redo() bool {
	return s.restore((*History).Redo)
}

// CanUndo reports whether an undo step exists.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether a redo step exists.
func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// UndoLabel returns the label for the pending undo step, or empty.
func (s *Store) UndoLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.UndoLabel()
}

// RedoLabel returns the label for the pending redo step, or empty.
func (s *Store) RedoLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.RedoLabel()
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) restore(step func(*History) *project.Project) bool {
	s.mu.Lock()
	doc := step(s.history)
	if doc == nil {
		s.mu.Unlock()
		return false
	}

	next := s.state
	next.Project = doc
	next.IsDirty = true
	reconcileViewState(&next)

	s.state = next
	subscribers := s.snapshotSubscribers()
	saveDoc := doc.Clone()
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(next)
	}
	if s.saver != nil {
		go s.save(saveDoc)
	}
	return true
}

// reconcileViewState drops references that no longer resolve after a
// snapshot restore.
func reconcileViewState(st *State) {
	if st.Project == nil {
		st.ActivePageID = ""
		st.SelectedSectionID = ""
		st.HoveredSectionID = ""
		return
	}
	page := st.Project.FindPage(st.ActivePageID)
	if page == nil {
		for _, candidate := range st.Project.Pages {
			if candidate.Meta.IsHome {
				page = candidate
				break
			}
		}
		if page == nil && len(st.Project.Pages) > 0 {
			page = st.Project.Pages[0]
		}
		if page != nil {
			st.ActivePageID = page.ID
		} else {
			st.ActivePageID = ""
		}
	}
	if page.FindSection(st.SelectedSectionID) == nil {
		st.SelectedSectionID = ""
	}
	if page.FindSection(st.HoveredSectionID) == nil {
		st.HoveredSectionID = ""
	}
}

// pendingSave returns a document clone to persist when the dispatched
// action dirtied the document, or nil. Called with the lock held.
func (s *Store) pendingSave(msg command.Message) *project.Project {
	if s.saver == nil || !s.state.IsDirty || s.state.Project == nil {
		return nil
	}
	if _, ok := msg.(documentAction); !ok {
		return nil
	}
	return s.state.Project.Clone()
}

// save runs the persistence collaborator off the dispatch path. The
// outcome loops back in as a regular action so panels learn about it
// through the same channel as every other change.
func (s *Store) save(doc *project.Project) {
	ctx := context.Background()
	if err := s.saver.Save(ctx, doc); err != nil {
		s.logger.Error("builder.save.failed", "project_id", doc.ID, "error", err)
		_ = s.Dispatch(ctx, SetError{Message: "save failed: " + err.Error()})
		return
	}
	_ = s.Dispatch(ctx, MarkSaved{SavedAtISO: sections.NowISO()})
}

func (s *Store) snapshotSubscribers() []Subscriber {
	out := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		out = append(out, fn)
	}
	return out
}
