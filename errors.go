package builder

import "errors"

var (
	// ErrUnknownAction reports a message outside the closed action set. The
	// reducer never guesses at unrecognized intents.
	ErrUnknownAction = errors.New("builder: unknown action")

	// ErrNoProject reports a document action dispatched before LoadProject.
	ErrNoProject = errors.New("builder: no project loaded")
)
