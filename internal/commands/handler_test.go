package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	invalid bool
}

func (testMessage) Type() string { return "builder.test.message" }

func (m testMessage) Validate() error {
	if m.invalid {
		return errors.New("message invalid")
	}
	return nil
}

func TestHandlerExecutesWrappedFunction(t *testing.T) {
	called := false
	handler := NewHandler[testMessage](func(context.Context, testMessage) error {
		called = true
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !called {
		t.Fatal("expected the wrapped function to run")
	}
}

func TestHandlerValidatesBeforeExecuting(t *testing.T) {
	handler := NewHandler[testMessage](func(context.Context, testMessage) error {
		t.Fatal("invalid messages must not execute")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{invalid: true})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerWrapsExecutionErrors(t *testing.T) {
	boom := errors.New("boom")
	handler := NewHandler[testMessage](func(context.Context, testMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonoursCancelledContext(t *testing.T) {
	handler := NewHandler[testMessage](func(context.Context, testMessage) error {
		t.Fatal("cancelled contexts must not execute")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := handler.Execute(ctx, testMessage{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestHandlerTimeoutReachesFunction(t *testing.T) {
	handler := NewHandler[testMessage](func(ctx context.Context, _ testMessage) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected a deadline on the execution context")
		}
		return nil
	}, WithTimeout[testMessage](50*time.Millisecond))

	if err := handler.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

func TestHandlerNilContext(t *testing.T) {
	handler := NewHandler[testMessage](func(ctx context.Context, _ testMessage) error {
		if ctx == nil {
			t.Fatal("handler must supply a context")
		}
		return nil
	})

	if err := handler.Execute(nil, testMessage{}); err != nil { //nolint:staticcheck
		t.Fatalf("execute: %v", err)
	}
}
