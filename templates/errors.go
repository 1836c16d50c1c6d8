package templates

import (
	"errors"
	"fmt"
)

var (
	ErrKeyRequired       = errors.New("templates: template key is required")
	ErrDefinitionInvalid = errors.New("templates: definition is invalid")
	ErrTemplateNotFound  = errors.New("templates: template not found")
)

// NotFoundError reports a lookup for an unregistered template key.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("templates: template %q not found", e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}
