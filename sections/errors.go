package sections

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTypeRequired       = errors.New("sections: section type is required")
	ErrUnknownType        = errors.New("sections: unknown section type")
	ErrVariantUnsupported = errors.New("sections: variant not supported by section type")
	ErrManifestInvalid    = errors.New("sections: manifest is invalid")
)

// UnknownTypeError reports a lookup for a section type that was never registered.
// This is a programming error (catalog bug), not recoverable user input.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	if e == nil {
		return ErrUnknownType.Error()
	}
	return fmt.Sprintf("%s: %s", ErrUnknownType.Error(), e.Type)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// VariantUnsupportedError reports an attempt to assign a variant outside the
// manifest's supported set.
type VariantUnsupportedError struct {
	Type    Type
	Variant string
}

func (e *VariantUnsupportedError) Error() string {
	if e == nil {
		return ErrVariantUnsupported.Error()
	}
	variant := strings.TrimSpace(e.Variant)
	if variant == "" {
		return fmt.Sprintf("%s: type=%s", ErrVariantUnsupported.Error(), e.Type)
	}
	return fmt.Sprintf("%s: type=%s variant=%s", ErrVariantUnsupported.Error(), e.Type, variant)
}

func (e *VariantUnsupportedError) Unwrap() error {
	return ErrVariantUnsupported
}
