package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document_schema.json
var documentSchemaSource []byte

// ErrDocumentInvalid is the sentinel every document validation failure
// unwraps to.
var ErrDocumentInvalid = errors.New("schema: document validation failed")

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// DocumentValidationError surfaces every issue found in one pass.
type DocumentValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *DocumentValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

var (
	compileOnce    sync.Once
	documentSchema *jsonschema.Schema
	compileErr     error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("project-document.json", bytes.NewReader(documentSchemaSource)); err != nil {
			compileErr = err
			return
		}
		documentSchema, compileErr = compiler.Compile("project-document.json")
	})
	return documentSchema, compileErr
}

// ValidateDocument checks a serialized project document against the
// persisted document schema. It runs before every save so malformed
// documents never reach storage.
func ValidateDocument(document []byte) error {
	compiled, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("schema: compile document schema: %w", err)
	}

	var payload any
	if err := json.Unmarshal(document, &payload); err != nil {
		return &DocumentValidationError{
			Issues: []ValidationIssue{{Message: "document is not valid JSON"}},
			Cause:  err,
		}
	}

	if err := compiled.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &DocumentValidationError{
				Issues: collectIssues(validationErr),
				Cause:  err,
			}
		}
		return &DocumentValidationError{Cause: err}
	}
	return nil
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var docErr *DocumentValidationError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	return []ValidationIssue{{Message: err.Error()}}
}

func collectIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
