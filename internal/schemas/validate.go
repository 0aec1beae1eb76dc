// Package schemas provides JSON Schema validation for the engine's
// file-backed configuration artifacts.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolvePath finds a schema file by trying the path relative to the working
// directory and up to two parent directories. CLI commands and tests run from
// different directories; this keeps both working. Returns "" when nothing is
// found.
func ResolvePath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// LoadError represents a failure loading or parsing the schema itself
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// FieldError represents a single validation failure at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation failures with field paths
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateFile validates a JSON document file against a JSON Schema file.
func ValidateFile(schemaPath, documentPath string) error {
	schemaAbs, err := filepath.Abs(schemaPath)
	if err != nil {
		return &LoadError{Path: schemaPath, Message: "cannot resolve path", Cause: err}
	}
	documentAbs, err := filepath.Abs(documentPath)
	if err != nil {
		return &LoadError{Path: documentPath, Message: "cannot resolve path", Cause: err}
	}
	if _, err := os.Stat(schemaAbs); os.IsNotExist(err) {
		return &LoadError{Path: schemaAbs, Message: "schema file not found"}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbs)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + documentAbs)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Path: schemaAbs, Message: "validation could not run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
