package llm

import (
	"errors"
	"fmt"
)

// CompletionError represents a provider or network failure on an LLM call.
// The client performs no retries; a single failed call propagates
// immediately to the caller.
type CompletionError struct {
	Operation string
	Model     string
	Err       error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed (operation %s, model %s): %v", e.Operation, e.Model, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// SchemaError indicates that model output could not be coerced into the
// requested structure.
type SchemaError struct {
	Schema string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model output does not fit schema %s: %v", e.Schema, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// IsSchemaError checks whether an error is a schema validation failure.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsCompletionError checks whether an error is a provider/network failure.
func IsCompletionError(err error) bool {
	var complErr *CompletionError
	return errors.As(err, &complErr)
}
