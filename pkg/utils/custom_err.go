package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoteNotFound       = errors.New("note not found")
	ErrDatabaseError      = errors.New("database error")

	ErrLLMTransport         = errors.New("llm request did not complete")
	ErrLLMUpstream          = errors.New("llm upstream error")
	ErrMalformedLLMResponse = errors.New("malformed llm response")
)

// ValidationError carries a field -> message mapping so controllers can
// return structured detail instead of a single message.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
