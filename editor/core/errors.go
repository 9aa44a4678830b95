package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput         = errors.New("input not allowed: empty line")
	ErrUnknownPipeline    = errors.New("unknown graphics pipeline")
	ErrUnknownEnum        = errors.New("unknown enum name")
	ErrProtectedExtension = errors.New("default device extensions cannot be removed")
)

// MissingField names one required input left empty, e.g.
// "Graphics Pipeline 2: Fragment Shader File".
type MissingField struct {
	Pipeline string
	Field    string
}

func (m MissingField) String() string {
	if m.Pipeline == "" {
		return m.Field
	}
	return fmt.Sprintf("%s: %s", m.Pipeline, m.Field)
}

// ValidationError aggregates every missing input found in one validation pass.
type ValidationError struct {
	Missing []MissingField
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		lines = append(lines, m.String())
	}
	return "the following inputs were missing: " + strings.Join(lines, ", ")
}

// DuplicateError is returned when an add would introduce an entry equal to an
// existing one. Kind is "pipeline" or "extension".
type DuplicateError struct {
	Kind string
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already present: %s", e.Kind, e.Key)
}

// ParseError reports a malformed value for a typed field.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid value %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError wraps a failed open, read, write or close of a project artifact.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
