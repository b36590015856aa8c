package errors

import (
	"fmt"
)

// ParseError represents a YAML theme file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FetchKind classifies image fetch failures.
type FetchKind int

const (
	// FetchKindNetwork marks transient transport failures; callers may retry.
	FetchKindNetwork FetchKind = iota
	// FetchKindDecode marks payloads that are not a valid image. A fresh fetch
	// may still succeed if the remote content changes.
	FetchKindDecode
	// FetchKindCancelled marks an abandoned operation. Not a true failure and
	// must not be shown as an error state.
	FetchKindCancelled
)

func (k FetchKind) String() string {
	switch k {
	case FetchKindDecode:
		return "decode"
	case FetchKindCancelled:
		return "cancelled"
	default:
		return "network"
	}
}

// FetchError represents a failed image fetch for a locator.
type FetchError struct {
	Locator string
	Kind    FetchKind
	Err     error
}

// NewFetchError constructs a FetchError of the given kind.
func NewFetchError(locator string, kind FetchKind, err error) error {
	return &FetchError{Locator: locator, Kind: kind, Err: err}
}

func (e *FetchError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("fetch error (%s): %s: %v", e.Kind, e.Locator, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FetchError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
