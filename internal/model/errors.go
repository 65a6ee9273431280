package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredential means no API key is configured. It is the only
	// error that ends a run.
	ErrMissingCredential = errors.New("missing API credential")

	// ErrInvalidInput marks bad enum values and empty job descriptions.
	ErrInvalidInput = errors.New("invalid input")
)

// ExternalCallError wraps a failed call to the model API (network, timeout,
// non-2xx, empty answer).
type ExternalCallError struct {
	Op  string
	Err error
}

func (e *ExternalCallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

// ParseError is returned when model output cannot be turned into the expected shape.
type ParseError struct {
	Raw     string   // model output, truncated
	Missing []string // required fields that were absent
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case len(e.Missing) > 0:
		return fmt.Sprintf("parse model response: missing fields %s", strings.Join(e.Missing, ", "))
	case e.Err != nil:
		return fmt.Sprintf("parse model response: %v", e.Err)
	default:
		return "parse model response"
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
