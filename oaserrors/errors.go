package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrSpecLoad indicates a spec source could not be fetched, decoded, or recognized.
	ErrSpecLoad = errors.New("spec load error")

	// ErrUnknownModel indicates a model lookup failed.
	ErrUnknownModel = errors.New("unknown model")

	// ErrCyclicModelReference indicates a model reference chain loops back on itself.
	ErrCyclicModelReference = errors.New("cyclic model reference")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// SpecLoadError represents a failure to load a spec source.
// This includes network and file errors, YAML/JSON decoding errors, and
// documents that lack the minimal OpenAPI shape.
type SpecLoadError struct {
	// Source is the URL, file path, or input name that failed
	Source string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SpecLoadError) Error() string {
	msg := "spec load error"
	if e.Source != "" {
		msg += " for " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SpecLoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SpecLoadError) Is(target error) bool {
	return target == ErrSpecLoad
}

// UnknownModelError represents a model name (or the $ref naming it) that does
// not exist in the document's model section.
type UnknownModelError struct {
	// Model is the bare model name that was looked up
	Model string
	// Ref is the original reference string, when the lookup came from a $ref
	Ref string
}

// Error returns a human-readable error message.
func (e *UnknownModelError) Error() string {
	msg := "unknown model"
	if e.Model != "" {
		msg += ": " + e.Model
	}
	if e.Ref != "" && e.Ref != e.Model {
		msg += " (from " + e.Ref + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnknownModelError) Is(target error) bool {
	return target == ErrUnknownModel
}

// CyclicModelReferenceError represents a model that references itself,
// directly or through other models.
type CyclicModelReferenceError struct {
	// Chain lists the model names in resolution order; the last entry is the
	// model that was already being resolved
	Chain []string
}

// Error returns a human-readable error message.
func (e *CyclicModelReferenceError) Error() string {
	if len(e.Chain) == 0 {
		return "cyclic model reference"
	}
	return "cyclic model reference: " + strings.Join(e.Chain, " -> ")
}

// Is reports whether target matches this error type.
func (e *CyclicModelReferenceError) Is(target error) bool {
	return target == ErrCyclicModelReference
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
