// Package errors provides custom error types for the redlist client.
// These errors enable programmatic error checking with errors.Is and errors.As
// and carry enough context to produce useful CLI messages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As forward to the standard library so callers need a single import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the redlist client
var (
	// ErrUnknownEndpoint indicates that an endpoint name is not in the catalog
	ErrUnknownEndpoint = errors.New("unknown endpoint")

	// ErrMissingParameter indicates that a required path or query parameter was not supplied
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrRequestFailed indicates that an API request failed after the retry policy was applied
	ErrRequestFailed = errors.New("request failed")

	// ErrConfigFile indicates that a config file could not be read or parsed
	ErrConfigFile = errors.New("config file error")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates that the API rejected the credential
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrServiceUnavailable indicates that the API answered with a server error
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// UnknownEndpointError is returned when an endpoint name is not in the catalog.
type UnknownEndpointError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("unknown endpoint: %s", e.Name)
}

// Is implements errors.Is support
func (e *UnknownEndpointError) Is(target error) bool {
	return target == ErrUnknownEndpoint
}

// NewUnknownEndpointError creates a new UnknownEndpointError
func NewUnknownEndpointError(name string) *UnknownEndpointError {
	return &UnknownEndpointError{Name: name}
}

// MissingPathParameterError reports the first path parameter, in catalog order,
// that the caller did not supply.
type MissingPathParameterError struct {
	Endpoint string
	Name     string
}

// Error implements the error interface
func (e *MissingPathParameterError) Error() string {
	return fmt.Sprintf("missing required path parameter: %s", e.Name)
}

// Is implements errors.Is support
func (e *MissingPathParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// NewMissingPathParameterError creates a new MissingPathParameterError
func NewMissingPathParameterError(endpoint, name string) *MissingPathParameterError {
	return &MissingPathParameterError{Endpoint: endpoint, Name: name}
}

// MissingQueryParameterError reports the first required query parameter, in
// catalog order, that the caller did not supply.
type MissingQueryParameterError struct {
	Endpoint string
	Name     string
}

// Error implements the error interface
func (e *MissingQueryParameterError) Error() string {
	return fmt.Sprintf("missing required query parameter: %s", e.Name)
}

// Is implements errors.Is support
func (e *MissingQueryParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// NewMissingQueryParameterError creates a new MissingQueryParameterError
func NewMissingQueryParameterError(endpoint, name string) *MissingQueryParameterError {
	return &MissingQueryParameterError{Endpoint: endpoint, Name: name}
}

// RequestFailedError wraps a terminal transport failure: an error status after
// retries were exhausted, a network error, a timeout, or an undecodable body.
type RequestFailedError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Timeout    bool
	Err        error
}

// Error implements the error interface
func (e *RequestFailedError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("request failed: %s %s (status %d): %s", e.Method, e.URL, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("request failed: %s %s (status %d)", e.Method, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("request failed: %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("request failed: %s %s: %s", e.Method, e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RequestFailedError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrTimeout:
		return e.Timeout
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrServiceUnavailable:
		return e.StatusCode >= 500
	}
	return false
}

// ConfigFileError represents an unreadable or malformed config file
type ConfigFileError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("config file %s: %s", e.Path, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigFileError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigFileError) Is(target error) bool {
	return target == ErrConfigFile
}

// NewConfigFileError creates a new ConfigFileError
func NewConfigFileError(path string, err error) *ConfigFileError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ConfigFileError{Path: path, Message: message, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "csv", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "load", "resolve"
	Resource  string // "client", "catalog", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsUnknownEndpoint checks if an error is an unknown endpoint error
func IsUnknownEndpoint(err error) bool {
	return errors.Is(err, ErrUnknownEndpoint)
}

// IsMissingParameter checks if an error reports a missing path or query parameter
func IsMissingParameter(err error) bool {
	return errors.Is(err, ErrMissingParameter)
}

// IsRequestFailed checks if an error is a terminal request failure
func IsRequestFailed(err error) bool {
	return errors.Is(err, ErrRequestFailed)
}

// IsConfigFileError checks if an error came from reading a config file
func IsConfigFileError(err error) bool {
	return errors.Is(err, ErrConfigFile)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
