package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found. Expired and
// superseded build tokens surface as NotFound: a token past its expiry or
// consumed by a promotion must behave identically to one that never existed.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidStateError represents an operation attempted against a record not in
// the required state, e.g. updating a build that is already shared.
type InvalidStateError struct {
	Entity string
	State  string
}

func (e *InvalidStateError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("%s is in state %s and cannot be modified", e.Entity, e.State)
	}
	return fmt.Sprintf("%s is not in a valid state for this operation", e.Entity)
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// TransportError represents a failure of an underlying asset or persistence
// call for networking or authorization reasons.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrBuildNotFound       = &NotFoundError{Entity: "build"}
	ErrCatalogItemNotFound = &NotFoundError{Entity: "catalog item"}
	ErrAssetNotFound       = &NotFoundError{Entity: "asset"}
)

// Invalid State Errors
var (
	ErrBuildAlreadyShared = &InvalidStateError{Entity: "build", State: "shared"}
)

// Business Logic Errors
var (
	ErrInvalidGearCategory     = errors.New("invalid gear category")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidAuthToken  = &AuthenticationError{Message: "invalid authentication token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var invalidStateErr *InvalidStateError
	return errors.As(err, &invalidStateErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, state string) error {
	return &InvalidStateError{Entity: entity, State: state}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTransportError wraps an underlying transport failure
func NewTransportError(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}
