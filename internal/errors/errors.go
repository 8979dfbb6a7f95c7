package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an application error. Handlers branch on the kind, never on messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindStoreUnavailable:
		return "store_unavailable"
	default:
		return "internal"
	}
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the tagged error returned by services and repositories.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a validation error carrying per-field problems.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Données invalides", Fields: fields}
}

// Unauthorized returns an authentication error. The message is shown to the caller as is.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound returns a not-found error for the named resource.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// StoreUnavailable wraps a failure to reach or initialize the primary store.
func StoreUnavailable(err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: "store unavailable", Err: err}
}

// Internal wraps an unexpected failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf returns the kind of err, KindInternal for untagged errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return NewHTTPError(http.StatusInternalServerError, "Erreur interne du serveur", "INTERNAL_ERROR")
	}

	switch appErr.Kind {
	case KindValidation:
		httpErr := NewHTTPError(http.StatusBadRequest, appErr.Message, "VALIDATION_ERROR")
		httpErr.Fields = appErr.Fields
		return httpErr
	case KindUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, appErr.Message, "UNAUTHORIZED")
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, appErr.Message, "NOT_FOUND")
	case KindStoreUnavailable:
		return NewHTTPError(http.StatusInternalServerError, "Base de données indisponible", "STORE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Erreur interne du serveur", "INTERNAL_ERROR")
	}
}
