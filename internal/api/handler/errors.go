package handler

import (
	"net/http"

	"github.com/marufsabili148/lombaku/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeUnauthorized        = apierr.CodeUnauthorized
	CodeNotOwner            = apierr.CodeNotOwner
	CodeUserNotFound        = apierr.CodeUserNotFound
	CodeCategoryNotFound    = apierr.CodeCategoryNotFound
	CodeCompetitionNotFound = apierr.CodeCompetitionNotFound
	CodeCommentNotFound     = apierr.CodeCommentNotFound
	CodeEmailExists         = apierr.CodeEmailExists
	CodeInvalidCredentials  = apierr.CodeInvalidCredentials
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewNotFoundError creates a not found error with a specific code
func NewNotFoundError(code, message string) error {
	return apierr.NewNotFoundError(code, message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
