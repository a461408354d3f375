package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marufsabili148/lombaku/internal/model"
	"github.com/marufsabili148/lombaku/internal/services/auth"
	"github.com/marufsabili148/lombaku/internal/services/directory"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotOwner            = "NOT_OWNER"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeCategoryNotFound    = "CATEGORY_NOT_FOUND"
	CodeCompetitionNotFound = "COMPETITION_NOT_FOUND"
	CodeCommentNotFound     = "COMMENT_NOT_FOUND"
	CodeEmailExists         = "EMAIL_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrCategoryNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCategoryNotFound, "Category not found"}}
	case errors.Is(err, model.ErrCompetitionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCompetitionNotFound, "Competition not found"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email is already registered"}}
	case errors.Is(err, auth.ErrNotSignedIn):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Sign in required"}}

	// Map directory errors
	case errors.Is(err, directory.ErrSignInRequired):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Sign in required"}}
	case errors.Is(err, directory.ErrNotOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotOwner, "Only the owner can perform this action"}}
	case errors.Is(err, directory.ErrCommentEmpty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Comment text is required"}}
	case errors.Is(err, directory.ErrCommentLength):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Comment must be between 3 and 500 characters"}}
	case errors.Is(err, directory.ErrTitleRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Title is required"}}
	case errors.Is(err, directory.ErrCategoryRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Category is required"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Sign in required"}}
}

// NewNotFoundError creates a not found error with a specific code
func NewNotFoundError(code, message string) error {
	return &httpError{http.StatusNotFound, APIError{code, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
