package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Category errors
	ErrCategoryNotFound = errors.New("category not found")

	// Competition errors
	ErrCompetitionNotFound = errors.New("competition not found")
)
