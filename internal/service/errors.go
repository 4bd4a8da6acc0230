package service

import (
	"errors"

	"github.com/kingrain94/dashboard-config-api/internal/repository"
)

var (
	// Preference errors
	ErrPreferenceNotFound = errors.New("preference not found")
	ErrDuplicateUser      = errors.New("preference already exists for user")

	// Dashboard errors
	ErrParentNotFound  = errors.New("dashboard not found")
	ErrInvalidGeometry = errors.New("invalid component geometry")

	ErrInvalidInput = errors.New("invalid input")
)

// ErrStoreUnavailable is the store's own sentinel; managers pass it through unchanged.
var ErrStoreUnavailable = repository.ErrStoreUnavailable
