package models

import (
	"errors"
	"fmt"
)

// FailureCategory is the normalized taxonomy of collaborator failures. The
// registry recovers all of them; the category only reaches logs and metrics.
type FailureCategory string

const (
	// FailureDiscovery means the backend declaration source failed.
	FailureDiscovery FailureCategory = "discovery"

	// FailureProbe means one backend's diagnostics could not be computed.
	FailureProbe FailureCategory = "probe"

	// FailureNotFound means no backend matches the requested identity.
	FailureNotFound FailureCategory = "not_found"

	// FailureServiceDisabled means the backend does not advertise the service.
	FailureServiceDisabled FailureCategory = "service_disabled"

	// FailureSearch means the backend's search operation failed.
	FailureSearch FailureCategory = "search"
)

// BackendError wraps a collaborator failure with its category.
type BackendError struct {
	Category   FailureCategory
	Backend    string
	Message    string
	Underlying error
}

func (e *BackendError) Error() string {
	name := e.Backend
	if name == "" {
		name = "*"
	}
	if e.Underlying != nil {
		return fmt.Sprintf("backend %s [%s]: %s: %v", name, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("backend %s [%s]: %s", name, e.Category, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Underlying
}

// NewBackendError creates a categorized backend failure.
func NewBackendError(category FailureCategory, backend, message string, underlying error) *BackendError {
	return &BackendError{
		Category:   category,
		Backend:    backend,
		Message:    message,
		Underlying: underlying,
	}
}

// CategoryOf extracts the failure category, FailureSearch for uncategorized errors.
func CategoryOf(err error) FailureCategory {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Category
	}
	return FailureSearch
}

// ErrBackendNotFound is returned by factories that do not know a backend name.
var ErrBackendNotFound = errors.New("backend not found")
