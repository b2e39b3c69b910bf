package mapping

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingMapping is matched by MissingMappingError.
	ErrMissingMapping = errors.New("missing mapping")
	// ErrDuplicateMapping is returned when two units are registered under one id.
	ErrDuplicateMapping = errors.New("duplicate mapping id")
)

// MissingMappingError reports a dependency on a mapping id that is not in
// the registry.
type MissingMappingError struct {
	ID string
}

// Error implements error.
func (e *MissingMappingError) Error() string {
	return fmt.Sprintf("missing mapping with id %q", e.ID)
}

// Unwrap makes errors.Is(err, ErrMissingMapping) true.
func (e *MissingMappingError) Unwrap() error {
	return ErrMissingMapping
}
