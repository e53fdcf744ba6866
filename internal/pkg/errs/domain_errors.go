package errs

import (
	"errors"
	"sort"
	"strings"
)

// Error markers shared by the usecase and handler layers
var (
	// Booking system errors
	ErrSystemUnavailable    = errors.New("booking system unavailable")
	ErrAvailabilityConflict = errors.New("availability conflict")
	ErrPersistence          = errors.New("persistence failure")

	// Input errors
	ErrValidation = errors.New("validation failed")

	// Campaign session errors
	ErrSessionNotFound     = errors.New("campaign session not found")
	ErrInvalidTransition   = errors.New("invalid campaign transition")
	ErrAvailabilityPending = errors.New("availability not resolved yet")
	ErrDateNotSelected     = errors.New("date is not part of the selection")
	ErrHourOutOfRange      = errors.New("hour outside operating window")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

// ValidationError carries one message per offending input field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// NewValidationError returns an error marked with ErrValidation. It returns nil
// when fields is empty so callers can build the map unconditionally.
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return Mark(&ValidationError{Fields: fields}, ErrValidation)
}

// ValidationFields extracts the field map from a validation error, if any.
func ValidationFields(err error) map[string]string {
	var ve *ValidationError
	if As(err, &ve) {
		return ve.Fields
	}
	return nil
}
