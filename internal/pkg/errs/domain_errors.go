package errs

import (
	"errors"
	"strings"
)

// Sentinel errors shared by the command/query layers. Handlers map these to
// HTTP status codes; infra never returns them directly.
var (
	// Residence errors
	ErrResidenceNotFound  = errors.New("residence not found")
	ErrDuplicateReference = errors.New("reference code already in use")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// ValidationError collects field-level violations so a create/update request
// can report every failing constraint at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func NewValidationError(violations ...string) error {
	return &ValidationError{Violations: violations}
}

// ViolationsOf extracts field violations when err wraps a ValidationError.
func ViolationsOf(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Violations
	}
	return nil
}
