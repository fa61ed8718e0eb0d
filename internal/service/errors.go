package service

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateSKU      = errors.New("SKU already exists")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// ValidationError carries a field-keyed error map for 422 responses. No
// mutation has occurred when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
