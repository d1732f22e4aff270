package intake

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateEmail is returned when a registration hits the email
// uniqueness constraint. The storage layer is the authority on duplicates;
// this sentinel is how it reports the violation upward.
var ErrDuplicateEmail = errors.New("email is already registered")

// FieldError describes a single validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the complete set of violations found in a submission.
// Validation never stops at the first failure so the client can report all
// problem fields at once.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors unwraps err into ValidationErrors if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
