package engine

import (
	"errors"
	"fmt"
)

// Validation error codes. AREA_REQUIRED is the only precondition reachable
// through normal extraction; the others guard callers that bypass extraction
// and hand attributes to the pipeline directly.
const (
	CodeAreaRequired      = "AREA_REQUIRED"
	CodeTypologyRequired  = "TYPOLOGY_REQUIRED"
	CodeNoDisciplines     = "NO_DISCIPLINES"
	CodeFinancialMismatch = "FINANCIAL_MISMATCH"
	CodeScheduleBroken    = "SCHEDULE_BROKEN"
)

// ValidationError is a fatal precondition or invariant violation. It is
// returned as a value so callers can branch on the code without unwrapping
// chains of wrapped errors.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError with the given code.
func IsValidation(err error, code string) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

// ConfigurationWarning records a non-fatal fallback taken because the
// configuration was incomplete. The calculation proceeds with the fallback;
// surfacing the warning to the configuration owner is the caller's job.
type ConfigurationWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func configWarning(field, format string, args ...any) ConfigurationWarning {
	return ConfigurationWarning{Field: field, Message: fmt.Sprintf(format, args...)}
}
