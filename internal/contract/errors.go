package contract

import (
	"errors"
	"fmt"
)

type PipelineErrorCode string

const (
	ErrInvalidInput        PipelineErrorCode = "INVALID_INPUT"
	ErrUnresolvedReference PipelineErrorCode = "UNRESOLVED_REFERENCE"
	ErrExclusionAmbiguity  PipelineErrorCode = "EXCLUSION_AMBIGUITY"
	ErrInternal            PipelineErrorCode = "INTERNAL_ERROR"
)

// PipelineError is the only error type the analysis and program use cases
// return to callers. Unresolved references and ambiguous exclusions are
// reported in results, so in practice callers see INVALID_INPUT or
// INTERNAL_ERROR.
type PipelineError struct {
	Code    PipelineErrorCode
	Message string
}

func (e *PipelineError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func InvalidInput(format string, args ...any) error {
	return &PipelineError{Code: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error) error {
	return &PipelineError{Code: ErrInternal, Message: err.Error()}
}

// CodeOf returns the code of the first PipelineError in err's chain.
func CodeOf(err error) (PipelineErrorCode, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return "", false
}

func IsInputError(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrInvalidInput
}
