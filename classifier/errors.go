package classifier

import "fmt"

// Error codes attached to failures crossing the public surface.
const (
	CodeModelLoad    = "model-load"
	CodeClassify     = "classify"
	CodeAnalyze      = "analyze"
	CodeInvalidImage = "invalid-image"
)

// Error tags a failure with a short machine-readable code and a
// human-readable message. Lower layers return plain wrapped errors;
// tagging happens once, at the public entry point.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}
