package cli

import (
	"errors"
	"fmt"

	"github.com/vk/langtour/internal/app"
)

// Exit codes returned by the langtour binary.
const (
	CodeFailure = 1 // a lesson failed, errored or the run was interrupted
	CodeUsage   = 2 // bad flags, arguments, settings or plan
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: CodeUsage, Message: err.Error(), Err: err}
}

// failure classifies an error returned by the App. Verification failures and
// runtime errors exit 1; anything the user can fix in their input exits 2.
func failure(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	if errors.Is(err, app.ErrLessonsFailed) {
		return &ExitError{Code: CodeFailure, Message: err.Error(), Err: err}
	}
	return &ExitError{Code: CodeFailure, Message: fmt.Sprintf("error: %v", err), Err: err}
}
