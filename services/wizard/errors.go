package wizard

import (
	"errors"
	"fmt"
)

// ValidationError blocks a forward step move. It is local and synchronous:
// it never reaches the student repository or any remote collaborator.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ErrSubmissionInFlight guards against double submission: a second submit for
// the same student while one is running is rejected, not queued.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// ErrAlreadySubmitted is returned for any mutation after the wizard reached
// its terminal state.
var ErrAlreadySubmitted = errors.New("registration already submitted")

// ErrDraftNotFound is returned when no wizard has been started for a student.
var ErrDraftNotFound = errors.New("no wizard draft for this student")

// ExitGuardError tells the caller to show the abandon confirmation prompt.
// Exiting with confirm=true signs the student out while keeping the draft.
type ExitGuardError struct{}

func (e *ExitGuardError) Error() string {
	return "registration in progress; confirm before leaving"
}
