package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a wizard session is missing or expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError reports a missing or malformed booking request field.
// It is a normal, user-correctable condition rather than a fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missingField(field string) error {
	return &ValidationError{Field: field, Message: "missing required field"}
}

func invalidField(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// TransitionError reports a rejected wizard transition. The wizard state is
// left untouched when one is returned.
type TransitionError struct {
	Step    WizardStep
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

func rejectTransition(step WizardStep, msg string) error {
	return &TransitionError{Step: step, Message: msg}
}
