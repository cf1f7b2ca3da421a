package topic

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat   = errors.New("unsupported topic file format")
	ErrSchemaVersion       = errors.New("unsupported topic schema version")
	ErrNoQuestions         = errors.New("topic has no questions")
	ErrDuplicateQuestionID = errors.New("duplicate question id")
)

// ValidationError reports which part of a topic failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid topic: %v", e.Err)
	}
	return fmt.Sprintf("invalid topic field %q: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
