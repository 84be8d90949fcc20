package task

import (
	"errors"
	"fmt"

	"task-manager/internal/model"
)

// ValidationError is a client input problem. Its message is safe to return
// to the caller as is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

var (
	ErrNoData         = &ValidationError{Msg: "No data provided"}
	ErrTitleRequired  = &ValidationError{Msg: "Title is required"}
	ErrTitleEmpty     = &ValidationError{Msg: "Title cannot be empty"}
	ErrInvalidDueDate = &ValidationError{Msg: "Invalid due date format"}
)

// StoreError wraps a persistence failure with the operation that hit it.
type StoreError struct {
	Op  string
	ID  int64
	Err error
}

func (e *StoreError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s task %d: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s task: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// storeErr leaves validation and not-found errors untouched and wraps
// everything else as a StoreError.
func storeErr(op string, id int64, err error) error {
	if err == nil || IsValidation(err) || errors.Is(err, model.ErrNotFound) {
		return err
	}
	return &StoreError{Op: op, ID: id, Err: err}
}
