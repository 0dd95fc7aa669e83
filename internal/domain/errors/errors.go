package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InvalidTransitionError reports a status change the order lifecycle does not permit.
type InvalidTransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *InvalidTransitionError) Error() string {
	switch len(e.Allowed) {
	case 0:
		return fmt.Sprintf("%s order cannot change status", e.From)
	case 1:
		return fmt.Sprintf("from %s, order can only move to %s", e.From, e.Allowed[0])
	default:
		last := len(e.Allowed) - 1
		return fmt.Sprintf("from %s, order can only move to %s or %s",
			e.From, strings.Join(e.Allowed[:last], ", "), e.Allowed[last])
	}
}

// Is lets errors.Is match ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type reasonError struct {
	kind error
	msg  string
}

func (e *reasonError) Error() string { return e.msg }

func (e *reasonError) Unwrap() error { return e.kind }

// Reason attaches a client-facing message to one of the sentinels above.
func Reason(kind error, msg string) error {
	return &reasonError{kind: kind, msg: msg}
}
