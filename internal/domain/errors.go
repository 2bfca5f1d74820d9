package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrBalanceExceeded   = errors.New("escrow balance exceeded")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrValidation        = errors.New("validation failed")
)

// DenyError carries the capability gate reason. It matches ErrUnauthorized
// in errors.Is chains so delivery code only has to know the sentinel.
type DenyError struct {
	Reason string
}

func (e *DenyError) Error() string {
	return fmt.Sprintf("denied: %s", e.Reason)
}

func (e *DenyError) Is(target error) bool {
	return target == ErrUnauthorized
}

func Deny(reason string) error {
	return &DenyError{Reason: reason}
}
