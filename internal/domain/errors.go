package domain

import (
	"errors"
	"fmt"
	"strings"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// SeatConflictError reports every requested seat already held by a different
// holder, so the caller can surface all of them at once.
type SeatConflictError struct {
	DestinationID string
	Seats         []string
}

func (e SeatConflictError) Error() string {
	if len(e.Seats) == 0 {
		return "seat conflict"
	}
	return fmt.Sprintf("seats already taken: %s", strings.Join(e.Seats, ", "))
}

// DuplicateSeatError means one request tried to give the same seat label to
// two passengers. Caller mistake, caught before any write.
type DuplicateSeatError struct {
	Seat string
}

func (e DuplicateSeatError) Error() string {
	if e.Seat == "" {
		return "duplicate seat in request"
	}
	return fmt.Sprintf("seat %s requested more than once", e.Seat)
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsSeatConflict(err error) bool {
	var target SeatConflictError
	return errors.As(err, &target)
}

func IsDuplicateSeat(err error) bool {
	var target DuplicateSeatError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// ConflictSeats extracts the offending seat list when err is a seat conflict.
func ConflictSeats(err error) []string {
	var target SeatConflictError
	if errors.As(err, &target) {
		return target.Seats
	}
	return nil
}
