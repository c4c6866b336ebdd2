package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCanceled     = errors.New("reservation is already cancelled")
	ErrLockTimeout         = errors.New("could not lock requested dates within the configured timeout")
	ErrStaleReservation    = errors.New("reservation was modified concurrently, re-read and retry")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrBookingIDExhausted  = errors.New("could not generate a unique booking id")
)

// ValidationError carries every violated rule for a reservation request,
// not just the first one.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid reservation request: " + strings.Join(e.Errors, "; ")
}

// DateConflict is one requested night that could not be claimed. BookingID
// is the current owner when the night exists but is taken, empty when the
// night is outside the initialized calendar.
type DateConflict struct {
	Date      time.Time
	BookingID string
}

func (c DateConflict) Message() string {
	if c.BookingID == "" {
		return fmt.Sprintf("%s Date not available.", c.Date.Format(time.DateOnly))
	}
	return fmt.Sprintf("%s Date not available. Existing Booking ID: %s", c.Date.Format(time.DateOnly), c.BookingID)
}

// ConflictError reports a claim attempt that lost to existing reservations.
// The transaction is rolled back before this is returned, so no night in
// the request is left claimed.
type ConflictError struct {
	Conflicts []DateConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%d requested date(s) not available", len(e.Conflicts))
}

func (e *ConflictError) Messages() []string {
	msgs := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		msgs[i] = c.Message()
	}
	return msgs
}

// ModificationError wraps the failure of either stage of a modification.
// A failure in the reserve stage means the original reservation is already
// cancelled and stays cancelled.
type ModificationError struct {
	Stage string // "cancel" or "reserve"
	Err   error
}

func (e *ModificationError) Error() string {
	return fmt.Sprintf("modification failed during %s: %v", e.Stage, e.Err)
}

func (e *ModificationError) Unwrap() error {
	return e.Err
}
