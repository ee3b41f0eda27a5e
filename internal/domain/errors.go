package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPaymentRequired   = errors.New("payment confirmation required")
	ErrTooEarly          = errors.New("lesson has not ended yet")
)

var (
	// ErrConflict signals an optimistic-concurrency loss: the booking was
	// modified between read and write. The caller must re-read and may retry.
	ErrConflict = errors.New("booking was modified concurrently")

	ErrTeacherUnavailable = errors.New("teacher is not available at this time")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type RescheduleDenialReason string

const (
	RescheduleInsufficientNotice RescheduleDenialReason = "insufficient_notice"
	RescheduleLimitReached       RescheduleDenialReason = "reschedule_limit_reached"
	RescheduleInvalidStatus      RescheduleDenialReason = "invalid_status"
)

// RescheduleDeniedError carries a machine-readable reason code so the API
// layer can map it to a localized message.
type RescheduleDeniedError struct {
	Reason RescheduleDenialReason
}

func (e *RescheduleDeniedError) Error() string {
	return fmt.Sprintf("reschedule not allowed: %s", e.Reason)
}
