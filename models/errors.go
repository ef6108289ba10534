package models

import "errors"

// Business-rule errors. Services wrap these with fmt.Errorf("%w: ...") so
// controllers can match the kind with errors.Is while the message keeps the
// detail.
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrTableUnavailable       = errors.New("table is not available")
	ErrOverlappingReservation = errors.New("table is already reserved for that time")
	ErrCapacityExceeded       = errors.New("party size exceeds table capacity")
	ErrOutOfHours             = errors.New("requested time is outside opening hours")
	ErrPastStartTime          = errors.New("start time must be in the future")

	ErrCancellationNotAllowed = errors.New("reservation can no longer be cancelled")
	ErrInvalidTransition      = errors.New("status transition not allowed")

	ErrDuplicateKey          = errors.New("value already in use")
	ErrHasActiveReservations = errors.New("customer has active reservations")
	ErrTableHasReservations  = errors.New("table has upcoming reservations")
)
