package domain

import "errors"

var (
	// ErrSponsorshipNotFound is returned when a sponsorship record does not exist
	ErrSponsorshipNotFound = errors.New("sponsorship not found")

	// ErrDeliverableNotFound is returned when a deliverable record does not exist
	ErrDeliverableNotFound = errors.New("deliverable not found")

	// ErrPackageNotFound is returned when a package record does not exist
	ErrPackageNotFound = errors.New("package not found")

	// ErrTokenNotFound is returned when a portal token does not exist
	ErrTokenNotFound = errors.New("token not found")

	// ErrInvalidTransition is returned when a status change is not allowed by
	// the transition table
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotConfirmed is returned when an operation requires a confirmed
	// sponsorship (e.g. marking it paid)
	ErrNotConfirmed = errors.New("sponsorship is not confirmed")

	// ErrAlreadyPaid is returned when marking paid a sponsorship that
	// already carries a payment timestamp
	ErrAlreadyPaid = errors.New("sponsorship is already paid")
)
