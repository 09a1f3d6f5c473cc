package services

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateDay is returned when an itinerary day number is already
	// taken for the customer.
	ErrDuplicateDay = errors.New("duplicate itinerary day")

	// ErrInvalidInput is returned for payloads that fail domain validation.
	ErrInvalidInput = errors.New("invalid input")
)
