package canvases

import "errors"

var (
	// ErrNotFound is returned when a referenced canvas does not exist.
	ErrNotFound = errors.New("canvas not found")

	// ErrInvalidUserID is returned when an acting user id is not a valid
	// UUID. It is checked before any store round trip.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrStoreRead tags query failures at the store boundary.
	ErrStoreRead = errors.New("store read failed")

	// ErrStoreWrite tags insert/update/delete failures at the store boundary.
	ErrStoreWrite = errors.New("store write failed")

	// ErrConcurrentSave is returned when a save is already in flight for the
	// same canvas. The second save is rejected, never queued.
	ErrConcurrentSave = errors.New("save already in progress")
)
