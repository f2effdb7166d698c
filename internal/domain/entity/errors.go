package entity

import "errors"

var (
	// ErrInvalidTarget is returned when an insert or drop targets an area or
	// container that does not exist (or no longer exists).
	ErrInvalidTarget = errors.New("invalid dock target")

	// ErrMalformedState is returned when a layout blob cannot be decoded or
	// describes an inconsistent tree.
	ErrMalformedState = errors.New("malformed layout state")

	// ErrNameConflict is returned when a perspective name is already taken.
	ErrNameConflict = errors.New("name already exists")

	// ErrPerspectiveNotFound is returned when a perspective name is unknown.
	ErrPerspectiveNotFound = errors.New("perspective not found")

	// ErrFeatureDisabled is returned when a widget feature forbids the operation.
	ErrFeatureDisabled = errors.New("operation disabled by widget features")

	// ErrWidgetNotFound is returned when a dock widget is not registered.
	ErrWidgetNotFound = errors.New("dock widget not found")

	// ErrDuplicateWidget is returned when registering a second widget with the same name.
	ErrDuplicateWidget = errors.New("dock widget name already registered")
)
