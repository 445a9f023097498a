package sapling

import "errors"

var (
	// ErrAlreadyRegistered is returned when adding a control that is already
	// in a window's registry.
	ErrAlreadyRegistered = errors.New("sapling: control already registered")

	// ErrNotRegistered is returned when operating on a control the window
	// does not hold.
	ErrNotRegistered = errors.New("sapling: control not registered")

	// ErrOutOfBounds is returned when a child control is attached outside
	// its container's rectangle.
	ErrOutOfBounds = errors.New("sapling: control outside parent bounds")

	// ErrNoRenderer is returned when a window is constructed without a
	// rendering backend.
	ErrNoRenderer = errors.New("sapling: no renderer")

	// ErrNoFocus is reported when text input arrives with no focused control.
	ErrNoFocus = errors.New("sapling: no control has focus")

	// ErrBadConfig wraps configuration validation failures.
	ErrBadConfig = errors.New("sapling: invalid config")
)
