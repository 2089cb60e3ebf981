package toast

import "errors"

// Common errors
var (
	// ErrManagerClosed is returned when showing a toast on a closed manager.
	// Operating on a closed manager indicates a wiring bug, not a runtime
	// condition to recover from.
	ErrManagerClosed = errors.New("toast: manager is closed")

	// ErrEmptyMessage is returned when a toast is requested without a message.
	ErrEmptyMessage = errors.New("toast: message is required")
)
