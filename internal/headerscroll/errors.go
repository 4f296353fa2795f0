package headerscroll

import "errors"

// Conditions that entry points absorb. They are logged, never returned.
var (
	ErrNotInitialized = errors.New("header not laid out yet")
	ErrUnknownContent = errors.New("content not registered")
	ErrNilSurface     = errors.New("nil surface")
	ErrNilCallbacks   = errors.New("nil callbacks")
	ErrReentrant      = errors.New("controller re-entered from a callback")
	ErrZeroHeight     = errors.New("header height is zero")
)
