package toast

import (
	"time"
)

// Kind represents the toast type/severity. It is informational only and has
// no effect on the lifecycle of an entry.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Default display durations. The manager applies DefaultDuration when the
// caller does not supply one; the kind-specific values are policy carried by
// the convenience constructors (Success, Error, Warning, Info) only.
const (
	DefaultDuration        = 5 * time.Second
	DefaultErrorDuration   = 8 * time.Second
	DefaultWarningDuration = 6 * time.Second
)

// DefaultMaxActive bounds the active set when no limit is configured.
const DefaultMaxActive = 5

// Options describes a toast request as supplied by the caller.
// The zero value of every field is valid: kind falls back to KindInfo,
// duration falls back to the manager default, and a zero Sticky means the
// toast auto-dismisses after its duration.
type Options struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`

	// Sticky disables auto-dismissal; the toast stays until it is dismissed
	// explicitly, evicted by overflow, or cleared.
	Sticky bool `json:"sticky"`

	// Duration overrides the manager's default display duration.
	// Ignored for sticky toasts.
	Duration time.Duration `json:"duration,omitempty"`
}

// Toast is a manager-owned active entry derived from Options with all
// defaults resolved. The dismissal timer handle is private to the manager
// and never exposed.
type Toast struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	Title     string        `json:"title,omitempty"`
	Message   string        `json:"message"`
	Sticky    bool          `json:"sticky"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}
