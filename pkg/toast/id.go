package toast

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// IDGenerator produces identifiers for new toasts. Generated values must be
// unique among currently-active entries; reuse after removal is harmless.
type IDGenerator func() string

// nanoidLength keeps generated DOM keys short while staying collision-safe
// for the handful of simultaneously visible toasts.
const nanoidLength = 12

// SequentialID returns the default generator: a per-manager monotonically
// increasing counter ("t-1", "t-2", ...). Counters cannot collide among
// active entries and are stable for DOM keying within a single manager.
func SequentialID() IDGenerator {
	var n atomic.Uint64
	return func() string {
		return "t-" + strconv.FormatUint(n.Add(1), 10)
	}
}

// NanoID returns a generator producing short random identifiers. Useful when
// toasts from several managers end up keyed in the same DOM tree.
func NanoID() IDGenerator {
	return func() string {
		return nanoid.Must(nanoidLength)
	}
}

// UUID returns a generator producing UUIDv4 identifiers.
func UUID() IDGenerator {
	return uuid.NewString
}
