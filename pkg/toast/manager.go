package toast

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/logger"
)

// Manager owns the collection of active toasts. It assigns identifiers,
// enforces the active-set bound, schedules and cancels auto-dismiss timers,
// and fans state snapshots out to subscribers.
//
// All methods are safe for concurrent use; a single mutex guards the ordered
// sequence and the timer-handle map so the two are always mutually
// consistent.
type Manager struct {
	entries   []Toast                // newest-first
	timers    map[string]TimerHandle // id -> live dismissal timer
	stream    *stream
	scheduler Scheduler
	nextID    IDGenerator
	maxActive int
	defaults  map[Kind]time.Duration
	logger    *slog.Logger
	closed    bool
	mu        sync.Mutex

	// streamBuffer is only consulted during construction, before the
	// stream exists.
	streamBuffer int
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxActive bounds the active set. Older toasts are evicted from the
// tail when a newer one pushes the set over the limit. Non-positive values
// are ignored.
func WithMaxActive(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxActive = n
		}
	}
}

// WithScheduler replaces the default time.AfterFunc-backed scheduler.
// Pass a ManualScheduler in tests to advance virtual time deterministically.
func WithScheduler(s Scheduler) Option {
	return func(m *Manager) {
		if s != nil {
			m.scheduler = s
		}
	}
}

// WithIDGenerator replaces the default sequential ID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Manager) {
		if gen != nil {
			m.nextID = gen
		}
	}
}

// WithKindDuration overrides the display duration the convenience
// constructors use for a kind.
func WithKindDuration(kind Kind, d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.defaults[kind] = d
		}
	}
}

// WithDefaultDuration overrides the base display duration applied when a
// caller supplies none.
func WithDefaultDuration(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.defaults[""] = d
		}
	}
}

// WithStreamBuffer sets the per-subscription snapshot buffer. When a
// subscriber falls behind, older snapshots are dropped in favor of the
// latest one.
func WithStreamBuffer(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.streamBuffer = n
		}
	}
}

// WithLogger sets the logger for the Manager.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.logger = log
		}
	}
}

// NewManager creates a toast manager with the default bound of
// DefaultMaxActive entries and kind durations per the package defaults.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		timers:    make(map[string]TimerHandle),
		scheduler: systemScheduler{},
		nextID:    SequentialID(),
		maxActive: DefaultMaxActive,
		defaults: map[Kind]time.Duration{
			"":          DefaultDuration,
			KindError:   DefaultErrorDuration,
			KindWarning: DefaultWarningDuration,
		},
		logger:       slog.Default(),
		streamBuffer: 1,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.stream = newStream(m.streamBuffer)
	return m
}

// Show resolves defaults, inserts the toast at the head of the active set,
// evicts overflow from the tail, schedules auto-dismissal unless the toast
// is sticky, and returns the new toast's id. It never blocks.
func (m *Manager) Show(opts Options) (string, error) {
	if strings.TrimSpace(opts.Message) == "" {
		return "", ErrEmptyMessage
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", ErrManagerClosed
	}

	t := Toast{
		ID:        m.nextID(),
		Kind:      opts.Kind,
		Title:     opts.Title,
		Message:   opts.Message,
		Sticky:    opts.Sticky,
		Duration:  opts.Duration,
		CreatedAt: time.Now(),
	}
	if t.Kind == "" {
		t.Kind = KindInfo
	}
	if t.Duration <= 0 {
		t.Duration = m.defaults[""]
	}

	m.entries = slices.Insert(m.entries, 0, t)
	for len(m.entries) > m.maxActive {
		victim := m.entries[len(m.entries)-1].ID
		m.removeLocked(victim)
		m.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast evicted by overflow",
			logger.ToastID(victim))
	}

	if !t.Sticky {
		id := t.ID
		m.timers[id] = m.scheduler.Schedule(t.Duration, func() {
			m.expire(id)
		})
	}

	m.publishLocked()
	m.mu.Unlock()

	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast shown",
		logger.ToastID(t.ID),
		logger.Kind(string(t.Kind)),
		slog.Bool("sticky", t.Sticky),
		slog.Duration("duration", t.Duration),
	)
	return t.ID, nil
}

// Success shows a success toast with the kind's default duration.
// An optional title may be passed as the second argument.
func (m *Manager) Success(message string, title ...string) (string, error) {
	return m.showKind(KindSuccess, message, title)
}

// Error shows an error toast. Errors stay visible longer than the base
// default so users have time to read them.
func (m *Manager) Error(message string, title ...string) (string, error) {
	return m.showKind(KindError, message, title)
}

// Warning shows a warning toast with a slightly longer default duration.
func (m *Manager) Warning(message string, title ...string) (string, error) {
	return m.showKind(KindWarning, message, title)
}

// Info shows an informational toast with the base default duration.
func (m *Manager) Info(message string, title ...string) (string, error) {
	return m.showKind(KindInfo, message, title)
}

func (m *Manager) showKind(kind Kind, message string, title []string) (string, error) {
	opts := Options{
		Kind:     kind,
		Message:  message,
		Duration: m.durationFor(kind),
	}
	if len(title) > 0 {
		opts.Title = title[0]
	}
	return m.Show(opts)
}

func (m *Manager) durationFor(kind Kind) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d, ok := m.defaults[kind]; ok {
		return d
	}
	return m.defaults[""]
}

// Dismiss removes a toast and cancels its pending auto-dismiss timer.
// Dismissing an unknown id is a silent no-op: a manual close racing the
// auto-dismiss timer is expected and harmless.
func (m *Manager) Dismiss(id string) {
	m.mu.Lock()
	removed := m.removeLocked(id)
	if removed {
		m.publishLocked()
	}
	m.mu.Unlock()

	if removed {
		m.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast dismissed",
			logger.ToastID(id))
	}
}

// expire is the auto-dismiss timer callback. If the toast was already
// removed by another path the removal routine makes this a no-op.
func (m *Manager) expire(id string) {
	m.mu.Lock()
	removed := m.removeLocked(id)
	if removed {
		m.publishLocked()
	}
	m.mu.Unlock()

	if removed {
		m.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast auto-dismissed",
			logger.ToastID(id))
	}
}

// Clear removes every active toast and cancels every pending timer.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.clearLocked()
	m.publishLocked()
	m.mu.Unlock()

	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "toasts cleared")
}

// Active returns the active set newest-first. The returned slice is a copy.
func (m *Manager) Active() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Len returns the number of active toasts.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Subscribe registers a renderer for state snapshots. The current snapshot
// is delivered immediately; every mutation delivers a fresh one. The
// subscription is cleaned up when ctx is cancelled, when it is closed
// explicitly, or when the manager closes.
func (m *Manager) Subscribe(ctx context.Context) *Subscription {
	// Registering and seeding under the manager mutex keeps the initial
	// snapshot ordered against concurrent mutations.
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := m.stream.subscribe(ctx)
	sub.push(m.snapshotLocked())
	return sub
}

// Close tears the manager down: cancels all timers, drops all entries, and
// closes every subscription. Subsequent Show calls return ErrManagerClosed;
// Dismiss and Clear become no-ops. Safe to call multiple times.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.clearLocked()
	m.mu.Unlock()

	m.stream.close()
	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "toast manager closed")
}

// removeLocked is the single removal routine shared by all destruction
// paths: explicit dismiss, timer expiry, overflow eviction, and clear.
// It cancels any pending timer before the entry is considered gone and is
// idempotent. Caller must hold m.mu.
func (m *Manager) removeLocked(id string) bool {
	if h, ok := m.timers[id]; ok {
		h.Stop()
		delete(m.timers, id)
	}
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = slices.Delete(m.entries, i, i+1)
			return true
		}
	}
	return false
}

func (m *Manager) clearLocked() {
	for id, h := range m.timers {
		h.Stop()
		delete(m.timers, id)
	}
	m.entries = nil
}

func (m *Manager) snapshotLocked() []Toast {
	return slices.Clone(m.entries)
}

// publishLocked fans the current snapshot out under the manager mutex so
// subscribers observe mutations in order. push never blocks, so holding the
// lock here is safe.
func (m *Manager) publishLocked() {
	m.stream.publish(m.snapshotLocked())
}
