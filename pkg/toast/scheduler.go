package toast

import (
	"sort"
	"sync"
	"time"
)

// TimerHandle controls a scheduled one-shot callback.
type TimerHandle interface {
	// Stop cancels the callback and reports whether it prevented the
	// callback from running. Once Stop returns true the callback is
	// guaranteed to never run; once the callback has started, Stop
	// returns false.
	Stop() bool
}

// Scheduler schedules one-shot callbacks after a delay. It abstracts the
// clock so tests can advance virtual time instead of waiting on real timers.
//
// Implementations must not run the callback synchronously inside Schedule;
// callbacks re-enter the manager and would deadlock against its mutex.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) TimerHandle
}

// systemScheduler is the default Scheduler backed by time.AfterFunc.
type systemScheduler struct{}

func (systemScheduler) Schedule(delay time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(delay, fn)
}

// ManualScheduler is a deterministic Scheduler for tests. Callbacks only
// fire when virtual time is advanced explicitly via Advance, in deadline
// order, on the goroutine calling Advance.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	s        *ManualScheduler
	deadline time.Duration
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

// NewManualScheduler creates a scheduler with virtual time starting at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTimer{
		s:        s,
		deadline: s.now + delay,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves virtual time forward and fires every due callback.
// Ties fire in scheduling order. Callbacks run outside the scheduler lock
// so they may schedule or stop other timers.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	now := s.now

	var due []*manualTimer
	var rest []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && t.deadline <= now {
			t.fired = true
			due = append(due, t)
		} else if !t.stopped {
			rest = append(rest, t)
		}
	}
	s.timers = rest
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline != due[j].deadline {
			return due[i].deadline < due[j].deadline
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of scheduled callbacks that have neither fired
// nor been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	for i, other := range t.s.timers {
		if other == t {
			t.s.timers = append(t.s.timers[:i], t.s.timers[i+1:]...)
			break
		}
	}
	return true
}
