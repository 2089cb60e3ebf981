package toast

import (
	"context"
	"sync"
)

// Subscription receives ordered snapshots of the active set after every
// mutation. Snapshots are copies; subscribers must never mutate manager
// state directly, they dismiss through the manager instead.
type Subscription struct {
	ch     chan []Toast
	closed bool
	mu     sync.Mutex
}

// Updates returns the snapshot channel. The channel is closed when the
// subscription or the owning manager is closed.
func (s *Subscription) Updates() <-chan []Toast {
	return s.ch
}

// Close detaches the subscription and closes its channel.
// Safe to call multiple times.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// push delivers a snapshot without ever blocking the manager. When the
// buffer is full the oldest snapshot is dropped: a renderer only needs the
// latest state, not the history.
func (s *Subscription) push(snap []Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- snap:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// stream fans snapshots out to subscribers. Owned by a single Manager.
type stream struct {
	subs      map[*Subscription]struct{}
	buffer    int
	closed    bool
	done      chan struct{}
	mu        sync.Mutex
	cleanupWg sync.WaitGroup
}

func newStream(buffer int) *stream {
	return &stream{
		subs: make(map[*Subscription]struct{}),
		done: make(chan struct{}),
		// Zero-buffer channels would make every push drop the snapshot it
		// is trying to deliver, so enforce a minimum of one
		buffer: max(buffer, 1),
	}
}

// subscribe registers a new subscription and arranges cleanup when ctx is
// cancelled. If the stream is already closed it returns a closed
// subscription.
func (st *stream) subscribe(ctx context.Context) *Subscription {
	st.mu.Lock()
	defer st.mu.Unlock()

	sub := &Subscription{ch: make(chan []Toast, st.buffer)}
	if st.closed {
		sub.Close()
		return sub
	}
	st.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		st.cleanupWg.Add(1)
		go func() {
			defer st.cleanupWg.Done()
			select {
			case <-ctx.Done():
				st.unsubscribe(sub)
			case <-st.done:
			}
		}()
	}

	return sub
}

func (st *stream) unsubscribe(sub *Subscription) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.subs, sub)
	sub.Close()
}

// publish fans a snapshot out to every subscriber. Never blocks.
func (st *stream) publish(snap []Toast) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.closed {
		return
	}
	for sub := range st.subs {
		sub.push(snap)
	}
}

// close shuts the stream down and closes all subscriptions.
// Safe to call multiple times.
func (st *stream) close() {
	st.mu.Lock()
	if st.closed {
		st.mu.Unlock()
		return
	}
	st.closed = true
	close(st.done)
	for sub := range st.subs {
		sub.Close()
	}
	clear(st.subs)
	st.mu.Unlock()

	// Wait for context-cancellation goroutines so close() leaves nothing
	// racing against a manager teardown
	st.cleanupWg.Wait()
}
