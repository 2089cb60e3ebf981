// Package toast provides the lifecycle manager behind toast notifications:
// a bounded, ordered active set with auto-dismiss timers and a subscription
// surface for renderers.
//
// The package owns mechanism, not presentation. It accepts toast requests,
// assigns identity, keeps the newest-first sequence within its bound,
// schedules and cancels dismissal timers, and publishes a fresh snapshot of
// the active set after every mutation. How toasts look, animate, or stack is
// a rendering concern layered on top.
//
// # Basic Usage
//
//	m := toast.NewManager()
//	defer m.Close()
//
//	id, err := m.Success("Order placed", "Thank you!")
//	if err != nil {
//	    // only fails on empty messages or a closed manager
//	}
//
//	// Explicit dismissal cancels the pending auto-dismiss timer.
//	m.Dismiss(id)
//
// # Lifecycle
//
// A toast is created only by Show (or the kind-specific helpers) and is
// destroyed by exactly one of four paths: an explicit Dismiss, its own
// auto-dismiss timer, overflow eviction when a newer toast pushes the set
// over the bound, or Clear. All four converge on one idempotent removal
// routine, so a manual close racing the timer is harmless by construction.
//
// # Rendering Integration
//
// Renderers subscribe to snapshots and must never mutate state directly:
//
//	sub := m.Subscribe(ctx)
//	for snapshot := range sub.Updates() {
//	    render(snapshot) // newest-first
//	}
//
// Slow renderers are never waited on: stale snapshots are dropped in favor
// of the latest one.
//
// # Deterministic Tests
//
// Timers go through the Scheduler interface. Production uses time.AfterFunc;
// tests pass a ManualScheduler and advance virtual time:
//
//	sched := toast.NewManualScheduler()
//	m := toast.NewManager(toast.WithScheduler(sched))
//	m.Info("hello")
//	sched.Advance(5 * time.Second) // fires the auto-dismiss
package toast
