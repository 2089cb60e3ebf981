package toast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscription_Push_CoalescesWhenFull(t *testing.T) {
	t.Parallel()

	st := newStream(1)
	sub := st.subscribe(context.Background())

	st.publish([]Toast{{ID: "a"}})
	st.publish([]Toast{{ID: "b"}})
	st.publish([]Toast{{ID: "c"}})

	snap := <-sub.Updates()
	require.Len(t, snap, 1)
	assert.Equal(t, "c", snap[0].ID, "older snapshots are dropped, latest wins")

	select {
	case <-sub.Updates():
		t.Fatal("no further snapshot expected")
	default:
	}
}

func TestSubscription_Close_Idempotent(t *testing.T) {
	t.Parallel()

	st := newStream(1)
	sub := st.subscribe(context.Background())

	sub.Close()
	sub.Close()

	_, ok := <-sub.Updates()
	assert.False(t, ok)

	// Publishing to a closed subscription is harmless
	st.publish([]Toast{{ID: "a"}})
}

func TestStream_Unsubscribe_OnContextCancel(t *testing.T) {
	t.Parallel()

	st := newStream(1)
	ctx, cancel := context.WithCancel(context.Background())
	sub := st.subscribe(ctx)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Updates():
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestStream_Close(t *testing.T) {
	t.Parallel()

	st := newStream(1)
	a := st.subscribe(context.Background())
	b := st.subscribe(context.Background())

	st.close()
	st.close()

	_, ok := <-a.Updates()
	assert.False(t, ok)
	_, ok = <-b.Updates()
	assert.False(t, ok)

	// Subscribing after close yields an already-closed subscription
	c := st.subscribe(context.Background())
	_, ok = <-c.Updates()
	assert.False(t, ok)
}

func TestStream_PublishFansOut(t *testing.T) {
	t.Parallel()

	st := newStream(2)
	a := st.subscribe(context.Background())
	b := st.subscribe(context.Background())

	st.publish([]Toast{{ID: "x"}})

	snapA := <-a.Updates()
	snapB := <-b.Updates()
	assert.Equal(t, "x", snapA[0].ID)
	assert.Equal(t, "x", snapB[0].ID)
}
