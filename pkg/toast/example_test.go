package toast_test

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func ExampleManager_Show() {
	m := toast.NewManager()
	defer m.Close()

	id, err := m.Show(toast.Options{
		Kind:    toast.KindSuccess,
		Title:   "Cart",
		Message: "Item added to your cart",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(id)
	fmt.Println(m.Len())
	// Output:
	// t-1
	// 1
}

func ExampleManager_Show_eviction() {
	// With a bound of 2, the third toast evicts the oldest one
	m := toast.NewManager(toast.WithMaxActive(2))
	defer m.Close()

	_, _ = m.Show(toast.Options{Message: "A"})
	_, _ = m.Show(toast.Options{Message: "B"})
	_, _ = m.Show(toast.Options{Message: "C"})

	for _, t := range m.Active() {
		fmt.Println(t.Message)
	}
	// Output:
	// C
	// B
}

func ExampleManager_Dismiss() {
	m := toast.NewManager()
	defer m.Close()

	id, _ := m.Show(toast.Options{Message: "Session expiring soon", Sticky: true})
	fmt.Println(m.Len())

	m.Dismiss(id)
	fmt.Println(m.Len())

	// Dismissing again is a harmless no-op
	m.Dismiss(id)
	fmt.Println(m.Len())
	// Output:
	// 1
	// 0
	// 0
}

func ExampleManager_Subscribe() {
	m := toast.NewManager()
	defer m.Close()

	sub := m.Subscribe(context.Background())
	defer sub.Close()

	// The current snapshot arrives immediately
	fmt.Println(len(<-sub.Updates()))

	_, _ = m.Error("Payment declined")
	snapshot := <-sub.Updates()
	fmt.Println(snapshot[0].Message)
	// Output:
	// 0
	// Payment declined
}

func ExampleNewManualScheduler() {
	sched := toast.NewManualScheduler()
	m := toast.NewManager(toast.WithScheduler(sched))
	defer m.Close()

	_, _ = m.Show(toast.Options{Message: "ephemeral", Duration: 100 * time.Millisecond})
	fmt.Println(m.Len())

	// Advance virtual time past the deadline; no wall-clock waiting
	sched.Advance(150 * time.Millisecond)
	fmt.Println(m.Len())
	// Output:
	// 1
	// 0
}
