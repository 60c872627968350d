package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Checkout aggregates order-placement counters for the debug endpoint.
type Checkout struct {
	OrdersPlaced    Counter
	GroupsCommitted Counter
	GroupsFailed    Counter
}

type CheckoutSnapshot struct {
	OrdersPlaced    uint64 `json:"orders_placed"`
	GroupsCommitted uint64 `json:"groups_committed"`
	GroupsFailed    uint64 `json:"groups_failed"`
}

func (c *Checkout) Snapshot() CheckoutSnapshot {
	return CheckoutSnapshot{
		OrdersPlaced:    c.OrdersPlaced.Load(),
		GroupsCommitted: c.GroupsCommitted.Load(),
		GroupsFailed:    c.GroupsFailed.Load(),
	}
}
