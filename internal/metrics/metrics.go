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

// Registry holds the process-wide storefront counters.
type Registry struct {
	CartAdds           Counter
	Checkouts          Counter
	CheckoutFailures   Counter
	CheckoutDuplicates Counter
	CoPurchaseEdges    Counter
	GraphFailures      Counter

	checkoutNanos Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

// ObserveCheckout records a successful checkout and its latency.
func (r *Registry) ObserveCheckout(d time.Duration) {
	r.Checkouts.Inc()
	if d > 0 {
		r.checkoutNanos.Add(uint64(d))
	}
}

type Snapshot struct {
	CartAdds           uint64  `json:"cart_adds"`
	Checkouts          uint64  `json:"checkouts"`
	CheckoutFailures   uint64  `json:"checkout_failures"`
	CheckoutDuplicates uint64  `json:"checkout_duplicates"`
	CoPurchaseEdges    uint64  `json:"co_purchase_edges"`
	GraphFailures      uint64  `json:"graph_failures"`
	AvgCheckoutMillis  float64 `json:"avg_checkout_ms"`
}

func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		CartAdds:           r.CartAdds.Load(),
		Checkouts:          r.Checkouts.Load(),
		CheckoutFailures:   r.CheckoutFailures.Load(),
		CheckoutDuplicates: r.CheckoutDuplicates.Load(),
		CoPurchaseEdges:    r.CoPurchaseEdges.Load(),
		GraphFailures:      r.GraphFailures.Load(),
	}
	if s.Checkouts > 0 {
		avg := time.Duration(r.checkoutNanos.Load() / s.Checkouts)
		s.AvgCheckoutMillis = float64(avg) / float64(time.Millisecond)
	}
	return s
}
