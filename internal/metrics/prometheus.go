package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tyzox"

// collector reads the Registry on every scrape so counters live in one place.
type collector struct {
	r *Registry

	cartAdds           *prometheus.Desc
	checkouts          *prometheus.Desc
	checkoutFailures   *prometheus.Desc
	checkoutDuplicates *prometheus.Desc
	coPurchaseEdges    *prometheus.Desc
	graphFailures      *prometheus.Desc
	checkoutSeconds    *prometheus.Desc
}

func newCollector(r *Registry) *collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil)
	}
	return &collector{
		r:                  r,
		cartAdds:           desc("cart_adds_total", "Units added to carts."),
		checkouts:          desc("checkouts_total", "Completed checkouts."),
		checkoutFailures:   desc("checkout_failures_total", "Checkouts that rolled back."),
		checkoutDuplicates: desc("checkout_duplicates_total", "Checkouts rejected by a reused idempotency key."),
		coPurchaseEdges:    desc("co_purchase_edges_total", "New related-product edges recorded from orders."),
		graphFailures:      desc("graph_failures_total", "Co-purchase updates that failed after commit."),
		checkoutSeconds:    desc("checkout_duration_seconds_total", "Cumulative time spent in successful checkouts."),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cartAdds
	ch <- c.checkouts
	ch <- c.checkoutFailures
	ch <- c.checkoutDuplicates
	ch <- c.coPurchaseEdges
	ch <- c.graphFailures
	ch <- c.checkoutSeconds
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(c.cartAdds, c.r.CartAdds.Load())
	counter(c.checkouts, c.r.Checkouts.Load())
	counter(c.checkoutFailures, c.r.CheckoutFailures.Load())
	counter(c.checkoutDuplicates, c.r.CheckoutDuplicates.Load())
	counter(c.coPurchaseEdges, c.r.CoPurchaseEdges.Load())
	counter(c.graphFailures, c.r.GraphFailures.Load())

	ch <- prometheus.MustNewConstMetric(c.checkoutSeconds, prometheus.CounterValue,
		float64(c.r.checkoutNanos.Load())/1e9)
}

// Handler serves the registry, plus Go runtime and process metrics, in the
// Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		newCollector(r),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
