package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	r := NewRegistry()
	r.CartAdds.Add(3)
	r.ObserveCheckout(1500 * time.Millisecond)
	r.ObserveCheckout(500 * time.Millisecond)
	r.GraphFailures.Inc()

	expected := `
# HELP tyzox_cart_adds_total Units added to carts.
# TYPE tyzox_cart_adds_total counter
tyzox_cart_adds_total 3
# HELP tyzox_checkouts_total Completed checkouts.
# TYPE tyzox_checkouts_total counter
tyzox_checkouts_total 2
# HELP tyzox_checkout_duration_seconds_total Cumulative time spent in successful checkouts.
# TYPE tyzox_checkout_duration_seconds_total counter
tyzox_checkout_duration_seconds_total 2
# HELP tyzox_graph_failures_total Co-purchase updates that failed after commit.
# TYPE tyzox_graph_failures_total counter
tyzox_graph_failures_total 1
`
	err := testutil.CollectAndCompare(newCollector(r), strings.NewReader(expected),
		"tyzox_cart_adds_total",
		"tyzox_checkouts_total",
		"tyzox_checkout_duration_seconds_total",
		"tyzox_graph_failures_total",
	)
	assert.NoError(t, err)
	assert.Equal(t, 7, testutil.CollectAndCount(newCollector(r)))
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	r.CheckoutDuplicates.Inc()

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "tyzox_checkout_duplicates_total 1")
	assert.Contains(t, body, "go_goroutines")
}
