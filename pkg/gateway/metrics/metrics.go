// Package metrics defines Prometheus metrics for the gateway.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// registerOnce ensures Register() is idempotent.
var registerOnce sync.Once

var (
	// DownloadRequestsTotal counts download resolutions by response status.
	DownloadRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_download_requests_total",
			Help: "Total download requests by response status",
		},
		[]string{"status"},
	)

	// DownloadDuration observes download resolution latency in seconds,
	// presign and existence-check round trips included.
	DownloadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gateway_download_duration_seconds",
			Help:    "Download resolution latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all gateway metrics with the default Prometheus
// registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			DownloadRequestsTotal,
			DownloadDuration,
		)
	})
}

// ObserveDownload records one download resolution.
func ObserveDownload(status int, elapsed time.Duration) {
	DownloadRequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	DownloadDuration.Observe(elapsed.Seconds())
}
