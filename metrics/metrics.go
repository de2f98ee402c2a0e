// Package metrics exposes Prometheus metrics on a dedicated listener.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// WalletQueries counts wallet query API requests by endpoint and status.
	WalletQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_queries_total",
		Help: "Wallet query API requests, by endpoint and status.",
	}, []string{"endpoint", "status"})

	// ProvisioningRuns counts provisioning workflow executions by result.
	ProvisioningRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "provisioning_runs_total",
		Help: "Provisioning workflow executions, by result.",
	}, []string{"result"})
)

// MetricsServer serves the Prometheus scrape endpoint.
type MetricsServer struct {
	srv *http.Server
}

// ServiceInfo reports the running service as a constant gauge, labeled by
// name.
var ServiceInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "service_info",
	Help: "Constant gauge labeled with the running service name.",
}, []string{"service"})

// New creates a metrics server listening on the given address.
func New(name, listenAddr string) (*MetricsServer, error) {
	ServiceInfo.WithLabelValues(name).Set(1)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:    listenAddr,
			Handler: mux,
		},
	}, nil
}

// ListenAndServe blocks serving the scrape endpoint.
func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
