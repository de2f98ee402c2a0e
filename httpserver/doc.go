// Package httpserver serves the read-only wallet query API.
//
// The server exposes the locally cached wallet state (nyms, accounts,
// servers, asset types) for operators and monitoring, alongside the usual
// health and diagnostic endpoints (livez, readyz, drain, undrain, optional
// pprof) and a Prometheus metrics listener on a separate address.
//
// Nothing here mutates wallet state; issuance and provisioning are CLI
// operations.
package httpserver
