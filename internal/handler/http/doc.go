// Package http implements the bridge status API.
//
// It exposes read-only views of the bridged device registry and the sync
// event journal, the build version and the Prometheus metrics. Request
// tracing and access logging are handled by middleware in this package
// before requests reach the service layer.
package http
