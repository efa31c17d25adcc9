// Package metrics provides observability hooks for composition runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics stay optional without nil checks:
//
//	svc := build.NewService() // NoopRecorder
//	svc = svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The CLI is a short-lived process, so the Prometheus registry is exported with
// WriteTextfile for the node_exporter textfile collector instead of an HTTP endpoint.
package metrics
