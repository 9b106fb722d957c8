// Package otel provides OpenTelemetry metric exporter bindings for
// panelauth counters.
//
// [NewExporter] registers an Int64ObservableCounter instrument per counter
// and a single callback that reads the session's MetricsSnapshot on each
// collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate session state.
package otel
