// Package internaldefs holds the shared counter definitions used by the
// Prometheus and OTel exporters. It exists so the two export surfaces name
// and describe metrics identically.
package internaldefs
