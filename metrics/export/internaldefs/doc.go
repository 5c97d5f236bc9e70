// Package internaldefs holds the shared counter definitions for the metrics
// exporters. It exists so the Prometheus and OTel surfaces export the same
// names in the same order without either importing the other.
package internaldefs
