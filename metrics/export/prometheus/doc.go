// Package prometheus renders freshcart client counters in Prometheus text
// exposition format, without pulling a Prometheus client dependency into the
// core module path.
package prometheus
