// Package tracing is a thin OpenTelemetry wrapper used by the code
// generator and the tuidgen CLI.  All instrumentation is kept in a
// separate package so that applications embedding the generator without
// tracing can leave it uninitialised – spans are then no-ops.
package tracing
