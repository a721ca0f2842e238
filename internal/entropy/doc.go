// Package entropy wraps the random-byte source used for identifier
// construction so that it can be stubbed in tests. It lives under
// `internal` because callers should not rely on its exact behaviour or
// API – identifiers are opaque values.
package entropy
