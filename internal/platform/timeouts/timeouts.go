// Package timeouts defines shared timeout constants used by the site.
package timeouts

import "time"

// StoreQuery caps a single round trip to the content store. It is a
// transport limit, not a retry budget: a query that exceeds it fails once
// and the page renders fallback content.
const StoreQuery = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryFlush bounds the final span export at process exit.
const TelemetryFlush = 5 * time.Second
