// Package timeouts defines shared timeout constants used across the web
// frontend. Centralizing these values keeps the durations discoverable
// and prevents drift between call sites.
package timeouts

import "time"

// SessionVerify bounds the backend session verification call made on
// each authenticated page load. On expiry the session is treated as
// absent, not as an error.
const SessionVerify = 5 * time.Second

// BackendRequest caps a single content API request (listings, tag
// catalog, tag updates, canonical refetch).
const BackendRequest = 10 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
