// Package network provides a pre-configured HTTP client for the application's release checks.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// The only remote the application talks to is the release metadata endpoint,
// so the client favors short timeouts over connection reuse.
var Client = &http.Client{
	Timeout:   15 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes an http.Transport with conservative pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}
