package client

import (
	"net/http"
	"time"
)

type Option func(*httpConfig)

func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *httpConfig) {
		c.requestTimeout = timeout
	}
}

func WithConnTimeout(timeout time.Duration) Option {
	return func(c *httpConfig) {
		c.connTimeout = timeout
	}
}

func WithResponseHeaderTimeout(timeout time.Duration) Option {
	return func(c *httpConfig) {
		c.responseHeaderTimeout = timeout
	}
}

func WithTransport(transport TransportFunc) Option {
	return func(c *httpConfig) {
		c.transports = append(c.transports, transport)
	}
}

// WithBaseTransport replaces the innermost round tripper, for example with
// an httptest server's client transport. It must precede the other
// transport options.
func WithBaseTransport(rt http.RoundTripper) Option {
	return WithTransport(func(http.RoundTripper) http.RoundTripper {
		return rt
	})
}
