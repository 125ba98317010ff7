package stack

import "crypto/tls"

type options struct {
	tlsConfig *tls.Config
}

// DialOption configures how Dial sets up the connection to the registry.
type DialOption func(*options)

// WithTLSConfig makes the client connect over TLS using the supplied config.
func WithTLSConfig(config *tls.Config) DialOption {
	return func(o *options) {
		o.tlsConfig = config
	}
}
