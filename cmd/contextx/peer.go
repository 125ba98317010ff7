package contextx

import (
	"context"
	"net"
)

type peerKey struct{}

// WithPeer records the remote address of the caller so that security
// logging can report it long after the request handler has returned.
func WithPeer(parent context.Context, addr net.Addr) context.Context {
	return context.WithValue(parent, peerKey{}, addr)
}

func PeerFromContext(ctx context.Context) (net.Addr, bool) {
	addr, ok := ctx.Value(peerKey{}).(net.Addr)
	return addr, ok
}
