package web

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/junaway/serverless-stack/cmd/contextx"
	"github.com/junaway/serverless-stack/pkg/logx"
)

// PeerMiddleware records the caller's remote address and the receipt time
// in the request context so the security logger can report them.
func PeerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := contextx.WithReceiptTime(r.Context(), time.Now())

		host, portStr, err := net.SplitHostPort(r.RemoteAddr)
		if err == nil {
			port, _ := strconv.Atoi(portStr)
			addr := &net.TCPAddr{IP: net.ParseIP(host), Port: port}
			ctx = contextx.WithPeer(ctx, addr)
		}

		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// RecoveryMiddleware turns handler panics into 500 responses.
func RecoveryMiddleware(logger logx.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error(internal, recoveredError{p})
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

type recoveredError struct {
	panicked interface{}
}

func (e recoveredError) Error() string {
	if err, ok := e.panicked.(error); ok {
		return err.Error()
	}
	return "panic in request handler"
}
