package web

import (
	"net/http"
	"strings"

	oidc "github.com/coreos/go-oidc"

	"github.com/junaway/serverless-stack/pkg/logx"
)

const oidcClientID = "stack"

//go:generate counterfeiter . OIDCProvider

type OIDCProvider interface {
	Verifier(config *oidc.Config) *oidc.IDTokenVerifier
}

// AuthMiddleware rejects requests that do not carry a bearer token signed
// by the configured OIDC provider.
func AuthMiddleware(provider OIDCProvider, securityLogger logx.SecurityLogger) func(http.Handler) http.Handler {
	verifier := provider.Verifier(&oidc.Config{
		ClientID: oidcClientID,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				securityLogger.Log(ctx, "Auth", "Auth", logx.SecurityData{Key: "msg", Value: "no token"})
				writeError(w, ErrUnauthenticated)
				return
			}

			idToken, err := verifier.Verify(ctx, token)
			if err != nil {
				securityLogger.Log(ctx, "Auth", "Auth", logx.SecurityData{Key: "msg", Value: err.Error()})
				writeError(w, ErrUnauthenticated)
				return
			}

			securityLogger.Log(ctx, "Auth", "Auth",
				logx.SecurityData{Key: "msg", Value: "authentication succeeded"},
				logx.SecurityData{Key: "subject", Value: idToken.Subject},
			)
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	return parts[1], true
}
