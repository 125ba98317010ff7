package api

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/api/web"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/metrics"
)

type Server struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger

	server    *http.Server
	tlsConfig *tls.Config
}

func NewServer(roleRepo repos.RoleRepo, accessRepo repos.AccessRepo, opts ...ServerOption) *Server {
	config := &options{
		logger:         &emptyLogger{},
		securityLogger: &emptySecurityLogger{},
	}

	for _, opt := range opts {
		opt(config)
	}

	router := web.NewRouter(config.logger, config.securityLogger, roleRepo, accessRepo, config.provider, config.statter)

	server := &http.Server{
		Handler:     router,
		IdleTimeout: config.idleTimeout,
	}

	return &Server{
		logger:         config.logger,
		securityLogger: config.securityLogger,
		server:         server,
		tlsConfig:      config.tlsConfig,
	}
}

func (s *Server) Serve(listener net.Listener) error {
	if s.tlsConfig != nil {
		listener = tls.NewListener(listener, s.tlsConfig)
	}

	err := s.server.Serve(listener)

	switch err {
	case nil:
		return nil
	case http.ErrServerClosed:
		return ErrServerStopped
	default:
		return ErrServerFailedToStart
	}
}

func (s *Server) GracefulStop() {
	_ = s.server.Shutdown(context.Background())
}

func (s *Server) Stop() {
	_ = s.server.Close()
}

type ServerOption func(*options)

func WithLogger(logger logx.Logger) ServerOption {
	return func(o *options) {
		o.logger = logger
	}
}

func WithSecurityLogger(logger logx.SecurityLogger) ServerOption {
	return func(o *options) {
		o.securityLogger = logger
	}
}

func WithTLSConfig(config *tls.Config) ServerOption {
	return func(o *options) {
		o.tlsConfig = config
	}
}

func WithOIDCProvider(provider web.OIDCProvider) ServerOption {
	return func(o *options) {
		o.provider = provider
	}
}

func WithMaxConnectionIdle(duration time.Duration) ServerOption {
	return func(o *options) {
		o.idleTimeout = duration
	}
}

func WithStatter(statter metrics.Statter) ServerOption {
	return func(o *options) {
		o.statter = statter
	}
}

type options struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger

	tlsConfig   *tls.Config
	provider    web.OIDCProvider
	statter     metrics.Statter
	idleTimeout time.Duration
}

type emptyLogger struct{}

func (l *emptyLogger) WithName(string) logx.Logger { return l }

func (l *emptyLogger) WithData(...logx.Data) logx.Logger { return l }

func (l *emptyLogger) Debug(string, ...logx.Data) {}

func (l *emptyLogger) Info(string, ...logx.Data) {}

func (l *emptyLogger) Error(string, error, ...logx.Data) {}

type emptySecurityLogger struct{}

func (l *emptySecurityLogger) Log(context.Context, string, string, ...logx.SecurityData) {}
