package api

import "errors"

var (
	ErrServerStopped       = errors.New("api: server stopped")
	ErrServerFailedToStart = errors.New("api: server failed to start")
)
