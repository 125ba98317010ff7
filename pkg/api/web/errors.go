package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/junaway/serverless-stack/pkg/errdefs"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

var (
	ErrUnauthenticated     = errors.New("web: unauthenticated")
	ErrInvalidRequestBody  = errors.New("web: request body could not be decoded")
	ErrAmbiguousPermission = errors.New("web: permission must set exactly one of service and statement")
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusCode(err), errorResponse{Error: err.Error()})
}

func statusCode(err error) int {
	switch err.(type) {
	case errdefs.ErrNotFound:
		return http.StatusNotFound
	case errdefs.ErrAlreadyExists:
		return http.StatusConflict
	}

	switch err {
	case ErrUnauthenticated:
		return http.StatusUnauthorized
	case ErrInvalidRequestBody, ErrAmbiguousPermission, permissions.ErrInvalidStatement:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
