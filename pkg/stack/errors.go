package stack

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/junaway/serverless-stack/pkg/permissions"
)

var (
	ErrUnknown = errors.New("stack: unknown error")

	ErrFailedToConnect  = errors.New("stack: failed to connect")
	ErrUnauthenticated  = errors.New("stack: unauthenticated")
	ErrNotRepresentable = errors.New("stack: construct permissions cannot be sent over the wire")
)

type RequestError struct {
	Message string
}

func (e RequestError) Error() string {
	return "stack: " + e.Message
}

func statusError(res *http.Response) error {
	switch res.StatusCode {
	case http.StatusNotFound:
		return permissions.ErrRoleNotFound
	case http.StatusConflict:
		return permissions.ErrRoleAlreadyExists
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusUnprocessableEntity:
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
			return RequestError{Message: body.Error}
		}
		return ErrUnknown
	default:
		return ErrUnknown
	}
}
