package permissions

import (
	"errors"

	"github.com/junaway/serverless-stack/pkg/errdefs"
)

var (
	ErrServiceNotFound = errdefs.NewErrNotFound("service")
	ErrGrantNotFound   = errdefs.NewErrNotFound("grant method")

	ErrRoleNotFound      = errdefs.NewErrNotFound("role")
	ErrRoleAlreadyExists = errdefs.NewErrAlreadyExists("role")

	ErrInvalidStatement      = errors.New("permissions: statement must have a valid effect, at least one action, and at least one resource")
	ErrNilConstruct          = errors.New("permissions: construct reference is nil")
	ErrInvalidServiceName    = errors.New("permissions: service name must be a lowercase identifier")
	ErrUnknownPermissionType = errors.New("permissions: unknown permission type")
)
