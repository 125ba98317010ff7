package permissions

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/logx"
)

// WildcardStatement is what the All sentinel attaches.
var WildcardStatement = Statement{
	Effect:    Allow,
	Actions:   []string{"*"},
	Resources: []string{"*"},
}

// Attach resolves a permission specification against the execution role,
// one element at a time in order. The first element that fails stops the
// walk and its error is returned; statements attached before it remain.
func Attach(ctx context.Context, logger logx.Logger, role *ExecutionRole, perms Permissions) error {
	logger = logger.WithName("attach-permissions").WithData(logx.Data{Key: "role.name", Value: role.Name})
	logger.Debug(starting)

	if perms.IsAll() {
		role.AttachStatement(WildcardStatement)
		logger.Debug(success)
		return nil
	}

	for _, item := range perms.Items() {
		if err := attachOne(ctx, logger, role, item); err != nil {
			return err
		}
	}

	logger.Debug(success)
	return nil
}

func attachOne(ctx context.Context, logger logx.Logger, role *ExecutionRole, item Permission) error {
	switch p := item.(type) {
	case ServiceAccess:
		actions, err := AdminActions(string(p))
		if err != nil {
			logger.Error(errServiceNotFound, err, logx.Data{Key: "service.name", Value: string(p)})
			return err
		}

		role.AttachStatement(Statement{
			Effect:    Allow,
			Actions:   actions,
			Resources: []string{"*"},
		})
		return nil

	case Statement:
		if err := p.Validate(); err != nil {
			logger.Error(errInvalidStatement, err)
			return err
		}

		role.AttachStatement(p)
		return nil

	case ConstructAccess:
		if p.Construct == nil {
			logger.Error(failedToGrantFullAccess, ErrNilConstruct)
			return ErrNilConstruct
		}

		if err := p.Construct.GrantFullAccess(role); err != nil {
			logger.Error(failedToGrantFullAccess, err)
			return err
		}
		return nil

	case MethodAccess:
		if p.Construct == nil {
			logger.Error(failedToDispatchGrant, ErrNilConstruct)
			return ErrNilConstruct
		}

		if err := p.Construct.Grant(p.Method, role); err != nil {
			logger.Error(failedToDispatchGrant, err, logx.Data{Key: "grant.method", Value: p.Method})
			return err
		}
		return nil

	default:
		logger.Error(errUnknownPermissionType, ErrUnknownPermissionType)
		return ErrUnknownPermissionType
	}
}
