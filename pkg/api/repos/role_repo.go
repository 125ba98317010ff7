package repos

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

type FindRoleQuery struct {
	RoleName string
}

type ListRoleStatementsQuery struct {
	RoleName string
}

//go:generate counterfeiter . RoleRepo

type RoleRepo interface {
	CreateRole(
		ctx context.Context,
		logger logx.Logger,
		name string,
		statements ...permissions.Statement,
	) (*permissions.ExecutionRole, error)

	DeleteRole(
		ctx context.Context,
		logger logx.Logger,
		name string,
	) error

	FindRole(
		ctx context.Context,
		logger logx.Logger,
		query FindRoleQuery,
	) (*permissions.ExecutionRole, error)

	AttachStatements(
		ctx context.Context,
		logger logx.Logger,
		name string,
		statements ...permissions.Statement,
	) error

	ListRoleStatements(
		ctx context.Context,
		logger logx.Logger,
		query ListRoleStatementsQuery,
	) ([]permissions.Statement, error)
}
