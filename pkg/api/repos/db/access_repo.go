package db

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
)

func (s *Store) HasAccess(
	ctx context.Context,
	logger logx.Logger,
	query repos.HasAccessQuery,
) (bool, error) {
	statements, err := listRoleStatements(ctx, logger.WithName("data-service"), s.conn, query.RoleName)
	if err != nil {
		return false, err
	}

	return repos.Allows(statements, query.Action, query.Resource), nil
}

func (s *Store) ListAllowedResources(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListAllowedResourcesQuery,
) ([]string, error) {
	statements, err := listRoleStatements(ctx, logger.WithName("data-service"), s.conn, query.RoleName)
	if err != nil {
		return nil, err
	}

	return repos.AllowedResources(statements, query.Action), nil
}
