package inmemory

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

func (s *InMemoryStore) HasAccess(
	ctx context.Context,
	logger logx.Logger,
	query repos.HasAccessQuery,
) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	statements, exists := s.statements[query.RoleName]
	if !exists {
		return false, permissions.ErrRoleNotFound
	}

	return repos.Allows(statements, query.Action, query.Resource), nil
}

func (s *InMemoryStore) ListAllowedResources(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListAllowedResourcesQuery,
) ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	statements, exists := s.statements[query.RoleName]
	if !exists {
		return nil, permissions.ErrRoleNotFound
	}

	return repos.AllowedResources(statements, query.Action), nil
}
