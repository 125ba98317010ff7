package inmemory

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

func (s *InMemoryStore) CreateRole(
	ctx context.Context,
	logger logx.Logger,
	name string,
	statements ...permissions.Statement,
) (*permissions.ExecutionRole, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, exists := s.roles[name]; exists {
		logger.Error(errRoleAlreadyExists, permissions.ErrRoleAlreadyExists)
		return nil, permissions.ErrRoleAlreadyExists
	}

	role := permissions.NewExecutionRole(name)
	for _, statement := range statements {
		role.AttachStatement(statement)
	}

	stored := make([]permissions.Statement, len(statements))
	copy(stored, statements)

	s.roles[name] = *role
	s.statements[name] = stored

	logger.Debug(success)
	return role, nil
}

func (s *InMemoryStore) DeleteRole(
	ctx context.Context,
	logger logx.Logger,
	name string,
) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, exists := s.roles[name]; !exists {
		logger.Error(errRoleNotFound, permissions.ErrRoleNotFound)
		return permissions.ErrRoleNotFound
	}

	delete(s.roles, name)
	delete(s.statements, name)

	logger.Debug(success)
	return nil
}

func (s *InMemoryStore) FindRole(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindRoleQuery,
) (*permissions.ExecutionRole, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if _, exists := s.roles[query.RoleName]; !exists {
		logger.Error(errRoleNotFound, permissions.ErrRoleNotFound)
		return nil, permissions.ErrRoleNotFound
	}

	role := permissions.NewExecutionRole(query.RoleName)
	for _, statement := range s.statements[query.RoleName] {
		role.AttachStatement(statement)
	}

	return role, nil
}

func (s *InMemoryStore) AttachStatements(
	ctx context.Context,
	logger logx.Logger,
	name string,
	statements ...permissions.Statement,
) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, exists := s.roles[name]; !exists {
		logger.Error(errRoleNotFound, permissions.ErrRoleNotFound)
		return permissions.ErrRoleNotFound
	}

	s.statements[name] = append(s.statements[name], statements...)

	logger.Debug(success)
	return nil
}

func (s *InMemoryStore) ListRoleStatements(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListRoleStatementsQuery,
) ([]permissions.Statement, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	statements, exists := s.statements[query.RoleName]
	if !exists {
		return nil, permissions.ErrRoleNotFound
	}

	result := make([]permissions.Statement, len(statements))
	copy(result, statements)
	return result, nil
}
