package db

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
	"github.com/junaway/serverless-stack/pkg/sqlx"
)

func (s *Store) CreateRole(
	ctx context.Context,
	logger logx.Logger,
	name string,
	statements ...permissions.Statement,
) (r *permissions.ExecutionRole, err error) {
	logger = logger.WithName("data-service")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			err = commitErr
		}
	}()

	created, err := createRole(ctx, logger, tx, name)
	if err != nil {
		return
	}

	for _, statement := range statements {
		if err = attachStatement(ctx, logger, tx, created.ID, statement); err != nil {
			return
		}
	}

	role := permissions.NewExecutionRole(name)
	for _, statement := range statements {
		role.AttachStatement(statement)
	}
	r = role

	return
}

func (s *Store) DeleteRole(
	ctx context.Context,
	logger logx.Logger,
	name string,
) error {
	return deleteRole(ctx, logger.WithName("data-service"), s.conn, name)
}

func (s *Store) FindRole(
	ctx context.Context,
	logger logx.Logger,
	query repos.FindRoleQuery,
) (*permissions.ExecutionRole, error) {
	logger = logger.WithName("data-service")

	r, err := findRole(ctx, logger, s.conn, query.RoleName)
	if err != nil {
		return nil, err
	}

	statements, err := listRoleStatements(ctx, logger, s.conn, r.Name)
	if err != nil {
		return nil, err
	}

	role := permissions.NewExecutionRole(r.Name)
	for _, statement := range statements {
		role.AttachStatement(statement)
	}

	return role, nil
}

func (s *Store) AttachStatements(
	ctx context.Context,
	logger logx.Logger,
	name string,
	statements ...permissions.Statement,
) (err error) {
	logger = logger.WithName("data-service")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if commitErr := sqlx.Commit(logger, tx, err); commitErr != nil {
			err = commitErr
		}
	}()

	r, err := findRole(ctx, logger, tx, name)
	if err != nil {
		return
	}

	for _, statement := range statements {
		if err = attachStatement(ctx, logger, tx, r.ID, statement); err != nil {
			return
		}
	}

	return
}

func (s *Store) ListRoleStatements(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListRoleStatementsQuery,
) ([]permissions.Statement, error) {
	return listRoleStatements(ctx, logger.WithName("data-service"), s.conn, query.RoleName)
}
