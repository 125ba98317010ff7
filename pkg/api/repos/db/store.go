package db

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	uuid "github.com/satori/go.uuid"

	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
	"github.com/junaway/serverless-stack/pkg/sqlx"
)

const MySQLErrorCodeDuplicateKey = 1062

type Store struct {
	conn *sqlx.DB
}

func NewStore(conn *sqlx.DB) *Store {
	return &Store{
		conn: conn,
	}
}

func createRole(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	name string,
) (role, error) {
	logger = logger.WithName("create-role")
	u := uuid.NewV4().Bytes()

	result, err := squirrel.Insert("role").
		Columns("uuid", "name").
		Values(u, name).
		RunWith(conn).
		ExecContext(ctx)

	switch e := err.(type) {
	case nil:
		roleID, err2 := result.LastInsertId()
		if err2 != nil {
			logger.Error(failedToRetrieveID, err2)
			return role{}, err2
		}

		return role{
			ID:   roleID,
			Name: name,
		}, nil
	case *mysql.MySQLError:
		if e.Number == MySQLErrorCodeDuplicateKey {
			logger.Debug(errRoleAlreadyExists)
			return role{}, permissions.ErrRoleAlreadyExists
		}

		logger.Error(failedToCreateRole, err)
		return role{}, err
	default:
		logger.Error(failedToCreateRole, err)
		return role{}, err
	}
}

func findRole(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	requestedRoleName string,
) (role, error) {
	logger = logger.WithName("find-role")

	var (
		roleID   int64
		roleName string
	)

	err := squirrel.Select("id", "name").
		From("role").
		Where(squirrel.Eq{
			"name": requestedRoleName,
		}).
		RunWith(conn).
		ScanContext(ctx, &roleID, &roleName)

	switch err {
	case nil:
		return role{
			ID:   roleID,
			Name: roleName,
		}, nil
	case sql.ErrNoRows:
		logger.Debug(errRoleNotFound)
		return role{}, permissions.ErrRoleNotFound
	default:
		logger.Error(failedToFindRole, err)
		return role{}, err
	}
}

func deleteRole(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	roleName string,
) error {
	logger = logger.WithName("delete-role")
	result, err := squirrel.Delete("role").
		Where(squirrel.Eq{
			"name": roleName,
		}).
		RunWith(conn).
		ExecContext(ctx)

	switch err {
	case nil:
		n, err2 := result.RowsAffected()
		if err2 != nil {
			logger.Error(failedToCountRowsAffected, err2)
			return err2
		}

		if n == 0 {
			logger.Debug(errRoleNotFound)
			return permissions.ErrRoleNotFound
		}

		return nil
	case sql.ErrNoRows:
		logger.Debug(errRoleNotFound)
		return permissions.ErrRoleNotFound
	default:
		logger.Error(failedToDeleteRole, err)
		return err
	}
}

func attachStatement(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	roleID int64,
	s permissions.Statement,
) error {
	logger = logger.WithName("attach-statement")

	actions, err := json.Marshal(s.Actions)
	if err != nil {
		logger.Error(failedToSerializeStatement, err)
		return err
	}
	resources, err := json.Marshal(s.Resources)
	if err != nil {
		logger.Error(failedToSerializeStatement, err)
		return err
	}

	u := uuid.NewV4().Bytes()

	_, err = squirrel.Insert("statement").
		Columns("uuid", "role_id", "sid", "effect", "actions", "resources").
		Values(u, roleID, s.Sid, string(s.Effect), actions, resources).
		RunWith(conn).
		ExecContext(ctx)

	if err != nil {
		logger.Error(failedToAttachStatement, err)
		return err
	}

	return nil
}

func listRoleStatements(
	ctx context.Context,
	logger logx.Logger,
	conn squirrel.BaseRunner,
	roleName string,
) ([]permissions.Statement, error) {
	logger = logger.WithName("list-role-statements")

	r, err := findRole(ctx, logger, conn, roleName)
	if err != nil {
		return nil, err
	}

	rows, err := squirrel.Select("sid", "effect", "actions", "resources").
		From("statement").
		Where(squirrel.Eq{
			"role_id": r.ID,
		}).
		OrderBy("id ASC").
		RunWith(conn).
		QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListStatements, err)
		return nil, err
	}
	defer rows.Close()

	var statements []permissions.Statement
	for rows.Next() {
		var (
			sid       string
			effect    string
			actions   []byte
			resources []byte
		)

		if err = rows.Scan(&sid, &effect, &actions, &resources); err != nil {
			logger.Error(failedToScanStatement, err)
			return nil, err
		}

		statement := permissions.Statement{
			Sid:    sid,
			Effect: permissions.Effect(effect),
		}
		if err = json.Unmarshal(actions, &statement.Actions); err != nil {
			logger.Error(failedToParseStatement, err)
			return nil, err
		}
		if err = json.Unmarshal(resources, &statement.Resources); err != nil {
			logger.Error(failedToParseStatement, err)
			return nil, err
		}

		statements = append(statements, statement)
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToListStatements, err)
		return nil, err
	}

	return statements, nil
}
