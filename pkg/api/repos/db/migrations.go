package db

import (
	"github.com/junaway/serverless-stack/pkg/api/repos/db/migrations"
	"github.com/junaway/serverless-stack/pkg/sqlx"
)

var MigrationsTableName = "stack_migrations"

var Migrations = []sqlx.Migration{
	{
		Name: "create_roles_table",
		Up:   migrations.CreateRolesTableUp,
		Down: migrations.CreateRolesTableDown,
	},
	{
		Name: "create_statements_table",
		Up:   migrations.CreateStatementsTableUp,
		Down: migrations.CreateStatementsTableDown,
	},
}
