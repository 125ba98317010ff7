package cmd

import (
	"context"

	"github.com/junaway/serverless-stack/cmd/flags"
	"github.com/junaway/serverless-stack/pkg/api/repos/db"
	"github.com/junaway/serverless-stack/pkg/sqlx"
)

type MigrateCommand struct {
	Up   UpCommand   `command:"up" description:"Migrate the database to the latest version"`
	Down DownCommand `command:"down" description:"Rollback database migrations"`
}

type UpCommand struct {
	Logger flags.LagerFlag

	DB                  flags.DBFlag `group:"DB" namespace:"db"`
	MigrationsTableName string       `long:"migrations-table-name" description:"Name of the table in which to record applied migrations" default:"stack_migrations"`
}

type DownCommand struct {
	Logger flags.LagerFlag

	DB                  flags.DBFlag `group:"DB" namespace:"db"`
	MigrationsTableName string       `long:"migrations-table-name" description:"Name of the table in which to record applied migrations" default:"stack_migrations"`
	All                 bool         `long:"all" description:"Rollback all migrations instead of only the most recent one"`
}

func (cmd UpCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("sst").WithName("migrate-up")
	ctx := context.Background()

	conn, err := cmd.DB.Connect(ctx, logger)
	if err != nil {
		logger.Error(failedToOpenSQLConnection, err)
		return err
	}
	defer conn.Close()

	err = sqlx.ApplyMigrations(ctx, logger, conn, cmd.MigrationsTableName, db.Migrations)
	if err != nil {
		logger.Error(failedToApplyMigrations, err)
		return err
	}

	logger.Info(success)
	return nil
}

func (cmd DownCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("sst").WithName("migrate-down")
	ctx := context.Background()

	conn, err := cmd.DB.Connect(ctx, logger)
	if err != nil {
		logger.Error(failedToOpenSQLConnection, err)
		return err
	}
	defer conn.Close()

	err = sqlx.RollbackMigrations(ctx, logger, conn, cmd.MigrationsTableName, db.Migrations, cmd.All)
	if err != nil {
		logger.Error(failedToRollbackMigrations, err)
		return err
	}

	logger.Info(success)
	return nil
}
