package sqlx

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/junaway/serverless-stack/pkg/logx"
)

func RollbackMigrations(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	migrations []Migration,
	all bool,
) error {
	migrationsLogger := logger.WithName("rollback-migrations").WithData(logx.Data{Key: "table_name", Value: tableName})

	migrationsLogger.Info(starting)
	if len(migrations) == 0 {
		return nil
	}

	appliedMigrations, err := RetrieveAppliedMigrations(ctx, migrationsLogger, conn, tableName)
	if err != nil {
		return err
	}
	migrationsLogger.Debug(retrievedAppliedMigrations, logx.Data{Key: "versions", Value: appliedMigrations})

	for version := len(migrations) - 1; version >= 0; version-- {
		migration := migrations[version]
		_, ok := appliedMigrations[version]

		migrationLogger := logger.WithData(logx.Data{Key: "version", Value: version}, logx.Data{Key: "name", Value: migration.Name})

		if !ok {
			migrationLogger.Debug(skippedAppliedMigration)
			continue
		}

		err = rollbackMigration(ctx, migrationLogger, conn, tableName, version, migration)
		if err != nil {
			return err
		}
		if !all {
			return nil
		}
	}

	return nil
}

func rollbackMigration(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	version int,
	migration Migration,
) (err error) {
	logger.Debug(starting)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		err = Commit(logger, tx, err)
	}()

	err = migration.Down(ctx, logger, tx)
	if err != nil {
		return
	}

	_, err = squirrel.Delete(tableName).
		Where(squirrel.Eq{"version": version}).
		RunWith(tx).
		ExecContext(ctx)

	logger.Debug(finished)

	return
}
