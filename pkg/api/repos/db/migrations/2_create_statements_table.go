package migrations

import (
	"context"

	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/sqlx"
)

var createStatementsTable = `
CREATE TABLE IF NOT EXISTS statement
(
  id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
  uuid BINARY(16) NOT NULL UNIQUE,
  role_id BIGINT NOT NULL,
  sid VARCHAR(255) NOT NULL DEFAULT '',
  effect VARCHAR(8) NOT NULL,
  actions TEXT NOT NULL,
  resources TEXT NOT NULL,
  CONSTRAINT statement_role_id_fkey FOREIGN KEY (role_id) REFERENCES role(id) ON DELETE CASCADE
)
`

var deleteStatementsTable = `DROP TABLE statement`

func CreateStatementsTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-statements-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, createStatementsTable)

	return err
}

func CreateStatementsTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-statements-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, deleteStatementsTable)

	return err
}
