package flags

import (
	"context"
	"errors"
	"time"

	"github.com/junaway/serverless-stack/pkg/cryptox"
	"github.com/junaway/serverless-stack/pkg/ioutilx"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/sqlx"
)

type DBFlag struct {
	Driver   sqlx.DBDriver `long:"driver" description:"Database driver to use for SQL backend (e.g. mysql, in-memory)" required:"true"`
	Host     string        `long:"host" description:"Host for SQL backend"`
	Port     int           `long:"port" description:"Port for SQL backend"`
	Schema   string        `long:"schema" description:"Database name to use for connecting to SQL backend"`
	Username string        `long:"username" description:"Username to use for connecting to SQL backend"`
	Password string        `long:"password" description:"Password to use for connecting to SQL backend"`

	TLS    SQLTLSFlag    `group:"TLS" namespace:"tls"`
	Tuning SQLTuningFlag `group:"Tuning" namespace:"tuning"`
}

type SQLTLSFlag struct {
	Required bool                   `long:"required" description:"Require TLS connections to the SQL backend"`
	RootCAs  []ioutilx.FileOrString `long:"root-ca" description:"CA certificate(s) for TLS connection to the SQL backend"`
}

type SQLTuningFlag struct {
	ConnMaxLifetime int `long:"connection-max-lifetime" description:"Limit the lifetime in milliseconds of a SQL connection"`
}

func (o *DBFlag) IsInMemory() bool {
	return o.Driver == sqlx.DBDriverInMemory
}

func (o *DBFlag) Connect(ctx context.Context, logger logx.Logger) (*sqlx.DB, error) {
	if o.IsInMemory() {
		return nil, errors.New("Connect() unsupported for in-memory driver")
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	logger = logger.WithData(
		logx.Data{Key: "db_driver", Value: o.Driver},
		logx.Data{Key: "db_host", Value: o.Host},
		logx.Data{Key: "db_port", Value: o.Port},
		logx.Data{Key: "db_schema", Value: o.Schema},
		logx.Data{Key: "db_username", Value: o.Username},
	)

	dbOpts := []sqlx.DBOption{
		sqlx.DBUsername(o.Username),
		sqlx.DBPassword(o.Password),
		sqlx.DBDatabaseName(o.Schema),
		sqlx.DBHost(o.Host),
		sqlx.DBPort(o.Port),
		sqlx.DBConnectionMaxLifetime(time.Duration(o.Tuning.ConnMaxLifetime) * time.Millisecond),
	}

	if len(o.TLS.RootCAs) != 0 {
		tlsLogger := logger.WithName("create-sql-root-ca-pool")

		var certs [][]byte
		for _, cert := range o.TLS.RootCAs {
			b, bErr := cert.Bytes(ioutilx.OS, ioutilx.IOReader)
			if bErr != nil {
				tlsLogger.Error(failedToReadFile, bErr)
				return nil, bErr
			}

			certs = append(certs, b)
		}

		rootCAPool, err := cryptox.NewCertPool(certs...)
		if err != nil {
			tlsLogger.Error(failedToParseTLSCredentials, err)
			return nil, err
		}

		dbOpts = append(dbOpts, sqlx.DBRootCAPool(rootCAPool))
	}

	conn, err := sqlx.Connect(o.Driver, dbOpts...)
	if err != nil {
		logger.Error(failedToOpenSQLConnection, err)
		return nil, err
	}

	return conn, nil
}

func (o *DBFlag) validate() error {
	if o.Host == "" {
		return errors.New("the required host parameter was not specified; see --help")
	}
	if o.Port == 0 {
		return errors.New("the required port parameter was not specified; see --help")
	}
	if o.Schema == "" {
		return errors.New("the required schema parameter was not specified; see --help")
	}
	if o.Username == "" {
		return errors.New("the required username parameter was not specified; see --help")
	}
	return nil
}
